package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/monakumari7987/Decentralized-Cloud-Computing-Marketplace/x/marketplace/types"
)

func addr() string {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address()).String()
}

func TestMsgRegisterProviderValidateBasic(t *testing.T) {
	valid := types.MsgRegisterProvider{
		Provider:     addr(),
		Endpoint:     "https://p.example.com",
		CpuCores:     8,
		RamGb:        16,
		StorageGb:    100,
		PricePerHour: math.NewInt(100),
	}

	tests := []struct {
		name    string
		mutate  func(*types.MsgRegisterProvider)
		wantErr bool
	}{
		{"valid", func(*types.MsgRegisterProvider) {}, false},
		{"bad address", func(m *types.MsgRegisterProvider) { m.Provider = "oops" }, true},
		{"zero cpu", func(m *types.MsgRegisterProvider) { m.CpuCores = 0 }, true},
		{"zero ram", func(m *types.MsgRegisterProvider) { m.RamGb = 0 }, true},
		{"zero storage", func(m *types.MsgRegisterProvider) { m.StorageGb = 0 }, true},
		{"nil price", func(m *types.MsgRegisterProvider) { m.PricePerHour = math.Int{} }, true},
		{"zero price", func(m *types.MsgRegisterProvider) { m.PricePerHour = math.ZeroInt() }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := valid
			tt.mutate(&msg)
			err := msg.ValidateBasic()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgPostJobValidateBasic(t *testing.T) {
	valid := types.MsgPostJob{
		Client:        addr(),
		Description:   "job",
		CpuCores:      4,
		RamGb:         8,
		StorageGb:     10,
		DurationHours: 2,
		Payment:       math.NewInt(1000),
	}

	tests := []struct {
		name    string
		mutate  func(*types.MsgPostJob)
		wantErr bool
	}{
		{"valid", func(*types.MsgPostJob) {}, false},
		{"zero storage is fine", func(m *types.MsgPostJob) { m.StorageGb = 0 }, false},
		{"bad address", func(m *types.MsgPostJob) { m.Client = "oops" }, true},
		{"zero cpu", func(m *types.MsgPostJob) { m.CpuCores = 0 }, true},
		{"zero ram", func(m *types.MsgPostJob) { m.RamGb = 0 }, true},
		{"zero duration", func(m *types.MsgPostJob) { m.DurationHours = 0 }, true},
		{"zero payment", func(m *types.MsgPostJob) { m.Payment = math.ZeroInt() }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := valid
			tt.mutate(&msg)
			err := msg.ValidateBasic()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgCompleteJobValidateBasic(t *testing.T) {
	valid := types.MsgCompleteJob{
		Client:          addr(),
		JobId:           1,
		ReputationScore: 90,
	}

	require.NoError(t, valid.ValidateBasic())

	low := valid
	low.ReputationScore = 0
	require.Error(t, low.ValidateBasic())

	high := valid
	high.ReputationScore = 101
	require.Error(t, high.ValidateBasic())

	noJob := valid
	noJob.JobId = 0
	require.Error(t, noJob.ValidateBasic())
}

func TestMsgUpdatePlatformFeeValidateBasic(t *testing.T) {
	valid := types.MsgUpdatePlatformFee{
		Authority:     addr(),
		NewPercentage: 10,
	}
	require.NoError(t, valid.ValidateBasic())

	over := valid
	over.NewPercentage = 11
	require.Error(t, over.ValidateBasic())
}

func TestMsgGetSigners(t *testing.T) {
	provider := addr()
	msg := types.MsgRegisterProvider{Provider: provider}
	signers := msg.GetSigners()
	require.Len(t, signers, 1)
	require.Equal(t, provider, signers[0].String())

	client := addr()
	post := types.MsgPostJob{Client: client}
	signers = post.GetSigners()
	require.Len(t, signers, 1)
	require.Equal(t, client, signers[0].String())
}
