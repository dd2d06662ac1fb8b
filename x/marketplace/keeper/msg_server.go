package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/monakumari7987/Decentralized-Cloud-Computing-Marketplace/x/marketplace/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the marketplace MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// RegisterProvider handles MsgRegisterProvider
func (m msgServer) RegisterProvider(ctx context.Context, msg *types.MsgRegisterProvider) (*types.MsgRegisterProviderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("provider: %v", err)
	}

	if err := m.Keeper.RegisterProvider(ctx, provider, msg.Endpoint, msg.CpuCores, msg.RamGb, msg.StorageGb, msg.PricePerHour); err != nil {
		return nil, err
	}

	return &types.MsgRegisterProviderResponse{}, nil
}

// PostJob handles MsgPostJob
func (m msgServer) PostJob(ctx context.Context, msg *types.MsgPostJob) (*types.MsgPostJobResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	client, err := sdk.AccAddressFromBech32(msg.Client)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("client: %v", err)
	}

	jobID, err := m.Keeper.PostJob(ctx, client, msg.Description, msg.CpuCores, msg.RamGb, msg.StorageGb, msg.DurationHours, msg.Payment)
	if err != nil {
		return nil, err
	}

	return &types.MsgPostJobResponse{JobId: jobID}, nil
}

// AssignJob handles MsgAssignJob
func (m msgServer) AssignJob(ctx context.Context, msg *types.MsgAssignJob) (*types.MsgAssignJobResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	client, err := sdk.AccAddressFromBech32(msg.Client)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("client: %v", err)
	}
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("provider: %v", err)
	}

	if err := m.Keeper.AssignJob(ctx, client, msg.JobId, provider); err != nil {
		return nil, err
	}

	return &types.MsgAssignJobResponse{}, nil
}

// StartJob handles MsgStartJob
func (m msgServer) StartJob(ctx context.Context, msg *types.MsgStartJob) (*types.MsgStartJobResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("provider: %v", err)
	}

	if err := m.Keeper.StartJob(ctx, provider, msg.JobId); err != nil {
		return nil, err
	}

	return &types.MsgStartJobResponse{}, nil
}

// CompleteJob handles MsgCompleteJob
func (m msgServer) CompleteJob(ctx context.Context, msg *types.MsgCompleteJob) (*types.MsgCompleteJobResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	client, err := sdk.AccAddressFromBech32(msg.Client)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("client: %v", err)
	}

	providerPayment, platformFee, err := m.Keeper.CompleteJobAndPay(ctx, client, msg.JobId, msg.ReputationScore)
	if err != nil {
		return nil, err
	}

	return &types.MsgCompleteJobResponse{
		ProviderPayment: providerPayment,
		PlatformFee:     platformFee,
	}, nil
}

// UpdatePlatformFee handles MsgUpdatePlatformFee
func (m msgServer) UpdatePlatformFee(ctx context.Context, msg *types.MsgUpdatePlatformFee) (*types.MsgUpdatePlatformFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := m.Keeper.UpdatePlatformFee(ctx, msg.Authority, msg.NewPercentage); err != nil {
		return nil, err
	}

	return &types.MsgUpdatePlatformFeeResponse{}, nil
}

// DeactivateProvider handles MsgDeactivateProvider
func (m msgServer) DeactivateProvider(ctx context.Context, msg *types.MsgDeactivateProvider) (*types.MsgDeactivateProviderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if msg.Authority != m.Keeper.GetAuthority() {
		return nil, types.ErrUnauthorized.Wrapf("expected %s, got %s", m.Keeper.GetAuthority(), msg.Authority)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("provider: %v", err)
	}

	if err := m.Keeper.DeactivateProvider(ctx, provider); err != nil {
		return nil, err
	}

	return &types.MsgDeactivateProviderResponse{}, nil
}
