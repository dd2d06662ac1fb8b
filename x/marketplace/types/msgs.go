package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgRegisterProvider   = "register_provider"
	TypeMsgPostJob            = "post_job"
	TypeMsgAssignJob          = "assign_job"
	TypeMsgStartJob           = "start_job"
	TypeMsgCompleteJob        = "complete_job"
	TypeMsgUpdatePlatformFee  = "update_platform_fee"
	TypeMsgDeactivateProvider = "deactivate_provider"
)

var (
	_ sdk.Msg = &MsgRegisterProvider{}
	_ sdk.Msg = &MsgPostJob{}
	_ sdk.Msg = &MsgAssignJob{}
	_ sdk.Msg = &MsgStartJob{}
	_ sdk.Msg = &MsgCompleteJob{}
	_ sdk.Msg = &MsgUpdatePlatformFee{}
	_ sdk.Msg = &MsgDeactivateProvider{}
)

// MsgRegisterProvider registers the signer as a compute provider.
type MsgRegisterProvider struct {
	Provider     string   `json:"provider"`
	Endpoint     string   `json:"endpoint"`
	CpuCores     uint64   `json:"cpu_cores"`
	RamGb        uint64   `json:"ram_gb"`
	StorageGb    uint64   `json:"storage_gb"`
	PricePerHour math.Int `json:"price_per_hour"`
}

type MsgRegisterProviderResponse struct{}

// MsgPostJob posts a new job; Payment is the escrowed value attached
// to the call.
type MsgPostJob struct {
	Client        string   `json:"client"`
	Description   string   `json:"description"`
	CpuCores      uint64   `json:"cpu_cores"`
	RamGb         uint64   `json:"ram_gb"`
	StorageGb     uint64   `json:"storage_gb"`
	DurationHours uint64   `json:"duration_hours"`
	Payment       math.Int `json:"payment"`
}

type MsgPostJobResponse struct {
	JobId uint64 `json:"job_id"`
}

// MsgAssignJob assigns a posted job to a chosen provider. Assignment
// is manual: the client picks the provider, the ledger only re-checks
// capacity.
type MsgAssignJob struct {
	Client   string `json:"client"`
	JobId    uint64 `json:"job_id"`
	Provider string `json:"provider"`
}

type MsgAssignJobResponse struct{}

// MsgStartJob marks an assigned job as in progress.
type MsgStartJob struct {
	Provider string `json:"provider"`
	JobId    uint64 `json:"job_id"`
}

type MsgStartJobResponse struct{}

// MsgCompleteJob completes an in-progress job, releasing escrow and
// recording the client's reputation score for the provider.
type MsgCompleteJob struct {
	Client          string `json:"client"`
	JobId           uint64 `json:"job_id"`
	ReputationScore uint32 `json:"reputation_score"`
}

type MsgCompleteJobResponse struct {
	ProviderPayment math.Int `json:"provider_payment"`
	PlatformFee     math.Int `json:"platform_fee"`
}

// MsgUpdatePlatformFee sets the platform fee percentage. Authority only.
type MsgUpdatePlatformFee struct {
	Authority     string `json:"authority"`
	NewPercentage uint32 `json:"new_percentage"`
}

type MsgUpdatePlatformFeeResponse struct{}

// MsgDeactivateProvider deactivates a provider. Authority only.
type MsgDeactivateProvider struct {
	Authority string `json:"authority"`
	Provider  string `json:"provider"`
}

type MsgDeactivateProviderResponse struct{}

// GetSigners implementations - these assume addresses are valid (validated in ValidateBasic)

// GetSigners returns the expected signers for MsgRegisterProvider
func (msg *MsgRegisterProvider) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

// GetSigners returns the expected signers for MsgPostJob
func (msg *MsgPostJob) GetSigners() []sdk.AccAddress {
	client, _ := sdk.AccAddressFromBech32(msg.Client)
	return []sdk.AccAddress{client}
}

// GetSigners returns the expected signers for MsgAssignJob
func (msg *MsgAssignJob) GetSigners() []sdk.AccAddress {
	client, _ := sdk.AccAddressFromBech32(msg.Client)
	return []sdk.AccAddress{client}
}

// GetSigners returns the expected signers for MsgStartJob
func (msg *MsgStartJob) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

// GetSigners returns the expected signers for MsgCompleteJob
func (msg *MsgCompleteJob) GetSigners() []sdk.AccAddress {
	client, _ := sdk.AccAddressFromBech32(msg.Client)
	return []sdk.AccAddress{client}
}

// GetSigners returns the expected signers for MsgUpdatePlatformFee
func (msg *MsgUpdatePlatformFee) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSigners returns the expected signers for MsgDeactivateProvider
func (msg *MsgDeactivateProvider) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs basic validation of MsgRegisterProvider
func (msg *MsgRegisterProvider) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return fmt.Errorf("invalid provider address: %w", err)
	}

	if msg.CpuCores == 0 || msg.RamGb == 0 || msg.StorageGb == 0 {
		return fmt.Errorf("capacity values must be greater than 0")
	}

	if msg.PricePerHour.IsNil() || !msg.PricePerHour.IsPositive() {
		return fmt.Errorf("price_per_hour must be positive")
	}

	return nil
}

// ValidateBasic performs basic validation of MsgPostJob
func (msg *MsgPostJob) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Client); err != nil {
		return fmt.Errorf("invalid client address: %w", err)
	}

	// Storage requirement is deliberately unchecked: a job may need no
	// scratch space at all.
	if msg.CpuCores == 0 {
		return fmt.Errorf("cpu_cores must be greater than 0")
	}
	if msg.RamGb == 0 {
		return fmt.Errorf("ram_gb must be greater than 0")
	}
	if msg.DurationHours == 0 {
		return fmt.Errorf("duration_hours must be greater than 0")
	}

	if msg.Payment.IsNil() || !msg.Payment.IsPositive() {
		return fmt.Errorf("payment must be positive")
	}

	return nil
}

// ValidateBasic performs basic validation of MsgAssignJob
func (msg *MsgAssignJob) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Client); err != nil {
		return fmt.Errorf("invalid client address: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return fmt.Errorf("invalid provider address: %w", err)
	}
	if msg.JobId == 0 {
		return fmt.Errorf("job ID must be greater than 0")
	}
	return nil
}

// ValidateBasic performs basic validation of MsgStartJob
func (msg *MsgStartJob) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return fmt.Errorf("invalid provider address: %w", err)
	}
	if msg.JobId == 0 {
		return fmt.Errorf("job ID must be greater than 0")
	}
	return nil
}

// ValidateBasic performs basic validation of MsgCompleteJob
func (msg *MsgCompleteJob) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Client); err != nil {
		return fmt.Errorf("invalid client address: %w", err)
	}
	if msg.JobId == 0 {
		return fmt.Errorf("job ID must be greater than 0")
	}
	if msg.ReputationScore < 1 || msg.ReputationScore > 100 {
		return fmt.Errorf("reputation score must be between 1 and 100")
	}
	return nil
}

// ValidateBasic performs basic validation of MsgUpdatePlatformFee
func (msg *MsgUpdatePlatformFee) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	if msg.NewPercentage > MaxPlatformFeePercent {
		return fmt.Errorf("fee percentage cannot exceed %d", MaxPlatformFeePercent)
	}
	return nil
}

// ValidateBasic performs basic validation of MsgDeactivateProvider
func (msg *MsgDeactivateProvider) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return fmt.Errorf("invalid provider address: %w", err)
	}
	return nil
}
