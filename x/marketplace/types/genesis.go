package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ProviderJobList carries one provider's job listing in assignment
// order, which is not derivable from the job records themselves.
type ProviderJobList struct {
	Provider string   `json:"provider"`
	JobIds   []uint64 `json:"job_ids"`
}

// GenesisState is the marketplace module's genesis state.
type GenesisState struct {
	Params    Params       `json:"params"`
	Providers []Provider   `json:"providers"`
	Jobs      []ComputeJob `json:"jobs"`
	// ActiveProviders is the registration-order listing snapshot. It may
	// contain duplicates and entries for since-deactivated providers;
	// both are observed ledger behavior and survive export/import.
	ActiveProviders []string          `json:"active_providers"`
	ProviderJobs    []ProviderJobList `json:"provider_jobs"`
	NextJobId       uint64            `json:"next_job_id"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:    DefaultParams(),
		NextJobId: 1,
	}
}

// Validate performs basic genesis state validation returning an error
// upon any failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seenProviders := make(map[string]bool)
	for i, provider := range gs.Providers {
		if _, err := sdk.AccAddressFromBech32(provider.Address); err != nil {
			return fmt.Errorf("provider %d: invalid address %s: %w", i, provider.Address, err)
		}
		if seenProviders[provider.Address] {
			return fmt.Errorf("provider %d: duplicate address %s", i, provider.Address)
		}
		seenProviders[provider.Address] = true

		if provider.Reputation > 100 {
			return fmt.Errorf("provider %s: reputation %d exceeds 100", provider.Address, provider.Reputation)
		}
		if provider.PricePerHour.IsNil() || !provider.PricePerHour.IsPositive() {
			return fmt.Errorf("provider %s: price_per_hour must be positive", provider.Address)
		}
		if provider.TotalEarnings.IsNil() || provider.TotalEarnings.IsNegative() {
			return fmt.Errorf("provider %s: total_earnings cannot be negative", provider.Address)
		}
		if provider.CpuCores == 0 || provider.RamGb == 0 || provider.StorageGb == 0 {
			return fmt.Errorf("provider %s: capacity values must be greater than 0", provider.Address)
		}
	}

	seenJobs := make(map[uint64]bool)
	maxJobId := uint64(0)
	for i, job := range gs.Jobs {
		if job.Id == 0 {
			return fmt.Errorf("job %d: id cannot be zero", i)
		}
		if seenJobs[job.Id] {
			return fmt.Errorf("job %d: duplicate job id %d", i, job.Id)
		}
		seenJobs[job.Id] = true
		if job.Id > maxJobId {
			maxJobId = job.Id
		}

		if _, err := sdk.AccAddressFromBech32(job.Client); err != nil {
			return fmt.Errorf("job %d: invalid client address %s: %w", job.Id, job.Client, err)
		}
		if job.Provider != "" {
			if _, err := sdk.AccAddressFromBech32(job.Provider); err != nil {
				return fmt.Errorf("job %d: invalid provider address %s: %w", job.Id, job.Provider, err)
			}
		}
		if !job.Status.IsValid() {
			return fmt.Errorf("job %d: invalid status %d", job.Id, job.Status)
		}
		if job.Status != JOB_STATUS_POSTED && job.Provider == "" {
			return fmt.Errorf("job %d: status %s requires an assigned provider", job.Id, job.Status)
		}
		if job.TotalPayment.IsNil() || !job.TotalPayment.IsPositive() {
			return fmt.Errorf("job %d: total_payment must be positive", job.Id)
		}
		if job.PaymentReleased && job.Status != JOB_STATUS_COMPLETED {
			return fmt.Errorf("job %d: payment released but status is %s", job.Id, job.Status)
		}
	}

	// Listing entries must at least be addresses of known providers;
	// duplicates and inactive entries are allowed by design.
	for i, addr := range gs.ActiveProviders {
		if !seenProviders[addr] {
			return fmt.Errorf("active provider listing entry %d references unknown provider %s", i, addr)
		}
	}

	for _, listing := range gs.ProviderJobs {
		if !seenProviders[listing.Provider] {
			return fmt.Errorf("provider job listing references unknown provider %s", listing.Provider)
		}
		for _, id := range listing.JobIds {
			if !seenJobs[id] {
				return fmt.Errorf("provider %s job listing references unknown job %d", listing.Provider, id)
			}
		}
	}

	if gs.NextJobId == 0 {
		return fmt.Errorf("next_job_id cannot be zero")
	}
	if gs.NextJobId <= maxJobId {
		return fmt.Errorf("next_job_id (%d) must be greater than the highest job id (%d)", gs.NextJobId, maxJobId)
	}

	return nil
}
