package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/monakumari7987/Decentralized-Cloud-Computing-Marketplace/x/marketplace/types"
)

// RegisterInvariants registers all marketplace module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "escrow-balance",
		EscrowBalanceInvariant(k))
	ir.RegisterRoute(types.ModuleName, "job-status",
		JobStatusInvariant(k))
	ir.RegisterRoute(types.ModuleName, "job-id-counter",
		JobIDCounterInvariant(k))
}

// AllInvariants runs all invariants of the marketplace module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := EscrowBalanceInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = JobStatusInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return JobIDCounterInvariant(k)(ctx)
	}
}

// EscrowBalanceInvariant checks that the sum of unreleased job payments
// equals the module account balance.
func EscrowBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		moduleAddr := k.accountKeeper.GetModuleAddress(types.ModuleName)
		moduleBalance := k.bankKeeper.GetBalance(ctx, moduleAddr, types.PaymentDenom)

		totalEscrow, err := k.TotalEscrowed(ctx)
		if err != nil {
			return sdk.FormatInvariant(
				types.ModuleName, "escrow-balance",
				fmt.Sprintf("error iterating jobs: %v", err),
			), true
		}

		if !totalEscrow.Equal(moduleBalance.Amount) {
			broken = true
			msg = fmt.Sprintf(
				"unreleased payments do not match module balance\n"+
					"\ttotal escrow: %s\n"+
					"\tmodule balance: %s",
				totalEscrow, moduleBalance.Amount,
			)
		}

		return sdk.FormatInvariant(
			types.ModuleName, "escrow-balance",
			msg,
		), broken
	}
}

// JobStatusInvariant checks that job records are internally consistent
func JobStatusInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			issues []string
		)

		err := k.IterateJobs(ctx, func(job types.ComputeJob) (bool, error) {
			if !job.Status.IsValid() {
				issues = append(issues, fmt.Sprintf("job %d has invalid status %d", job.Id, job.Status))
			}
			if job.Status != types.JOB_STATUS_POSTED && job.Provider == "" {
				issues = append(issues, fmt.Sprintf("job %d is %s but has no provider", job.Id, job.Status))
			}
			if job.PaymentReleased && job.Status != types.JOB_STATUS_COMPLETED {
				issues = append(issues, fmt.Sprintf("job %d has released payment but status %s", job.Id, job.Status))
			}
			if job.TotalPayment.IsNil() || !job.TotalPayment.IsPositive() {
				issues = append(issues, fmt.Sprintf("job %d has non-positive payment", job.Id))
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(
				types.ModuleName, "job-status",
				fmt.Sprintf("error iterating jobs: %v", err),
			), true
		}

		msg := ""
		if len(issues) > 0 {
			broken = true
			msg = fmt.Sprintf("%d inconsistent job records:\n", len(issues))
			for _, issue := range issues {
				msg += fmt.Sprintf("  - %s\n", issue)
			}
		}

		return sdk.FormatInvariant(
			types.ModuleName, "job-status",
			msg,
		), broken
	}
}

// JobIDCounterInvariant checks that the next job id is ahead of every
// stored job id.
func JobIDCounterInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var maxID uint64

		err := k.IterateJobs(ctx, func(job types.ComputeJob) (bool, error) {
			if job.Id > maxID {
				maxID = job.Id
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(
				types.ModuleName, "job-id-counter",
				fmt.Sprintf("error iterating jobs: %v", err),
			), true
		}

		nextID := k.GetNextJobID(ctx)
		if nextID <= maxID {
			return sdk.FormatInvariant(
				types.ModuleName, "job-id-counter",
				fmt.Sprintf("next job id %d not greater than max stored id %d", nextID, maxID),
			), true
		}

		return sdk.FormatInvariant(types.ModuleName, "job-id-counter", ""), false
	}
}
