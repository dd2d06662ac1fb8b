package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/monakumari7987/Decentralized-Cloud-Computing-Marketplace/x/marketplace/types"
)

// CompleteJobAndPay settles an in-progress job in one transition: the
// job is marked completed, the escrowed payment is split between the
// provider and the marketplace owner, the provider's stats and
// reputation are updated, and the client's score is folded into the
// running average. All writes happen against a cache context that is
// only committed once both bank transfers succeed, so a failed payout
// can never leave a completed-but-unpaid job behind.
func (k Keeper) CompleteJobAndPay(ctx context.Context, client sdk.AccAddress, jobID uint64, score uint32) (providerPayment, platformFee math.Int, err error) {
	if score < 1 || score > 100 {
		return math.Int{}, math.Int{}, types.ErrInvalidReputationScore.Wrapf("score %d", score)
	}

	job, err := k.GetJob(ctx, jobID)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	if job.Client != client.String() {
		return math.Int{}, math.Int{}, types.ErrNotClient.Wrapf("job %d belongs to %s", jobID, job.Client)
	}
	// The double-pay check comes before the status check so a repeat
	// settlement always surfaces as AlreadyPaid rather than a generic
	// status error.
	if job.PaymentReleased {
		return math.Int{}, math.Int{}, types.ErrAlreadyPaid.Wrapf("job %d", jobID)
	}
	if job.Status != types.JOB_STATUS_IN_PROGRESS {
		return math.Int{}, math.Int{}, types.ErrWrongStatus.Wrapf("job %d is %s, expected in_progress", jobID, job.Status)
	}

	providerAddr, err := sdk.AccAddressFromBech32(job.Provider)
	if err != nil {
		return math.Int{}, math.Int{}, types.ErrInvalidAddress.Wrapf("assigned provider: %v", err)
	}

	provider, err := k.GetProvider(ctx, providerAddr)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	// Integer fee split: the fee is rounded down, the provider gets the
	// remainder, and the two always sum to the escrowed total.
	platformFee = job.TotalPayment.MulRaw(int64(params.PlatformFeePercent)).QuoRaw(100)
	providerPayment = job.TotalPayment.Sub(platformFee)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	if err := k.bankKeeper.SendCoinsFromModuleToAccount(
		cacheCtx, types.ModuleName, providerAddr,
		sdk.NewCoins(sdk.NewCoin(types.PaymentDenom, providerPayment)),
	); err != nil {
		return math.Int{}, math.Int{}, types.ErrEscrowTransfer.Wrapf("provider payout: %v", err)
	}

	if platformFee.IsPositive() {
		feeRecipient, err := sdk.AccAddressFromBech32(k.authority)
		if err != nil {
			return math.Int{}, math.Int{}, types.ErrInvalidAddress.Wrapf("fee recipient: %v", err)
		}
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(
			cacheCtx, types.ModuleName, feeRecipient,
			sdk.NewCoins(sdk.NewCoin(types.PaymentDenom, platformFee)),
		); err != nil {
			return math.Int{}, math.Int{}, types.ErrEscrowTransfer.Wrapf("platform fee payout: %v", err)
		}
	}

	job.Status = types.JOB_STATUS_COMPLETED
	job.PaymentReleased = true
	if err := k.SetJob(cacheCtx, *job); err != nil {
		return math.Int{}, math.Int{}, err
	}

	oldReputation := provider.Reputation
	provider.TotalJobsCompleted++
	provider.TotalEarnings = provider.TotalEarnings.Add(providerPayment)
	provider.Reputation = runningAverage(provider.Reputation, score, provider.TotalJobsCompleted)

	if err := k.SetProvider(cacheCtx, *provider); err != nil {
		return math.Int{}, math.Int{}, err
	}

	write()

	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeJobCompleted,
			sdk.NewAttribute(types.AttributeKeyJobId, fmt.Sprintf("%d", jobID)),
			sdk.NewAttribute(types.AttributeKeyClient, client.String()),
			sdk.NewAttribute(types.AttributeKeyProvider, job.Provider),
			sdk.NewAttribute(types.AttributeKeyProviderPayment, providerPayment.String()),
		),
		sdk.NewEvent(
			types.EventTypePaymentReleased,
			sdk.NewAttribute(types.AttributeKeyJobId, fmt.Sprintf("%d", jobID)),
			sdk.NewAttribute(types.AttributeKeyProviderPayment, providerPayment.String()),
			sdk.NewAttribute(types.AttributeKeyPlatformFee, platformFee.String()),
		),
		sdk.NewEvent(
			types.EventTypeReputationUpdated,
			sdk.NewAttribute(types.AttributeKeyProvider, job.Provider),
			sdk.NewAttribute(types.AttributeKeyReputation, fmt.Sprintf("%d->%d", oldReputation, provider.Reputation)),
		),
	})

	return providerPayment, platformFee, nil
}

// runningAverage folds one score into the integer running average over
// completedJobs samples. Each step truncates, so the result drifts from
// the true mean over time; that stepwise behavior is part of the ledger
// semantics and must not be "fixed" by recomputing from raw scores.
func runningAverage(current, score uint32, completedJobs uint64) uint32 {
	n := completedJobs
	if n == 0 {
		n = 1
	}
	return uint32((uint64(current)*(n-1) + uint64(score)) / n)
}

// TotalEscrowed sums TotalPayment over all jobs whose payment has not
// been released. It must equal the module account balance at all times.
func (k Keeper) TotalEscrowed(ctx context.Context) (math.Int, error) {
	total := math.ZeroInt()
	err := k.IterateJobs(ctx, func(job types.ComputeJob) (bool, error) {
		if !job.PaymentReleased {
			total = total.Add(job.TotalPayment)
		}
		return false, nil
	})
	if err != nil {
		return math.Int{}, err
	}
	return total, nil
}
