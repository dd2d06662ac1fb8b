package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/monakumari7987/Decentralized-Cloud-Computing-Marketplace/x/marketplace/types"
)

// PostJob records a new job and escrows the attached payment in the
// module account. Job ids are assigned from a strictly increasing
// counter starting at 1. The storage requirement is accepted as given,
// including zero.
func (k Keeper) PostJob(ctx context.Context, client sdk.AccAddress, description string, cpuCores, ramGb, storageGb, durationHours uint64, payment math.Int) (uint64, error) {
	if cpuCores == 0 {
		return 0, types.ErrInvalidRequirement.Wrap("cpu_cores must be greater than 0")
	}
	if ramGb == 0 {
		return 0, types.ErrInvalidRequirement.Wrap("ram_gb must be greater than 0")
	}
	if durationHours == 0 {
		return 0, types.ErrInvalidRequirement.Wrap("duration_hours must be greater than 0")
	}
	if payment.IsNil() || !payment.IsPositive() {
		return 0, types.ErrNoPayment.Wrap("payment must be positive")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	coins := sdk.NewCoins(sdk.NewCoin(types.PaymentDenom, payment))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, client, types.ModuleName, coins); err != nil {
		return 0, types.ErrEscrowTransfer.Wrapf("failed to escrow payment: %v", err)
	}

	jobID := k.GetNextJobID(ctx)
	job := types.ComputeJob{
		Id:              jobID,
		Client:          client.String(),
		Description:     description,
		CpuCores:        cpuCores,
		RamGb:           ramGb,
		StorageGb:       storageGb,
		DurationHours:   durationHours,
		TotalPayment:    payment,
		Status:          types.JOB_STATUS_POSTED,
		PaymentReleased: false,
		CreatedAt:       sdkCtx.BlockTime(),
	}

	if err := k.SetJob(ctx, job); err != nil {
		return 0, err
	}

	k.SetNextJobID(ctx, jobID+1)
	k.appendClientJob(ctx, client, jobID)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeJobPosted,
			sdk.NewAttribute(types.AttributeKeyJobId, fmt.Sprintf("%d", jobID)),
			sdk.NewAttribute(types.AttributeKeyClient, client.String()),
			sdk.NewAttribute(types.AttributeKeyTotalPayment, payment.String()),
		),
	)

	return jobID, nil
}

// AssignJob hands a posted job to a provider chosen by the client. Only
// the posting client may assign, the job must still be in the posted
// state, and the provider must be active with enough capacity on every
// dimension the job requires.
func (k Keeper) AssignJob(ctx context.Context, client sdk.AccAddress, jobID uint64, providerAddr sdk.AccAddress) error {
	job, err := k.GetJob(ctx, jobID)
	if err != nil {
		return err
	}

	if job.Client != client.String() {
		return types.ErrNotClient.Wrapf("job %d belongs to %s", jobID, job.Client)
	}
	if job.Status != types.JOB_STATUS_POSTED {
		return types.ErrWrongStatus.Wrapf("job %d is %s, expected posted", jobID, job.Status)
	}

	provider, err := k.GetProvider(ctx, providerAddr)
	if err != nil {
		return err
	}
	if !provider.Active {
		return types.ErrProviderInactive.Wrapf("provider %s", providerAddr.String())
	}
	if !provider.CanHandle(*job) {
		return types.ErrInsufficientCapacity.Wrapf(
			"provider %s has %d/%d/%d, job %d needs %d/%d/%d",
			providerAddr.String(),
			provider.CpuCores, provider.RamGb, provider.StorageGb,
			jobID,
			job.CpuCores, job.RamGb, job.StorageGb,
		)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()

	job.Provider = providerAddr.String()
	job.Status = types.JOB_STATUS_ASSIGNED
	job.StartTime = &now

	if err := k.SetJob(ctx, *job); err != nil {
		return err
	}

	k.appendProviderJob(ctx, providerAddr, jobID)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeJobAssigned,
			sdk.NewAttribute(types.AttributeKeyJobId, fmt.Sprintf("%d", jobID)),
			sdk.NewAttribute(types.AttributeKeyClient, client.String()),
			sdk.NewAttribute(types.AttributeKeyProvider, providerAddr.String()),
		),
	)

	return nil
}

// StartJob moves an assigned job to in-progress. Only the assigned
// provider may start it. The start timestamp is overwritten with the
// actual start of work.
func (k Keeper) StartJob(ctx context.Context, providerAddr sdk.AccAddress, jobID uint64) error {
	job, err := k.GetJob(ctx, jobID)
	if err != nil {
		return err
	}

	if job.Provider != providerAddr.String() {
		return types.ErrNotAssignedProvider.Wrapf("job %d is assigned to %s", jobID, job.Provider)
	}
	if job.Status != types.JOB_STATUS_ASSIGNED {
		return types.ErrWrongStatus.Wrapf("job %d is %s, expected assigned", jobID, job.Status)
	}

	provider, err := k.GetProvider(ctx, providerAddr)
	if err != nil {
		return err
	}
	if !provider.Active {
		return types.ErrProviderInactive.Wrapf("provider %s", providerAddr.String())
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()

	job.Status = types.JOB_STATUS_IN_PROGRESS
	job.StartTime = &now

	if err := k.SetJob(ctx, *job); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeJobStarted,
			sdk.NewAttribute(types.AttributeKeyJobId, fmt.Sprintf("%d", jobID)),
			sdk.NewAttribute(types.AttributeKeyProvider, providerAddr.String()),
		),
	)

	return nil
}

// GetJob retrieves a job by id. Ids outside [1, nextJobID) are rejected
// before the store is consulted.
func (k Keeper) GetJob(ctx context.Context, jobID uint64) (*types.ComputeJob, error) {
	if jobID == 0 || jobID >= k.GetNextJobID(ctx) {
		return nil, types.ErrInvalidJobId.Wrapf("job id %d", jobID)
	}

	store := k.getStore(ctx)
	bz := store.Get(JobKey(jobID))
	if bz == nil {
		return nil, types.ErrInvalidJobId.Wrapf("job %d not found", jobID)
	}

	var job types.ComputeJob
	if err := k.cdc.Unmarshal(bz, &job); err != nil {
		return nil, types.ErrUnmarshalFail.Wrapf("failed to unmarshal job: %v", err)
	}

	return &job, nil
}

// SetJob stores a job record
func (k Keeper) SetJob(ctx context.Context, job types.ComputeJob) error {
	bz, err := k.cdc.Marshal(&job)
	if err != nil {
		return types.ErrMarshalFailed.Wrapf("failed to marshal job: %v", err)
	}

	store := k.getStore(ctx)
	store.Set(JobKey(job.Id), bz)
	return nil
}

// IterateJobs iterates over all job records in id order
func (k Keeper) IterateJobs(ctx context.Context, cb func(job types.ComputeJob) (stop bool, err error)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, JobKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var job types.ComputeJob
		if err := k.cdc.Unmarshal(iterator.Value(), &job); err != nil {
			return types.ErrUnmarshalFail.Wrapf("failed to unmarshal job: %v", err)
		}

		stop, err := cb(job)
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}

	return nil
}

// GetNextJobID returns the id the next posted job will receive
func (k Keeper) GetNextJobID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(NextJobIDKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// SetNextJobID sets the job id counter
func (k Keeper) SetNextJobID(ctx context.Context, id uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	store.Set(NextJobIDKey, bz)
}

// GetClientJobs returns the ids of jobs posted by a client, in posting
// order.
func (k Keeper) GetClientJobs(ctx context.Context, client sdk.AccAddress) []uint64 {
	store := k.getStore(ctx)
	prefix := append(JobsByClientPrefix, client.Bytes()...)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var ids []uint64
	for ; iterator.Valid(); iterator.Next() {
		ids = append(ids, GetJobIDFromBytes(iterator.Value()))
	}

	return ids
}

// GetProviderJobs returns the ids of jobs assigned to a provider, in
// assignment order.
func (k Keeper) GetProviderJobs(ctx context.Context, provider sdk.AccAddress) []uint64 {
	store := k.getStore(ctx)
	prefix := append(JobsByProviderPrefix, provider.Bytes()...)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var ids []uint64
	for ; iterator.Valid(); iterator.Next() {
		ids = append(ids, GetJobIDFromBytes(iterator.Value()))
	}

	return ids
}

func (k Keeper) appendClientJob(ctx context.Context, client sdk.AccAddress, jobID uint64) {
	store := k.getStore(ctx)

	count := uint64(0)
	if bz := store.Get(JobsByClientCountKey(client)); bz != nil {
		count = binary.BigEndian.Uint64(bz)
	}

	store.Set(JobByClientKey(client, count), GetJobIDBytes(jobID))

	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count+1)
	store.Set(JobsByClientCountKey(client), bz)
}

func (k Keeper) appendProviderJob(ctx context.Context, provider sdk.AccAddress, jobID uint64) {
	store := k.getStore(ctx)

	count := uint64(0)
	if bz := store.Get(JobsByProviderCountKey(provider)); bz != nil {
		count = binary.BigEndian.Uint64(bz)
	}

	store.Set(JobByProviderKey(provider, count), GetJobIDBytes(jobID))

	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count+1)
	store.Set(JobsByProviderCountKey(provider), bz)
}
