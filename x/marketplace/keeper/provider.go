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

// RegisterProvider registers a compute provider. A provider whose record
// is currently active cannot re-register; an address that was deactivated
// may register again and starts over with a fresh record, including the
// neutral initial reputation. Every successful registration appends a new
// entry to the active provider listing, so a re-registered address shows
// up twice.
func (k Keeper) RegisterProvider(ctx context.Context, provider sdk.AccAddress, endpoint string, cpuCores, ramGb, storageGb uint64, pricePerHour math.Int) error {
	if cpuCores == 0 || ramGb == 0 || storageGb == 0 {
		return types.ErrInvalidCapacity.Wrap("capacity values must be greater than 0")
	}
	if pricePerHour.IsNil() || !pricePerHour.IsPositive() {
		return types.ErrInvalidPrice.Wrap("price_per_hour must be positive")
	}

	existing, err := k.GetProvider(ctx, provider)
	if err == nil && existing.Active {
		return types.ErrProviderAlreadyActive.Wrapf("provider %s", provider.String())
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	record := types.Provider{
		Address:            provider.String(),
		Endpoint:           endpoint,
		CpuCores:           cpuCores,
		RamGb:              ramGb,
		StorageGb:          storageGb,
		PricePerHour:       pricePerHour,
		Active:             true,
		Reputation:         types.InitialReputation,
		TotalJobsCompleted: 0,
		TotalEarnings:      math.ZeroInt(),
		RegisteredAt:       sdkCtx.BlockTime(),
	}

	if err := k.SetProvider(ctx, record); err != nil {
		return err
	}

	k.appendActiveListing(ctx, provider)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProviderRegistered,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyCpuCores, fmt.Sprintf("%d", cpuCores)),
			sdk.NewAttribute(types.AttributeKeyRamGb, fmt.Sprintf("%d", ramGb)),
			sdk.NewAttribute(types.AttributeKeyStorageGb, fmt.Sprintf("%d", storageGb)),
			sdk.NewAttribute(types.AttributeKeyPricePerHour, pricePerHour.String()),
		),
	)

	return nil
}

// DeactivateProvider flips a provider's record to inactive. The listing
// entry is deliberately left in place: readers of the active listing must
// check the record itself. Jobs already assigned to the provider are not
// touched.
func (k Keeper) DeactivateProvider(ctx context.Context, provider sdk.AccAddress) error {
	existing, err := k.GetProvider(ctx, provider)
	if err != nil {
		return err
	}

	if !existing.Active {
		return types.ErrProviderInactive.Wrapf("provider %s is already inactive", provider.String())
	}

	existing.Active = false
	if err := k.SetProvider(ctx, *existing); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProviderDeactivated,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
		),
	)

	return nil
}

// GetProvider retrieves a provider by address
func (k Keeper) GetProvider(ctx context.Context, address sdk.AccAddress) (*types.Provider, error) {
	store := k.getStore(ctx)
	bz := store.Get(ProviderKey(address))

	if bz == nil {
		return nil, types.ErrProviderNotFound.Wrapf("provider %s", address.String())
	}

	var provider types.Provider
	if err := k.cdc.Unmarshal(bz, &provider); err != nil {
		return nil, types.ErrUnmarshalFail.Wrapf("failed to unmarshal provider: %v", err)
	}

	return &provider, nil
}

// SetProvider stores a provider record
func (k Keeper) SetProvider(ctx context.Context, provider types.Provider) error {
	bz, err := k.cdc.Marshal(&provider)
	if err != nil {
		return types.ErrMarshalFailed.Wrapf("failed to marshal provider: %v", err)
	}

	addr, err := sdk.AccAddressFromBech32(provider.Address)
	if err != nil {
		return types.ErrInvalidAddress.Wrapf("failed to parse address: %v", err)
	}

	store := k.getStore(ctx)
	store.Set(ProviderKey(addr), bz)
	return nil
}

// IterateProviders iterates over all provider records
func (k Keeper) IterateProviders(ctx context.Context, cb func(provider types.Provider) (stop bool, err error)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ProviderKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var provider types.Provider
		if err := k.cdc.Unmarshal(iterator.Value(), &provider); err != nil {
			return types.ErrUnmarshalFail.Wrapf("failed to unmarshal provider: %v", err)
		}

		stop, err := cb(provider)
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}

	return nil
}

// GetActiveProviderListing returns the raw active provider listing in
// registration order. Entries are appended on every registration and
// never removed, so the snapshot can contain duplicates and addresses
// whose records have since gone inactive.
func (k Keeper) GetActiveProviderListing(ctx context.Context) []string {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ActiveListingPrefix)
	defer iterator.Close()

	var listing []string
	for ; iterator.Valid(); iterator.Next() {
		listing = append(listing, sdk.AccAddress(iterator.Value()).String())
	}

	return listing
}

// appendActiveListing appends a provider address to the listing under the
// next sequence number.
func (k Keeper) appendActiveListing(ctx context.Context, provider sdk.AccAddress) {
	store := k.getStore(ctx)

	seq := uint64(0)
	if bz := store.Get(ActiveListingSeqKey); bz != nil {
		seq = binary.BigEndian.Uint64(bz)
	}

	store.Set(ActiveListingKey(seq), provider.Bytes())

	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, seq+1)
	store.Set(ActiveListingSeqKey, bz)
}
