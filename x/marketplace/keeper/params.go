package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/monakumari7987/Decentralized-Cloud-Computing-Marketplace/x/marketplace/types"
)

// GetParams returns the current marketplace parameters
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams(), nil
	}

	var params types.Params
	if err := k.cdc.Unmarshal(bz, &params); err != nil {
		return types.Params{}, types.ErrUnmarshalFail.Wrapf("failed to unmarshal params: %v", err)
	}

	return params, nil
}

// SetParams stores the marketplace parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	bz, err := k.cdc.Marshal(&params)
	if err != nil {
		return types.ErrMarshalFailed.Wrapf("failed to marshal params: %v", err)
	}

	store := k.getStore(ctx)
	store.Set(ParamsKey, bz)
	return nil
}

// UpdatePlatformFee sets the platform fee percentage. Only the
// marketplace owner may call it, and the fee is capped. The new rate
// applies to every settlement from this point on, including jobs that
// were posted under the old rate.
func (k Keeper) UpdatePlatformFee(ctx context.Context, authority string, newPercentage uint32) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	if newPercentage > types.MaxPlatformFeePercent {
		return types.ErrFeeTooHigh.Wrapf("%d%% exceeds maximum %d%%", newPercentage, types.MaxPlatformFeePercent)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	params.PlatformFeePercent = newPercentage
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePlatformFeeUpdated,
			sdk.NewAttribute(types.AttributeKeyFeePercentage, fmt.Sprintf("%d", newPercentage)),
		),
	)

	return nil
}
