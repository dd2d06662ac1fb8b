package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/monakumari7987/Decentralized-Cloud-Computing-Marketplace/x/marketplace/keeper"
	"github.com/monakumari7987/Decentralized-Cloud-Computing-Marketplace/x/marketplace/types"
)

// Fixture bundles a test keeper with the real auth and bank keepers it
// runs against, so tests can fund accounts and inspect balances.
type Fixture struct {
	Keeper        *keeper.Keeper
	Ctx           sdk.Context
	BankKeeper    bankkeeper.Keeper
	AccountKeeper authkeeper.AccountKeeper
	Authority     sdk.AccAddress
}

// MarketplaceKeeper creates a test keeper for the marketplace module
// backed by in-memory stores and real auth/bank keepers.
func MarketplaceKeeper(t testing.TB) (*keeper.Keeper, sdk.Context) {
	f := MarketplaceFixture(t)
	return f.Keeper, f.Ctx
}

// MarketplaceFixture creates a marketplace test fixture. The marketplace
// module account is granted mint permission so tests can conjure funds.
func MarketplaceFixture(t testing.TB) Fixture {
	return marketplaceFixture(t, nil)
}

// MarketplaceFixtureWithBank creates a fixture whose marketplace keeper
// uses the supplied bank keeper instead of the real one. The real bank
// keeper is still returned for funding and balance checks.
func MarketplaceFixtureWithBank(t testing.TB, bk types.BankKeeper) Fixture {
	return marketplaceFixture(t, bk)
}

func marketplaceFixture(t testing.TB, bankOverride types.BankKeeper) Fixture {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	maccPerms := map[string][]string{
		authtypes.FeeCollectorName: nil,
		types.ModuleName:           {authtypes.Minter},
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		authority.String(),
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		map[string]bool{},
		authority.String(),
		log.NewNopLogger(),
	)

	var marketBank types.BankKeeper = bankKeeper
	if bankOverride != nil {
		marketBank = bankOverride
	}

	k := keeper.NewKeeper(
		codec.NewLegacyAmino(),
		storeKey,
		marketBank,
		accountKeeper,
		authority.String(),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{
		Height: 1,
		Time:   time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
	}, false, log.NewNopLogger())

	require.NoError(t, k.SetParams(ctx, types.DefaultParams()))

	return Fixture{
		Keeper:        k,
		Ctx:           ctx,
		BankKeeper:    bankKeeper,
		AccountKeeper: accountKeeper,
		Authority:     authority,
	}
}

// FundAccount mints coins into the marketplace module account and sends
// them to the given address.
func FundAccount(t testing.TB, ctx sdk.Context, bk bankkeeper.Keeper, addr sdk.AccAddress, amt sdk.Coins) {
	require.NoError(t, bk.MintCoins(ctx, types.ModuleName, amt))
	require.NoError(t, bk.SendCoinsFromModuleToAccount(ctx, types.ModuleName, addr, amt))
}
