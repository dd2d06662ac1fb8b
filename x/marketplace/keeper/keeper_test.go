package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	keepertest "github.com/monakumari7987/Decentralized-Cloud-Computing-Marketplace/testutil/keeper"
	"github.com/monakumari7987/Decentralized-Cloud-Computing-Marketplace/x/marketplace/keeper"
	"github.com/monakumari7987/Decentralized-Cloud-Computing-Marketplace/x/marketplace/types"
)

type KeeperTestSuite struct {
	suite.Suite

	fixture keepertest.Fixture
	keeper  *keeper.Keeper
	ctx     sdk.Context

	client   sdk.AccAddress
	provider sdk.AccAddress
}

func (s *KeeperTestSuite) SetupTest() {
	s.fixture = keepertest.MarketplaceFixture(s.T())
	s.keeper = s.fixture.Keeper
	s.ctx = s.fixture.Ctx

	s.client = testAddr()
	s.provider = testAddr()

	keepertest.FundAccount(s.T(), s.ctx, s.fixture.BankKeeper, s.client,
		sdk.NewCoins(sdk.NewCoin(types.PaymentDenom, math.NewInt(1_000_000))))
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func testAddr() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}

// registerProvider registers a provider with the given capacity and a
// price of 100 per hour.
func (s *KeeperTestSuite) registerProvider(addr sdk.AccAddress, cpu, ram, storage uint64) {
	err := s.keeper.RegisterProvider(s.ctx, addr, "https://provider.example.com", cpu, ram, storage, math.NewInt(100))
	s.Require().NoError(err)
}

// postJob posts a job for s.client and returns its id.
func (s *KeeperTestSuite) postJob(cpu, ram, storage, duration uint64, payment int64) uint64 {
	id, err := s.keeper.PostJob(s.ctx, s.client, "training run", cpu, ram, storage, duration, math.NewInt(payment))
	s.Require().NoError(err)
	return id
}

// startedJob walks a fresh job through posting, assignment, and start,
// returning its id.
func (s *KeeperTestSuite) startedJob(payment int64) uint64 {
	s.registerProvider(s.provider, 8, 16, 100)
	id := s.postJob(4, 8, 10, 2, payment)
	s.Require().NoError(s.keeper.AssignJob(s.ctx, s.client, id, s.provider))
	s.Require().NoError(s.keeper.StartJob(s.ctx, s.provider, id))
	return id
}

func (s *KeeperTestSuite) balanceOf(addr sdk.AccAddress) math.Int {
	return s.fixture.BankKeeper.GetBalance(s.ctx, addr, types.PaymentDenom).Amount
}
