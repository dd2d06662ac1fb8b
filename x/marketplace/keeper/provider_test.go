package keeper_test

import (
	"cosmossdk.io/math"

	"github.com/monakumari7987/Decentralized-Cloud-Computing-Marketplace/x/marketplace/types"
)

func (s *KeeperTestSuite) TestRegisterProvider() {
	s.registerProvider(s.provider, 8, 16, 100)

	record, err := s.keeper.GetProvider(s.ctx, s.provider)
	s.Require().NoError(err)
	s.Require().Equal(s.provider.String(), record.Address)
	s.Require().True(record.Active)
	s.Require().Equal(types.InitialReputation, record.Reputation)
	s.Require().EqualValues(8, record.CpuCores)
	s.Require().EqualValues(16, record.RamGb)
	s.Require().EqualValues(100, record.StorageGb)
	s.Require().Equal(uint64(0), record.TotalJobsCompleted)
	s.Require().True(record.TotalEarnings.IsZero())
	s.Require().Equal(s.ctx.BlockTime(), record.RegisteredAt)

	listing := s.keeper.GetActiveProviderListing(s.ctx)
	s.Require().Equal([]string{s.provider.String()}, listing)
}

func (s *KeeperTestSuite) TestRegisterProviderInvalid() {
	tests := []struct {
		name    string
		cpu     uint64
		ram     uint64
		storage uint64
		price   math.Int
		wantErr error
	}{
		{"zero cpu", 0, 16, 100, math.NewInt(100), types.ErrInvalidCapacity},
		{"zero ram", 8, 0, 100, math.NewInt(100), types.ErrInvalidCapacity},
		{"zero storage", 8, 16, 0, math.NewInt(100), types.ErrInvalidCapacity},
		{"zero price", 8, 16, 100, math.ZeroInt(), types.ErrInvalidPrice},
		{"negative price", 8, 16, 100, math.NewInt(-5), types.ErrInvalidPrice},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := s.keeper.RegisterProvider(s.ctx, s.provider, "", tt.cpu, tt.ram, tt.storage, tt.price)
			s.Require().ErrorIs(err, tt.wantErr)
		})
	}
}

func (s *KeeperTestSuite) TestRegisterProviderTwice() {
	s.registerProvider(s.provider, 8, 16, 100)

	err := s.keeper.RegisterProvider(s.ctx, s.provider, "", 8, 16, 100, math.NewInt(100))
	s.Require().ErrorIs(err, types.ErrProviderAlreadyActive)
}

func (s *KeeperTestSuite) TestDeactivateProvider() {
	s.registerProvider(s.provider, 8, 16, 100)

	s.Require().NoError(s.keeper.DeactivateProvider(s.ctx, s.provider))

	record, err := s.keeper.GetProvider(s.ctx, s.provider)
	s.Require().NoError(err)
	s.Require().False(record.Active)

	// The listing keeps the stale entry.
	listing := s.keeper.GetActiveProviderListing(s.ctx)
	s.Require().Equal([]string{s.provider.String()}, listing)

	// Deactivating twice fails.
	err = s.keeper.DeactivateProvider(s.ctx, s.provider)
	s.Require().ErrorIs(err, types.ErrProviderInactive)
}

func (s *KeeperTestSuite) TestDeactivateUnknownProvider() {
	err := s.keeper.DeactivateProvider(s.ctx, testAddr())
	s.Require().ErrorIs(err, types.ErrProviderNotFound)
}

// Re-registration after deactivation starts the provider over with a
// fresh record and appends a second listing entry for the same address.
func (s *KeeperTestSuite) TestReregisterAfterDeactivation() {
	s.registerProvider(s.provider, 8, 16, 100)

	// Complete a job so the record carries history.
	id := s.postJob(4, 8, 10, 2, 1000)
	s.Require().NoError(s.keeper.AssignJob(s.ctx, s.client, id, s.provider))
	s.Require().NoError(s.keeper.StartJob(s.ctx, s.provider, id))
	_, _, err := s.keeper.CompleteJobAndPay(s.ctx, s.client, id, 90)
	s.Require().NoError(err)

	s.Require().NoError(s.keeper.DeactivateProvider(s.ctx, s.provider))
	s.Require().NoError(s.keeper.RegisterProvider(s.ctx, s.provider, "", 4, 8, 50, math.NewInt(200)))

	record, err := s.keeper.GetProvider(s.ctx, s.provider)
	s.Require().NoError(err)
	s.Require().True(record.Active)
	s.Require().Equal(types.InitialReputation, record.Reputation)
	s.Require().Equal(uint64(0), record.TotalJobsCompleted)
	s.Require().True(record.TotalEarnings.IsZero())
	s.Require().EqualValues(4, record.CpuCores)

	listing := s.keeper.GetActiveProviderListing(s.ctx)
	s.Require().Equal([]string{s.provider.String(), s.provider.String()}, listing)
}

func (s *KeeperTestSuite) TestActiveListingOrder() {
	a := testAddr()
	b := testAddr()
	c := testAddr()

	s.registerProvider(a, 1, 1, 1)
	s.registerProvider(b, 2, 2, 2)
	s.registerProvider(c, 3, 3, 3)

	listing := s.keeper.GetActiveProviderListing(s.ctx)
	s.Require().Equal([]string{a.String(), b.String(), c.String()}, listing)
}
