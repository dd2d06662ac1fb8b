package keeper_test

import (
	"cosmossdk.io/math"

	"github.com/monakumari7987/Decentralized-Cloud-Computing-Marketplace/x/marketplace/types"
)

func (s *KeeperTestSuite) TestPostJob() {
	before := s.balanceOf(s.client)

	id := s.postJob(4, 8, 10, 2, 1000)
	s.Require().Equal(uint64(1), id)

	job, err := s.keeper.GetJob(s.ctx, id)
	s.Require().NoError(err)
	s.Require().Equal(s.client.String(), job.Client)
	s.Require().Empty(job.Provider)
	s.Require().Equal(types.JOB_STATUS_POSTED, job.Status)
	s.Require().False(job.PaymentReleased)
	s.Require().Nil(job.StartTime)
	s.Require().Equal(math.NewInt(1000), job.TotalPayment)

	// Payment is escrowed in the module account.
	s.Require().Equal(before.SubRaw(1000), s.balanceOf(s.client))
	s.Require().Equal(math.NewInt(1000), s.balanceOf(s.keeper.GetModuleAddress()))

	s.Require().Equal([]uint64{id}, s.keeper.GetClientJobs(s.ctx, s.client))
}

func (s *KeeperTestSuite) TestPostJobIdsIncrease() {
	for want := uint64(1); want <= 5; want++ {
		id := s.postJob(1, 1, 0, 1, 10)
		s.Require().Equal(want, id)
	}
	s.Require().Equal(uint64(6), s.keeper.GetNextJobID(s.ctx))
}

func (s *KeeperTestSuite) TestPostJobZeroStorageAllowed() {
	id := s.postJob(4, 8, 0, 2, 1000)

	job, err := s.keeper.GetJob(s.ctx, id)
	s.Require().NoError(err)
	s.Require().EqualValues(0, job.StorageGb)
}

func (s *KeeperTestSuite) TestPostJobInvalid() {
	tests := []struct {
		name     string
		cpu      uint64
		ram      uint64
		duration uint64
		payment  math.Int
		wantErr  error
	}{
		{"zero cpu", 0, 8, 2, math.NewInt(1000), types.ErrInvalidRequirement},
		{"zero ram", 4, 0, 2, math.NewInt(1000), types.ErrInvalidRequirement},
		{"zero duration", 4, 8, 0, math.NewInt(1000), types.ErrInvalidRequirement},
		{"zero payment", 4, 8, 2, math.ZeroInt(), types.ErrNoPayment},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.keeper.PostJob(s.ctx, s.client, "", tt.cpu, tt.ram, 0, tt.duration, tt.payment)
			s.Require().ErrorIs(err, tt.wantErr)
		})
	}
}

func (s *KeeperTestSuite) TestPostJobInsufficientFunds() {
	poor := testAddr()
	_, err := s.keeper.PostJob(s.ctx, poor, "", 1, 1, 0, 1, math.NewInt(1000))
	s.Require().ErrorIs(err, types.ErrEscrowTransfer)

	// Nothing was recorded.
	s.Require().Equal(uint64(1), s.keeper.GetNextJobID(s.ctx))
	s.Require().Empty(s.keeper.GetClientJobs(s.ctx, poor))
}

func (s *KeeperTestSuite) TestGetJobInvalidIds() {
	id := s.postJob(1, 1, 0, 1, 10)

	_, err := s.keeper.GetJob(s.ctx, 0)
	s.Require().ErrorIs(err, types.ErrInvalidJobId)

	_, err = s.keeper.GetJob(s.ctx, id+1)
	s.Require().ErrorIs(err, types.ErrInvalidJobId)
}

func (s *KeeperTestSuite) TestAssignJob() {
	s.registerProvider(s.provider, 8, 16, 100)
	id := s.postJob(4, 8, 10, 2, 1000)

	s.Require().NoError(s.keeper.AssignJob(s.ctx, s.client, id, s.provider))

	job, err := s.keeper.GetJob(s.ctx, id)
	s.Require().NoError(err)
	s.Require().Equal(s.provider.String(), job.Provider)
	s.Require().Equal(types.JOB_STATUS_ASSIGNED, job.Status)
	s.Require().NotNil(job.StartTime)
	s.Require().Equal(s.ctx.BlockTime(), *job.StartTime)

	s.Require().Equal([]uint64{id}, s.keeper.GetProviderJobs(s.ctx, s.provider))
}

func (s *KeeperTestSuite) TestAssignJobOnlyClient() {
	s.registerProvider(s.provider, 8, 16, 100)
	id := s.postJob(4, 8, 10, 2, 1000)

	err := s.keeper.AssignJob(s.ctx, testAddr(), id, s.provider)
	s.Require().ErrorIs(err, types.ErrNotClient)
}

func (s *KeeperTestSuite) TestAssignJobWrongStatus() {
	s.registerProvider(s.provider, 8, 16, 100)
	id := s.postJob(4, 8, 10, 2, 1000)

	s.Require().NoError(s.keeper.AssignJob(s.ctx, s.client, id, s.provider))
	err := s.keeper.AssignJob(s.ctx, s.client, id, s.provider)
	s.Require().ErrorIs(err, types.ErrWrongStatus)
}

func (s *KeeperTestSuite) TestAssignJobInactiveProvider() {
	s.registerProvider(s.provider, 8, 16, 100)
	s.Require().NoError(s.keeper.DeactivateProvider(s.ctx, s.provider))

	id := s.postJob(4, 8, 10, 2, 1000)
	err := s.keeper.AssignJob(s.ctx, s.client, id, s.provider)
	s.Require().ErrorIs(err, types.ErrProviderInactive)
}

// Capacity is checked on every dimension independently, including
// storage even though jobs may request zero storage.
func (s *KeeperTestSuite) TestAssignJobCapacityPerDimension() {
	s.registerProvider(s.provider, 8, 16, 100)

	tests := []struct {
		name    string
		cpu     uint64
		ram     uint64
		storage uint64
		ok      bool
	}{
		{"fits exactly", 8, 16, 100, true},
		{"cpu too big", 9, 16, 100, false},
		{"ram too big", 8, 17, 100, false},
		{"storage too big", 8, 16, 101, false},
		{"zero storage fits", 8, 16, 0, true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			id, err := s.keeper.PostJob(s.ctx, s.client, "", tt.cpu, tt.ram, tt.storage, 1, math.NewInt(100))
			s.Require().NoError(err)

			err = s.keeper.AssignJob(s.ctx, s.client, id, s.provider)
			if tt.ok {
				s.Require().NoError(err)
			} else {
				s.Require().ErrorIs(err, types.ErrInsufficientCapacity)
			}
		})
	}
}

func (s *KeeperTestSuite) TestStartJob() {
	s.registerProvider(s.provider, 8, 16, 100)
	id := s.postJob(4, 8, 10, 2, 1000)
	s.Require().NoError(s.keeper.AssignJob(s.ctx, s.client, id, s.provider))

	s.Require().NoError(s.keeper.StartJob(s.ctx, s.provider, id))

	job, err := s.keeper.GetJob(s.ctx, id)
	s.Require().NoError(err)
	s.Require().Equal(types.JOB_STATUS_IN_PROGRESS, job.Status)
	s.Require().Equal(s.ctx.BlockTime(), *job.StartTime)
}

func (s *KeeperTestSuite) TestStartJobOnlyAssignedProvider() {
	s.registerProvider(s.provider, 8, 16, 100)
	id := s.postJob(4, 8, 10, 2, 1000)
	s.Require().NoError(s.keeper.AssignJob(s.ctx, s.client, id, s.provider))

	err := s.keeper.StartJob(s.ctx, testAddr(), id)
	s.Require().ErrorIs(err, types.ErrNotAssignedProvider)
}

func (s *KeeperTestSuite) TestStartJobDeactivatedProvider() {
	s.registerProvider(s.provider, 8, 16, 100)
	id := s.postJob(4, 8, 10, 2, 1000)
	s.Require().NoError(s.keeper.AssignJob(s.ctx, s.client, id, s.provider))

	s.Require().NoError(s.keeper.DeactivateProvider(s.ctx, s.provider))

	err := s.keeper.StartJob(s.ctx, s.provider, id)
	s.Require().ErrorIs(err, types.ErrProviderInactive)
}

func (s *KeeperTestSuite) TestStartJobWrongStatus() {
	s.registerProvider(s.provider, 8, 16, 100)
	id := s.postJob(4, 8, 10, 2, 1000)
	s.Require().NoError(s.keeper.AssignJob(s.ctx, s.client, id, s.provider))
	s.Require().NoError(s.keeper.StartJob(s.ctx, s.provider, id))

	err := s.keeper.StartJob(s.ctx, s.provider, id)
	s.Require().ErrorIs(err, types.ErrWrongStatus)
}

func (s *KeeperTestSuite) TestClientJobListingOrder() {
	first := s.postJob(1, 1, 0, 1, 10)
	second := s.postJob(2, 2, 0, 1, 20)
	third := s.postJob(3, 3, 0, 1, 30)

	s.Require().Equal([]uint64{first, second, third}, s.keeper.GetClientJobs(s.ctx, s.client))
}
