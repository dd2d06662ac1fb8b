package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/monakumari7987/Decentralized-Cloud-Computing-Marketplace/x/marketplace/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the marketplace QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params returns the current module parameters
func (q queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	params, err := q.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

// Provider returns a provider record by address
func (q queryServer) Provider(ctx context.Context, req *types.QueryProviderRequest) (*types.QueryProviderResponse, error) {
	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("address: %v", err)
	}

	provider, err := q.GetProvider(ctx, addr)
	if err != nil {
		return nil, err
	}

	return &types.QueryProviderResponse{Provider: *provider}, nil
}

// Job returns a job record by id
func (q queryServer) Job(ctx context.Context, req *types.QueryJobRequest) (*types.QueryJobResponse, error) {
	job, err := q.GetJob(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	return &types.QueryJobResponse{Job: *job}, nil
}

// ActiveProviders returns the raw registration-order listing snapshot
func (q queryServer) ActiveProviders(ctx context.Context, req *types.QueryActiveProvidersRequest) (*types.QueryActiveProvidersResponse, error) {
	return &types.QueryActiveProvidersResponse{
		Providers: q.GetActiveProviderListing(ctx),
	}, nil
}

// ClientJobs returns the job ids posted by a client
func (q queryServer) ClientJobs(ctx context.Context, req *types.QueryClientJobsRequest) (*types.QueryClientJobsResponse, error) {
	client, err := sdk.AccAddressFromBech32(req.Client)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("client: %v", err)
	}

	return &types.QueryClientJobsResponse{JobIds: q.GetClientJobs(ctx, client)}, nil
}

// ProviderJobs returns the job ids assigned to a provider
func (q queryServer) ProviderJobs(ctx context.Context, req *types.QueryProviderJobsRequest) (*types.QueryProviderJobsResponse, error) {
	provider, err := sdk.AccAddressFromBech32(req.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("provider: %v", err)
	}

	return &types.QueryProviderJobsResponse{JobIds: q.GetProviderJobs(ctx, provider)}, nil
}

// TotalEscrowed returns the sum of unreleased job payments
func (q queryServer) TotalEscrowed(ctx context.Context, req *types.QueryTotalEscrowedRequest) (*types.QueryTotalEscrowedResponse, error) {
	total, err := q.Keeper.TotalEscrowed(ctx)
	if err != nil {
		return nil, err
	}

	return &types.QueryTotalEscrowedResponse{Amount: total}, nil
}
