package types

import (
	"context"
)

// MsgServer is the marketplace transaction service. Every method is a
// full state transition: it either applies completely (state, escrow
// movement, events) or returns an error leaving state untouched.
type MsgServer interface {
	RegisterProvider(ctx context.Context, msg *MsgRegisterProvider) (*MsgRegisterProviderResponse, error)
	PostJob(ctx context.Context, msg *MsgPostJob) (*MsgPostJobResponse, error)
	AssignJob(ctx context.Context, msg *MsgAssignJob) (*MsgAssignJobResponse, error)
	StartJob(ctx context.Context, msg *MsgStartJob) (*MsgStartJobResponse, error)
	CompleteJob(ctx context.Context, msg *MsgCompleteJob) (*MsgCompleteJobResponse, error)
	UpdatePlatformFee(ctx context.Context, msg *MsgUpdatePlatformFee) (*MsgUpdatePlatformFeeResponse, error)
	DeactivateProvider(ctx context.Context, msg *MsgDeactivateProvider) (*MsgDeactivateProviderResponse, error)
}

// QueryServer exposes read-only projections of ledger state.
type QueryServer interface {
	Params(ctx context.Context, req *QueryParamsRequest) (*QueryParamsResponse, error)
	Provider(ctx context.Context, req *QueryProviderRequest) (*QueryProviderResponse, error)
	Job(ctx context.Context, req *QueryJobRequest) (*QueryJobResponse, error)
	ActiveProviders(ctx context.Context, req *QueryActiveProvidersRequest) (*QueryActiveProvidersResponse, error)
	ClientJobs(ctx context.Context, req *QueryClientJobsRequest) (*QueryClientJobsResponse, error)
	ProviderJobs(ctx context.Context, req *QueryProviderJobsRequest) (*QueryProviderJobsResponse, error)
	TotalEscrowed(ctx context.Context, req *QueryTotalEscrowedRequest) (*QueryTotalEscrowedResponse, error)
}
