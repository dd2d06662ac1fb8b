package types

import (
	"cosmossdk.io/math"
)

// Query request/response types. Pure projections of current state; no
// query mutates the ledger.

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryProviderRequest struct {
	Address string `json:"address"`
}

type QueryProviderResponse struct {
	Provider Provider `json:"provider"`
}

type QueryJobRequest struct {
	Id uint64 `json:"id"`
}

type QueryJobResponse struct {
	Job ComputeJob `json:"job"`
}

type QueryActiveProvidersRequest struct{}

// QueryActiveProvidersResponse returns the full listing snapshot in
// registration order. Entries are not deduplicated and may reference
// providers that have since been deactivated.
type QueryActiveProvidersResponse struct {
	Providers []string `json:"providers"`
}

type QueryClientJobsRequest struct {
	Client string `json:"client"`
}

type QueryClientJobsResponse struct {
	JobIds []uint64 `json:"job_ids"`
}

type QueryProviderJobsRequest struct {
	Provider string `json:"provider"`
}

type QueryProviderJobsResponse struct {
	JobIds []uint64 `json:"job_ids"`
}

type QueryTotalEscrowedRequest struct{}

// QueryTotalEscrowedResponse reports the sum of TotalPayment over all
// jobs whose payment has not been released, which must equal the
// module account balance.
type QueryTotalEscrowedResponse struct {
	Amount math.Int `json:"amount"`
}
