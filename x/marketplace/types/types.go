package types

import (
	"time"

	"cosmossdk.io/math"
)

// JobStatus is the closed set of lifecycle states for a compute job.
type JobStatus int32

const (
	JOB_STATUS_POSTED JobStatus = iota
	JOB_STATUS_ASSIGNED
	JOB_STATUS_IN_PROGRESS
	JOB_STATUS_COMPLETED
	JOB_STATUS_DISPUTED
	JOB_STATUS_CANCELLED
)

// String implements fmt.Stringer
func (s JobStatus) String() string {
	switch s {
	case JOB_STATUS_POSTED:
		return "posted"
	case JOB_STATUS_ASSIGNED:
		return "assigned"
	case JOB_STATUS_IN_PROGRESS:
		return "in_progress"
	case JOB_STATUS_COMPLETED:
		return "completed"
	case JOB_STATUS_DISPUTED:
		return "disputed"
	case JOB_STATUS_CANCELLED:
		return "cancelled"
	default:
		return "unknown"
	}
}

// IsValid reports whether s is a declared status value.
func (s JobStatus) IsValid() bool {
	return s >= JOB_STATUS_POSTED && s <= JOB_STATUS_CANCELLED
}

// IsTerminal reports whether no operation may leave this status.
// Disputed and Cancelled are reserved terminal states: nothing
// transitions into them yet, but the rest of the state machine must
// treat them as "not in progress".
func (s JobStatus) IsTerminal() bool {
	return s == JOB_STATUS_COMPLETED || s == JOB_STATUS_DISPUTED || s == JOB_STATUS_CANCELLED
}

// CanTransitionTo enforces the job state machine:
// Posted -> Assigned -> InProgress -> Completed.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	switch s {
	case JOB_STATUS_POSTED:
		return next == JOB_STATUS_ASSIGNED
	case JOB_STATUS_ASSIGNED:
		return next == JOB_STATUS_IN_PROGRESS
	case JOB_STATUS_IN_PROGRESS:
		return next == JOB_STATUS_COMPLETED
	default:
		return false
	}
}

// Provider is the registry record for a compute resource provider.
// The address is the unique key; the record is never deleted, only
// deactivated or overwritten by a fresh registration.
type Provider struct {
	Address            string    `json:"address"`
	Endpoint           string    `json:"endpoint"`
	CpuCores           uint64    `json:"cpu_cores"`
	RamGb              uint64    `json:"ram_gb"`
	StorageGb          uint64    `json:"storage_gb"`
	PricePerHour       math.Int  `json:"price_per_hour"`
	Active             bool      `json:"active"`
	Reputation         uint32    `json:"reputation"`
	TotalJobsCompleted uint64    `json:"total_jobs_completed"`
	TotalEarnings      math.Int  `json:"total_earnings"`
	RegisteredAt       time.Time `json:"registered_at"`
}

// InitialReputation is the trust score every fresh registration starts at.
const InitialReputation uint32 = 50

// CanHandle reports whether the provider's advertised capacity covers
// every resource dimension the job requires.
func (p Provider) CanHandle(job ComputeJob) bool {
	if p.CpuCores < job.CpuCores {
		return false
	}
	if p.RamGb < job.RamGb {
		return false
	}
	if p.StorageGb < job.StorageGb {
		return false
	}
	return true
}

// ComputeJob is the ledger record for one posted job. TotalPayment is
// escrowed in the module account at posting time and is the only amount
// ever distributed for the job.
type ComputeJob struct {
	Id              uint64     `json:"id"`
	Client          string     `json:"client"`
	Provider        string     `json:"provider,omitempty"`
	Description     string     `json:"description"`
	CpuCores        uint64     `json:"cpu_cores"`
	RamGb           uint64     `json:"ram_gb"`
	StorageGb       uint64     `json:"storage_gb"`
	DurationHours   uint64     `json:"duration_hours"`
	TotalPayment    math.Int   `json:"total_payment"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	Status          JobStatus  `json:"status"`
	PaymentReleased bool       `json:"payment_released"`
	CreatedAt       time.Time  `json:"created_at"`
}
