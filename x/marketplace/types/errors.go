package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Marketplace module sentinel errors

var (
	// Provider registration errors
	ErrInvalidCapacity       = sdkerrors.Register(ModuleName, 2, "capacity values must be greater than zero")
	ErrInvalidPrice          = sdkerrors.Register(ModuleName, 3, "price per hour must be greater than zero")
	ErrProviderAlreadyActive = sdkerrors.Register(ModuleName, 4, "provider already registered and active")
	ErrProviderNotFound      = sdkerrors.Register(ModuleName, 5, "provider not found")
	ErrProviderInactive      = sdkerrors.Register(ModuleName, 6, "provider not active")

	// Job posting errors
	ErrInvalidRequirement = sdkerrors.Register(ModuleName, 10, "job requirements must be greater than zero")
	ErrNoPayment          = sdkerrors.Register(ModuleName, 11, "payment must be attached to post a job")

	// Job lifecycle errors
	ErrInvalidJobId           = sdkerrors.Register(ModuleName, 20, "invalid job id")
	ErrNotClient              = sdkerrors.Register(ModuleName, 21, "caller is not the job client")
	ErrNotAssignedProvider    = sdkerrors.Register(ModuleName, 22, "caller is not the assigned provider")
	ErrWrongStatus            = sdkerrors.Register(ModuleName, 23, "job is in the wrong status for this operation")
	ErrInsufficientCapacity   = sdkerrors.Register(ModuleName, 24, "provider capacity below job requirements")
	ErrAlreadyPaid            = sdkerrors.Register(ModuleName, 25, "job payment already released")
	ErrInvalidReputationScore = sdkerrors.Register(ModuleName, 26, "reputation score must be between 1 and 100")

	// Administration errors
	ErrFeeTooHigh   = sdkerrors.Register(ModuleName, 30, "platform fee exceeds maximum")
	ErrUnauthorized = sdkerrors.Register(ModuleName, 31, "unauthorized operation")

	// Escrow errors
	ErrEscrowTransfer = sdkerrors.Register(ModuleName, 40, "escrow transfer failed")

	// Internal errors
	ErrInvalidAddress = sdkerrors.Register(ModuleName, 50, "invalid address")
	ErrMarshalFailed  = sdkerrors.Register(ModuleName, 51, "failed to marshal record")
	ErrUnmarshalFail  = sdkerrors.Register(ModuleName, 52, "failed to unmarshal record")
)
