package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}

	// ProviderKeyPrefix is the prefix for provider storage
	ProviderKeyPrefix = []byte{0x02}

	// JobKeyPrefix is the prefix for job storage
	JobKeyPrefix = []byte{0x03}

	// NextJobIDKey is the key for the next job ID counter
	NextJobIDKey = []byte{0x04}

	// ActiveListingPrefix is the prefix for the append-only active
	// provider listing. Key: prefix + sequence -> provider address.
	// The listing is never compacted: re-registration appends a second
	// entry and deactivation leaves the old one in place.
	ActiveListingPrefix = []byte{0x05}

	// ActiveListingSeqKey is the counter behind the listing sequence
	ActiveListingSeqKey = []byte{0x06}

	// JobsByClientPrefix indexes job ids by client in posting order.
	// Key: prefix + client + position -> job id.
	JobsByClientPrefix = []byte{0x07}

	// JobsByClientCountPrefix holds the per-client listing length
	JobsByClientCountPrefix = []byte{0x08}

	// JobsByProviderPrefix indexes job ids by provider in assignment order.
	JobsByProviderPrefix = []byte{0x09}

	// JobsByProviderCountPrefix holds the per-provider listing length
	JobsByProviderCountPrefix = []byte{0x0A}
)

// ProviderKey returns the store key for a provider
func ProviderKey(address sdk.AccAddress) []byte {
	return append(ProviderKeyPrefix, address.Bytes()...)
}

// JobKey returns the store key for a job
func JobKey(jobID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, jobID)
	return append(JobKeyPrefix, bz...)
}

// ActiveListingKey returns the store key for one listing slot
func ActiveListingKey(seq uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, seq)
	return append(ActiveListingPrefix, bz...)
}

// JobByClientKey returns the index key for a client's listing slot
func JobByClientKey(client sdk.AccAddress, position uint64) []byte {
	posBz := make([]byte, 8)
	binary.BigEndian.PutUint64(posBz, position)
	return append(append(JobsByClientPrefix, client.Bytes()...), posBz...)
}

// JobsByClientCountKey returns the counter key for a client's listing
func JobsByClientCountKey(client sdk.AccAddress) []byte {
	return append(JobsByClientCountPrefix, client.Bytes()...)
}

// JobByProviderKey returns the index key for a provider's listing slot
func JobByProviderKey(provider sdk.AccAddress, position uint64) []byte {
	posBz := make([]byte, 8)
	binary.BigEndian.PutUint64(posBz, position)
	return append(append(JobsByProviderPrefix, provider.Bytes()...), posBz...)
}

// JobsByProviderCountKey returns the counter key for a provider's listing
func JobsByProviderCountKey(provider sdk.AccAddress) []byte {
	return append(JobsByProviderCountPrefix, provider.Bytes()...)
}

// GetJobIDFromBytes converts bytes to a job ID
func GetJobIDFromBytes(bz []byte) uint64 {
	return binary.BigEndian.Uint64(bz)
}

// GetJobIDBytes converts a job ID to its big-endian byte form
func GetJobIDBytes(jobID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, jobID)
	return bz
}
