package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}

	// OracleIdSequenceKey is the key for the next-oracle-id counter
	OracleIdSequenceKey = []byte{0x02}

	// OracleKeyPrefix is the prefix for oracle store keys
	OracleKeyPrefix = []byte{0x11}

	// SubmissionKeyPrefix is the prefix for submission store keys
	SubmissionKeyPrefix = []byte{0x12}

	// ExternalValueKeyPrefix is the prefix for finalized value store keys
	ExternalValueKeyPrefix = []byte{0x13}

	// LastPushPeriodKeyPrefix is the prefix for last-push-period store keys
	LastPushPeriodKeyPrefix = []byte{0x14}
)

// DefaultAuthority returns the governance module address as the only allowed
// authority for oracle parameter updates.
func DefaultAuthority() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}

// OracleKey returns the store key for an oracle
func OracleKey(oracleId uint64) []byte {
	return append(OracleKeyPrefix, sdk.Uint64ToBigEndian(oracleId)...)
}

// SubmissionOraclePrefix returns the store prefix covering every submission
// of one oracle, across all periods
func SubmissionOraclePrefix(oracleId uint64) []byte {
	return append(SubmissionKeyPrefix, sdk.Uint64ToBigEndian(oracleId)...)
}

// SubmissionPeriodPrefix returns the store prefix covering one oracle period
func SubmissionPeriodPrefix(oracleId, periodIndex uint64) []byte {
	return append(SubmissionOraclePrefix(oracleId), sdk.Uint64ToBigEndian(periodIndex)...)
}

// SubmissionKey returns the store key for one source's submission in a period.
// The source address is the final, variable-length segment.
func SubmissionKey(oracleId, periodIndex uint64, source string) []byte {
	return append(SubmissionPeriodPrefix(oracleId, periodIndex), []byte(source)...)
}

// ExternalValueOraclePrefix returns the store prefix covering every finalized
// value slot of one oracle
func ExternalValueOraclePrefix(oracleId uint64) []byte {
	return append(ExternalValueKeyPrefix, sdk.Uint64ToBigEndian(oracleId)...)
}

// ExternalValueKey returns the store key for one finalized value slot
func ExternalValueKey(oracleId uint64, valueIndex uint32) []byte {
	return append(ExternalValueOraclePrefix(oracleId), sdk.Uint64ToBigEndian(uint64(valueIndex))...)
}

// LastPushPeriodKey returns the store key for an oracle's last push period
func LastPushPeriodKey(oracleId uint64) []byte {
	return append(LastPushPeriodKeyPrefix, sdk.Uint64ToBigEndian(oracleId)...)
}
