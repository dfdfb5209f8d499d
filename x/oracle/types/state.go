package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Submission is one source's value vector for one oracle period. The vector
// is aligned with the oracle's value names and written atomically, so a
// source either contributed to every value stream of the period or to none.
type Submission struct {
	OracleId    uint64     `json:"oracle_id" yaml:"oracle_id"`
	PeriodIndex uint64     `json:"period_index" yaml:"period_index"`
	Source      string     `json:"source" yaml:"source"`
	Values      []math.Int `json:"values" yaml:"values"`
	SubmittedAt int64      `json:"submitted_at" yaml:"submitted_at"`
}

// Validate checks a stored submission record, used at genesis import.
func (s Submission) Validate() error {
	if s.OracleId == 0 {
		return ErrUnknownOracle.Wrap("submission oracle id cannot be zero")
	}
	if _, err := sdk.AccAddressFromBech32(s.Source); err != nil {
		return ErrInvalidValue.Wrapf("invalid source address: %s", err)
	}
	if len(s.Values) == 0 {
		return ErrWrongValueCount.Wrap("submission carries no values")
	}
	return ValidateValues(s.Values)
}

// ExternalValue is the latest finalized result of one oracle value stream,
// the only record external consumers read. A later period's calculation
// overwrites it; no history is kept.
type ExternalValue struct {
	OracleId     uint64   `json:"oracle_id" yaml:"oracle_id"`
	ValueIndex   uint32   `json:"value_index" yaml:"value_index"`
	Value        math.Int `json:"value" yaml:"value"`
	PeriodIndex  uint64   `json:"period_index" yaml:"period_index"`
	CalculatedAt int64    `json:"calculated_at" yaml:"calculated_at"`
	NumSources   uint32   `json:"num_sources" yaml:"num_sources"`
}

// Validate checks a stored finalized value record, used at genesis import.
func (ev ExternalValue) Validate() error {
	if ev.OracleId == 0 {
		return ErrUnknownOracle.Wrap("external value oracle id cannot be zero")
	}
	if ev.Value.IsNil() || ev.Value.IsNegative() {
		return ErrInvalidValue.Wrap("external value must be a non-negative integer")
	}
	if ev.NumSources == 0 {
		return ErrNotEnoughSources.Wrap("external value records zero contributing sources")
	}
	return nil
}

// LastPushPeriod tracks the highest period index of an oracle that ever
// received a push, driving submission pruning and period diagnostics.
type LastPushPeriod struct {
	OracleId    uint64 `json:"oracle_id" yaml:"oracle_id"`
	PeriodIndex uint64 `json:"period_index" yaml:"period_index"`
}

// ValidateValues rejects nil or negative entries; oracle values live in the
// non-negative integer domain.
func ValidateValues(values []math.Int) error {
	for i, v := range values {
		if v.IsNil() {
			return ErrInvalidValue.Wrapf("value at index %d is nil", i)
		}
		if v.IsNegative() {
			return ErrInvalidValue.Wrapf("value at index %d is negative", i)
		}
	}
	return nil
}
