package types

import "fmt"

// Phase is the position of an oracle period: pushes are accepted while the
// period is Aggregating, finalization runs while it is Calculating.
type Phase uint8

const (
	PhaseAggregating Phase = iota
	PhaseCalculating
)

func (p Phase) String() string {
	switch p {
	case PhaseAggregating:
		return "aggregating"
	case PhaseCalculating:
		return "calculating"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(p))
	}
}

// PhaseOf classifies a moment into (period index, phase) for an oracle that
// started at createdAt and cycles every periodSeconds, accepting pushes for
// the first aggregateSeconds of each cycle. All times are unix seconds.
//
// The aggregate window is half-open: an offset equal to aggregateSeconds is
// already Calculating. Moments before createdAt map to period 0, Aggregating.
// Pure and deterministic, so every node classifies a block time identically.
func PhaseOf(periodSeconds, aggregateSeconds uint64, createdAt, now int64) (uint64, Phase) {
	if now < createdAt || periodSeconds == 0 {
		return 0, PhaseAggregating
	}

	elapsed := uint64(now - createdAt)
	periodIndex := elapsed / periodSeconds
	offset := elapsed % periodSeconds

	if offset < aggregateSeconds {
		return periodIndex, PhaseAggregating
	}
	return periodIndex, PhaseCalculating
}

// PeriodStart returns the unix second at which the given period index begins.
func PeriodStart(periodSeconds uint64, createdAt int64, periodIndex uint64) int64 {
	return createdAt + int64(periodIndex*periodSeconds)
}

// AggregateEnd returns the unix second at which the given period stops
// accepting pushes and becomes Calculating.
func AggregateEnd(periodSeconds, aggregateSeconds uint64, createdAt int64, periodIndex uint64) int64 {
	return PeriodStart(periodSeconds, createdAt, periodIndex) + int64(aggregateSeconds)
}

// PeriodEnd returns the unix second at which the given period ends and the
// next one begins.
func PeriodEnd(periodSeconds uint64, createdAt int64, periodIndex uint64) int64 {
	return PeriodStart(periodSeconds, createdAt, periodIndex) + int64(periodSeconds)
}
