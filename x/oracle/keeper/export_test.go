package keeper

// This file exports private keeper methods for testing purposes.
// This is a standard Go testing pattern for white-box testing.

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

// Exported for testing: direct oracle writes, bypassing creation validation
func (k Keeper) SetOracleForTest(ctx context.Context, oracle types.Oracle) {
	k.setOracle(ctx, oracle)
}

// Exported for testing: direct submission writes, bypassing push preconditions
func (k Keeper) SetSubmissionForTest(ctx context.Context, sub types.Submission) {
	k.setSubmission(ctx, sub)
}

// Exported for testing: direct finalized value writes
func (k Keeper) SetExternalValueForTest(ctx context.Context, ev types.ExternalValue) {
	k.setExternalValue(ctx, ev)
}

// Exported for testing: submission pruning
func (k Keeper) PruneSubmissionsForTest(ctx context.Context, oracleId, keepFrom uint64) int {
	return k.pruneSubmissions(ctx, oracleId, keepFrom)
}

// Exported for testing: mean aggregation
func MeanValues(values []sdkmath.Int) sdkmath.Int {
	return meanValues(values)
}

// Exported for testing: calculate target resolution
func CalculationTarget(oracle types.Oracle, now int64) (uint64, error) {
	return calculationTarget(oracle, now)
}
