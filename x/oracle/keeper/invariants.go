package keeper

import (
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

// RegisterInvariants registers all oracle module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "oracle-sequence",
		OracleSequenceInvariant(k))
	ir.RegisterRoute(types.ModuleName, "submission-arity",
		SubmissionArityInvariant(k))
	ir.RegisterRoute(types.ModuleName, "external-value-range",
		ExternalValueRangeInvariant(k))
	ir.RegisterRoute(types.ModuleName, "finalized-period-bound",
		FinalizedPeriodBoundInvariant(k))
}

// AllInvariants runs all invariants of the oracle module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := OracleSequenceInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = SubmissionArityInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = ExternalValueRangeInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return FinalizedPeriodBoundInvariant(k)(ctx)
	}
}

// OracleSequenceInvariant checks that every stored oracle id is non-zero and
// covered by the id sequence
func OracleSequenceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var issues []string
		seq := k.GetOracleIdSequence(ctx)

		for _, oracle := range k.GetAllOracles(ctx) {
			if oracle.Id == 0 {
				issues = append(issues, "oracle with id 0")
			}
			if oracle.Id >= seq {
				issues = append(issues, fmt.Sprintf("oracle %d not covered by sequence %d", oracle.Id, seq))
			}
		}

		broken := len(issues) > 0
		return sdk.FormatInvariant(types.ModuleName, "oracle-sequence",
			fmt.Sprintf("%d violations\n%s", len(issues), strings.Join(issues, "\n"))), broken
	}
}

// SubmissionArityInvariant checks that every submission references a known
// oracle and carries one value per value name
func SubmissionArityInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var issues []string

		for _, sub := range k.GetAllSubmissions(ctx) {
			oracle, err := k.GetOracle(ctx, sub.OracleId)
			if err != nil {
				issues = append(issues, fmt.Sprintf("submission by %s references unknown oracle %d", sub.Source, sub.OracleId))
				continue
			}
			if len(sub.Values) != len(oracle.ValueNames) {
				issues = append(issues, fmt.Sprintf("submission by %s for oracle %d carries %d values, want %d", sub.Source, sub.OracleId, len(sub.Values), len(oracle.ValueNames)))
			}
		}

		broken := len(issues) > 0
		return sdk.FormatInvariant(types.ModuleName, "submission-arity",
			fmt.Sprintf("%d violations\n%s", len(issues), strings.Join(issues, "\n"))), broken
	}
}

// ExternalValueRangeInvariant checks that every finalized value references a
// known oracle slot and holds a usable value
func ExternalValueRangeInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var issues []string

		for _, ev := range k.GetAllExternalValues(ctx) {
			oracle, err := k.GetOracle(ctx, ev.OracleId)
			if err != nil {
				issues = append(issues, fmt.Sprintf("external value references unknown oracle %d", ev.OracleId))
				continue
			}
			if int(ev.ValueIndex) >= len(oracle.ValueNames) {
				issues = append(issues, fmt.Sprintf("external value index %d out of range for oracle %d", ev.ValueIndex, ev.OracleId))
			}
			if ev.Value.IsNil() || ev.Value.IsNegative() {
				issues = append(issues, fmt.Sprintf("external value for oracle %d slot %d is not a non-negative integer", ev.OracleId, ev.ValueIndex))
			}
		}

		broken := len(issues) > 0
		return sdk.FormatInvariant(types.ModuleName, "external-value-range",
			fmt.Sprintf("%d violations\n%s", len(issues), strings.Join(issues, "\n"))), broken
	}
}

// FinalizedPeriodBoundInvariant checks that no finalized value claims a
// period later than its oracle's current one
func FinalizedPeriodBoundInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var issues []string
		now := ctx.BlockTime().Unix()

		for _, ev := range k.GetAllExternalValues(ctx) {
			oracle, err := k.GetOracle(ctx, ev.OracleId)
			if err != nil {
				continue
			}
			current, _ := oracle.PhaseAt(now)
			if ev.PeriodIndex > current {
				issues = append(issues, fmt.Sprintf("oracle %d slot %d finalized future period %d, current %d", ev.OracleId, ev.ValueIndex, ev.PeriodIndex, current))
			}
		}

		broken := len(issues) > 0
		return sdk.FormatInvariant(types.ModuleName, "finalized-period-bound",
			fmt.Sprintf("%d violations\n%s", len(issues), strings.Join(issues, "\n"))), broken
	}
}
