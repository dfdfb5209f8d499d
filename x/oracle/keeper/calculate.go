package keeper

import (
	"context"
	"math/big"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

// Calculate finalizes one value stream of an oracle. The target period is the
// one whose calculate window is open at the current block time, or the
// immediately preceding period when its window passed uncalculated: calculate
// is a permissionless maintenance call, so a missed window gets exactly one
// period of grace before its data is abandoned.
func (k Keeper) Calculate(ctx context.Context, oracleId uint64, valueIndex uint32) (types.ExternalValue, error) {
	oracle, err := k.GetOracle(ctx, oracleId)
	if err != nil {
		return types.ExternalValue{}, err
	}
	if int(valueIndex) >= len(oracle.ValueNames) {
		return types.ExternalValue{}, types.ErrInvalidValueIndex.Wrapf("index %d out of range, oracle %d tracks %d values", valueIndex, oracleId, len(oracle.ValueNames))
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	target, err := calculationTarget(oracle, now)
	if err != nil {
		k.countCalculation(oracleId, "not_calculate_period")
		return types.ExternalValue{}, err
	}

	if existing, ok := k.getExternalValue(ctx, oracleId, valueIndex); ok && existing.PeriodIndex >= target {
		k.countCalculation(oracleId, "already_calculated")
		return types.ExternalValue{}, types.ErrAlreadyCalculated.Wrapf("oracle %d value %d already finalized for period %d", oracleId, valueIndex, existing.PeriodIndex)
	}

	subs := k.GetPeriodSubmissions(ctx, oracleId, target)
	if uint32(len(subs)) < oracle.SourceLimit {
		k.countCalculation(oracleId, "not_enough_sources")
		return types.ExternalValue{}, types.ErrNotEnoughSources.Wrapf("oracle %d period %d has %d of %d required sources", oracleId, target, len(subs), oracle.SourceLimit)
	}

	values := make([]math.Int, len(subs))
	for i, sub := range subs {
		values[i] = sub.Values[valueIndex]
	}

	ev := types.ExternalValue{
		OracleId:     oracleId,
		ValueIndex:   valueIndex,
		Value:        meanValues(values),
		PeriodIndex:  target,
		CalculatedAt: now,
		NumSources:   uint32(len(subs)),
	}
	k.setExternalValue(ctx, ev)

	valueName := oracle.ValueNames[valueIndex]
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeValueCalculated,
			sdk.NewAttribute(types.AttributeKeyOracleId, strconv.FormatUint(oracleId, 10)),
			sdk.NewAttribute(types.AttributeKeyValueIndex, strconv.FormatUint(uint64(valueIndex), 10)),
			sdk.NewAttribute(types.AttributeKeyValueName, valueName),
			sdk.NewAttribute(types.AttributeKeyValue, ev.Value.String()),
			sdk.NewAttribute(types.AttributeKeyPeriodIndex, strconv.FormatUint(target, 10)),
			sdk.NewAttribute(types.AttributeKeyNumSources, strconv.FormatUint(uint64(ev.NumSources), 10)),
		),
	)

	k.countCalculation(oracleId, "ok")
	if k.metrics != nil {
		gauge, _ := new(big.Float).SetInt(ev.Value.BigInt()).Float64()
		k.metrics.FinalizedValue.With(map[string]string{
			"oracle":     strconv.FormatUint(oracleId, 10),
			"value_name": valueName,
		}).Set(gauge)
	}

	k.Logger(ctx).Info("value calculated",
		"oracle_id", oracleId,
		"value_name", valueName,
		"value", ev.Value.String(),
		"period_index", target,
		"num_sources", ev.NumSources,
	)

	return ev, nil
}

// calculationTarget resolves which period a calculate call at the given time
// finalizes. During a Calculating phase that is the current period; during an
// Aggregating phase it is the previous one, except that nothing precedes the
// first aggregate window.
func calculationTarget(oracle types.Oracle, now int64) (uint64, error) {
	periodIndex, phase := oracle.PhaseAt(now)
	if phase == types.PhaseCalculating {
		return periodIndex, nil
	}
	if periodIndex == 0 {
		return 0, types.ErrNotCalculatePeriod.Wrapf("oracle %d is still aggregating its first period", oracle.Id)
	}
	return periodIndex - 1, nil
}

// meanValues returns the arithmetic mean of the values with truncated integer
// division. Values are non-negative, so truncation is a floor.
func meanValues(values []math.Int) math.Int {
	sum := math.ZeroInt()
	for _, v := range values {
		sum = sum.Add(v)
	}
	return sum.Quo(math.NewInt(int64(len(values))))
}

func (k Keeper) countCalculation(oracleId uint64, outcome string) {
	if k.metrics == nil {
		return
	}
	k.metrics.ValueCalculations.With(map[string]string{
		"oracle":  strconv.FormatUint(oracleId, 10),
		"outcome": outcome,
	}).Inc()
}
