package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

// PushValues records one source's value vector for the current aggregating
// period of an oracle and returns that period's index. Preconditions are
// checked before any write, so a failed push leaves the store untouched.
func (k Keeper) PushValues(ctx context.Context, oracleId uint64, source string, values []math.Int) (uint64, error) {
	oracle, err := k.GetOracle(ctx, oracleId)
	if err != nil {
		return 0, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()
	periodIndex, phase := oracle.PhaseAt(now)
	if phase != types.PhaseAggregating {
		return 0, types.ErrNotAggregatingPeriod.Wrapf("oracle %d is %s in period %d", oracleId, phase, periodIndex)
	}

	authorized, err := k.IsAuthorizedSource(ctx, oracle, source, periodIndex)
	if err != nil {
		return 0, err
	}
	if !authorized {
		return 0, types.ErrUnauthorized.Wrapf("%s is not a winning source of oracle %d in period %d", source, oracleId, periodIndex)
	}

	if len(values) != len(oracle.ValueNames) {
		return 0, types.ErrWrongValueCount.Wrapf("got %d values, want %d", len(values), len(oracle.ValueNames))
	}
	if err := types.ValidateValues(values); err != nil {
		return 0, err
	}

	if k.HasSubmission(ctx, oracleId, periodIndex, source) {
		return 0, types.ErrAlreadySubmitted.Wrapf("%s already pushed to oracle %d in period %d", source, oracleId, periodIndex)
	}

	k.setSubmission(ctx, types.Submission{
		OracleId:    oracleId,
		PeriodIndex: periodIndex,
		Source:      source,
		Values:      values,
		SubmittedAt: now,
	})
	k.bumpLastPushPeriod(ctx, oracleId, periodIndex)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeValuesPushed,
			sdk.NewAttribute(types.AttributeKeyOracleId, strconv.FormatUint(oracleId, 10)),
			sdk.NewAttribute(types.AttributeKeySource, source),
			sdk.NewAttribute(types.AttributeKeyPeriodIndex, strconv.FormatUint(periodIndex, 10)),
			sdk.NewAttribute(types.AttributeKeyNumValues, strconv.Itoa(len(values))),
		),
	)

	if k.metrics != nil {
		k.metrics.ValueSubmissions.With(map[string]string{
			"oracle": strconv.FormatUint(oracleId, 10),
		}).Inc()
	}

	k.Logger(ctx).Debug("values pushed",
		"oracle_id", oracleId,
		"source", source,
		"period_index", periodIndex,
	)

	return periodIndex, nil
}

// GetSubmission returns one source's submission for an oracle period
func (k Keeper) GetSubmission(ctx context.Context, oracleId, periodIndex uint64, source string) (types.Submission, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.SubmissionKey(oracleId, periodIndex, source))
	if bz == nil {
		return types.Submission{}, false
	}

	var sub types.Submission
	k.cdc.MustUnmarshalJSON(bz, &sub)
	return sub, true
}

// HasSubmission reports whether a source already pushed in an oracle period
func (k Keeper) HasSubmission(ctx context.Context, oracleId, periodIndex uint64, source string) bool {
	return k.getStore(ctx).Has(types.SubmissionKey(oracleId, periodIndex, source))
}

func (k Keeper) setSubmission(ctx context.Context, sub types.Submission) {
	store := k.getStore(ctx)
	store.Set(types.SubmissionKey(sub.OracleId, sub.PeriodIndex, sub.Source), k.cdc.MustMarshalJSON(&sub))
}

// GetPeriodSubmissions returns every submission of one oracle period, in
// source-address order
func (k Keeper) GetPeriodSubmissions(ctx context.Context, oracleId, periodIndex uint64) []types.Submission {
	store := k.getStore(ctx)
	iter := storetypes.KVStorePrefixIterator(store, types.SubmissionPeriodPrefix(oracleId, periodIndex))
	defer iter.Close()

	var subs []types.Submission
	for ; iter.Valid(); iter.Next() {
		var sub types.Submission
		k.cdc.MustUnmarshalJSON(iter.Value(), &sub)
		subs = append(subs, sub)
	}
	return subs
}

// CountPeriodSubmissions returns how many distinct sources pushed in one
// oracle period
func (k Keeper) CountPeriodSubmissions(ctx context.Context, oracleId, periodIndex uint64) uint32 {
	store := k.getStore(ctx)
	iter := storetypes.KVStorePrefixIterator(store, types.SubmissionPeriodPrefix(oracleId, periodIndex))
	defer iter.Close()

	var count uint32
	for ; iter.Valid(); iter.Next() {
		count++
	}
	return count
}

// GetAllSubmissions returns every stored submission across all oracles
func (k Keeper) GetAllSubmissions(ctx context.Context) []types.Submission {
	store := k.getStore(ctx)
	iter := storetypes.KVStorePrefixIterator(store, types.SubmissionKeyPrefix)
	defer iter.Close()

	var subs []types.Submission
	for ; iter.Valid(); iter.Next() {
		var sub types.Submission
		k.cdc.MustUnmarshalJSON(iter.Value(), &sub)
		subs = append(subs, sub)
	}
	return subs
}

// GetLastPushPeriod returns the highest period index of an oracle that ever
// received a push
func (k Keeper) GetLastPushPeriod(ctx context.Context, oracleId uint64) (uint64, bool) {
	bz := k.getStore(ctx).Get(types.LastPushPeriodKey(oracleId))
	if bz == nil {
		return 0, false
	}
	return sdk.BigEndianToUint64(bz), true
}

func (k Keeper) setLastPushPeriod(ctx context.Context, oracleId, periodIndex uint64) {
	k.getStore(ctx).Set(types.LastPushPeriodKey(oracleId), sdk.Uint64ToBigEndian(periodIndex))
}

// GetAllLastPushPeriods returns the last push period of every oracle that
// ever received one
func (k Keeper) GetAllLastPushPeriods(ctx context.Context) []types.LastPushPeriod {
	store := k.getStore(ctx)
	iter := storetypes.KVStorePrefixIterator(store, types.LastPushPeriodKeyPrefix)
	defer iter.Close()

	var periods []types.LastPushPeriod
	for ; iter.Valid(); iter.Next() {
		periods = append(periods, types.LastPushPeriod{
			OracleId:    sdk.BigEndianToUint64(iter.Key()[len(types.LastPushPeriodKeyPrefix):]),
			PeriodIndex: sdk.BigEndianToUint64(iter.Value()),
		})
	}
	return periods
}

// bumpLastPushPeriod raises the oracle's last push period when the new push
// landed in a later period, and prunes submissions that fell beyond the
// one-period carryover reach of calculate.
func (k Keeper) bumpLastPushPeriod(ctx context.Context, oracleId, periodIndex uint64) {
	last, ok := k.GetLastPushPeriod(ctx, oracleId)
	if ok && periodIndex <= last {
		return
	}

	k.setLastPushPeriod(ctx, oracleId, periodIndex)

	if periodIndex < 2 {
		return
	}
	if pruned := k.pruneSubmissions(ctx, oracleId, periodIndex-1); pruned > 0 {
		if k.metrics != nil {
			k.metrics.SubmissionsPruned.Add(float64(pruned))
		}
		k.Logger(ctx).Debug("pruned stale submissions",
			"oracle_id", oracleId,
			"pruned", pruned,
			"kept_from_period", periodIndex-1,
		)
	}
}

// pruneSubmissions deletes every submission of the oracle from periods before
// keepFrom and returns how many were removed.
func (k Keeper) pruneSubmissions(ctx context.Context, oracleId, keepFrom uint64) int {
	store := k.getStore(ctx)
	prefix := types.SubmissionOraclePrefix(oracleId)

	iter := storetypes.KVStorePrefixIterator(store, prefix)
	var stale [][]byte
	for ; iter.Valid(); iter.Next() {
		key := iter.Key()
		period := sdk.BigEndianToUint64(key[len(prefix) : len(prefix)+8])
		if period < keepFrom {
			stale = append(stale, append([]byte(nil), key...))
		}
	}
	iter.Close()

	for _, key := range stale {
		store.Delete(key)
	}
	return len(stale)
}
