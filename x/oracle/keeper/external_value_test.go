package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/oracle/types"
)

func TestGetExternalValueBeforeCalculation(t *testing.T) {
	k, _, ctx := keepertest.OracleKeeper(t)
	oracle := createTestOracle(t, k, ctx, 3, "BTC/USD")

	_, err := k.GetExternalValue(ctx, oracle.Id, 0)
	require.ErrorIs(t, err, types.ErrNoValueYet)
	require.Contains(t, err.Error(), "BTC/USD")
}

func TestGetExternalValueUnknownOracle(t *testing.T) {
	k, _, ctx := keepertest.OracleKeeper(t)

	_, err := k.GetExternalValue(ctx, 9, 0)
	require.ErrorIs(t, err, types.ErrUnknownOracle)
}

func TestGetExternalValueInvalidIndex(t *testing.T) {
	k, _, ctx := keepertest.OracleKeeper(t)
	oracle := createTestOracle(t, k, ctx, 3, "BTC/USD")

	_, err := k.GetExternalValue(ctx, oracle.Id, 1)
	require.ErrorIs(t, err, types.ErrInvalidValueIndex)
}

func TestGetExternalValueStableAcrossReads(t *testing.T) {
	k, ts, ctx := keepertest.OracleKeeper(t)
	oracle := createTestOracle(t, k, ctx, 3, "BTC/USD")

	pushRound(t, k, ctx, ts, oracle, 0, 10, 20, 30)
	ev, err := k.Calculate(keepertest.CtxAt(ctx, 60), oracle.Id, 0)
	require.NoError(t, err)

	// Reads return the identical record, no matter how far time moved on.
	for _, offset := range []int64{61, 99, 500, 100000} {
		got, err := k.GetExternalValue(keepertest.CtxAt(ctx, offset), oracle.Id, 0)
		require.NoError(t, err)
		require.Equal(t, ev, got)
	}
}

func TestGetOrCalculateValueTriggersCalculation(t *testing.T) {
	k, ts, ctx := keepertest.OracleKeeper(t)
	oracle := createTestOracle(t, k, ctx, 3, "BTC/USD")

	pushRound(t, k, ctx, ts, oracle, 0, 10, 20, 30)

	// No stored value; the read runs the due calculation itself.
	ev, err := k.GetOrCalculateValue(keepertest.CtxAt(ctx, 60), oracle.Id, 0)
	require.NoError(t, err)
	require.True(t, ev.Value.Equal(math.NewInt(20)))
	require.Equal(t, uint64(0), ev.PeriodIndex)

	// The second read hits the stored record instead of recalculating.
	again, err := k.GetOrCalculateValue(keepertest.CtxAt(ctx, 61), oracle.Id, 0)
	require.NoError(t, err)
	require.Equal(t, ev, again)
}

func TestGetOrCalculateValueReturnsStoredOverDue(t *testing.T) {
	k, ts, ctx := keepertest.OracleKeeper(t)
	oracle := createTestOracle(t, k, ctx, 3, "BTC/USD")

	pushRound(t, k, ctx, ts, oracle, 0, 10, 20, 30)
	_, err := k.Calculate(keepertest.CtxAt(ctx, 60), oracle.Id, 0)
	require.NoError(t, err)

	pushRound(t, k, ctx, ts, oracle, 1, 40, 50, 60)

	// Period 1 is due, but the read prefers the stored period 0 result; only
	// an explicit calculate advances the slot.
	ev, err := k.GetOrCalculateValue(keepertest.CtxAt(ctx, 160), oracle.Id, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(0), ev.PeriodIndex)
	require.True(t, ev.Value.Equal(math.NewInt(20)))
}

func TestGetOrCalculateValuePropagatesFailures(t *testing.T) {
	k, ts, ctx := keepertest.OracleKeeper(t)
	oracle := createTestOracle(t, k, ctx, 3, "BTC/USD")

	// Still aggregating the first period: nothing stored, nothing to finalize.
	_, err := k.GetOrCalculateValue(keepertest.CtxAt(ctx, 10), oracle.Id, 0)
	require.ErrorIs(t, err, types.ErrNotCalculatePeriod)

	// Window open but the source quorum is missing.
	pushRound(t, k, ctx, ts, oracle, 0, 10, 20)
	_, err = k.GetOrCalculateValue(keepertest.CtxAt(ctx, 60), oracle.Id, 0)
	require.ErrorIs(t, err, types.ErrNotEnoughSources)

	// Errors other than a missing value pass through untouched.
	_, err = k.GetOrCalculateValue(ctx, oracle.Id, 7)
	require.ErrorIs(t, err, types.ErrInvalidValueIndex)
	_, err = k.GetOrCalculateValue(ctx, 9, 0)
	require.ErrorIs(t, err, types.ErrUnknownOracle)
}

func TestGetOracleExternalValuesEmpty(t *testing.T) {
	k, _, ctx := keepertest.OracleKeeper(t)
	oracle := createTestOracle(t, k, ctx, 3, "BTC/USD", "ETH/USD")

	require.Empty(t, k.GetOracleExternalValues(ctx, oracle.Id))
}

func TestGetAllExternalValues(t *testing.T) {
	k, ts, ctx := keepertest.OracleKeeper(t)
	first := createTestOracle(t, k, ctx, 1, "BTC/USD")
	second := createTestOracle(t, k, ctx, 1, "ETH/USD")

	source := keepertest.TestSource(0)
	ts.Authorize(first.TableId, source)
	ts.Authorize(second.TableId, source)

	_, err := k.PushValues(keepertest.CtxAt(ctx, 10), first.Id, source, []math.Int{math.NewInt(50000)})
	require.NoError(t, err)
	_, err = k.PushValues(keepertest.CtxAt(ctx, 10), second.Id, source, []math.Int{math.NewInt(3000)})
	require.NoError(t, err)

	_, err = k.Calculate(keepertest.CtxAt(ctx, 60), first.Id, 0)
	require.NoError(t, err)
	_, err = k.Calculate(keepertest.CtxAt(ctx, 60), second.Id, 0)
	require.NoError(t, err)

	values := k.GetAllExternalValues(ctx)
	require.Len(t, values, 2)
	require.Equal(t, first.Id, values[0].OracleId)
	require.Equal(t, second.Id, values[1].OracleId)
	require.True(t, values[0].Value.Equal(math.NewInt(50000)))
	require.True(t, values[1].Value.Equal(math.NewInt(3000)))
}
