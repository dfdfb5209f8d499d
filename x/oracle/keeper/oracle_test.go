package keeper_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/oracle/types"
)

func TestCreateOracle(t *testing.T) {
	k, _, ctx := keepertest.OracleKeeper(t)

	oracle, err := k.CreateOracle(ctx, testCreator, "btc spot", "BTC", 3, 100, 60, []string{"BTC/USD", "ETH/USD"})
	require.NoError(t, err)

	require.Equal(t, uint64(1), oracle.Id)
	require.Equal(t, uint64(1), oracle.TableId)
	require.Equal(t, "btc spot", oracle.Name)
	require.Equal(t, testCreator, oracle.Creator)
	require.Equal(t, "BTC", oracle.AssetId)
	require.Equal(t, uint32(3), oracle.SourceLimit)
	require.Equal(t, uint64(100), oracle.PeriodSeconds)
	require.Equal(t, uint64(60), oracle.AggregateSeconds)
	require.Equal(t, []string{"BTC/USD", "ETH/USD"}, oracle.ValueNames)
	require.Equal(t, keepertest.BaseTime.Unix(), oracle.CreatedAt)

	stored, err := k.GetOracle(ctx, oracle.Id)
	require.NoError(t, err)
	require.Equal(t, oracle, stored)

	require.True(t, k.HasOracle(ctx, oracle.Id))
	require.Equal(t, uint64(2), k.GetOracleIdSequence(ctx))
	require.True(t, hasEvent(ctx, types.EventTypeOracleCreated))
}

func TestCreateOracleAllocatesSequentialIds(t *testing.T) {
	k, _, ctx := keepertest.OracleKeeper(t)

	first := createTestOracle(t, k, ctx, 3, "BTC/USD")
	second := createTestOracle(t, k, ctx, 3, "ETH/USD")
	third := createTestOracle(t, k, ctx, 3, "ATOM/USD")

	require.Equal(t, uint64(1), first.Id)
	require.Equal(t, uint64(2), second.Id)
	require.Equal(t, uint64(3), third.Id)

	// Each oracle got its own ranking table.
	require.Equal(t, uint64(1), first.TableId)
	require.Equal(t, uint64(2), second.TableId)
	require.Equal(t, uint64(3), third.TableId)
}

func TestCreateOracleInvalidConfig(t *testing.T) {
	k, ts, ctx := keepertest.OracleKeeper(t)

	// A failing table backend would also fail the call, so reaching the
	// config error proves validation runs before table registration.
	ts.CreateErr = errors.New("table backend down")

	_, err := k.CreateOracle(ctx, testCreator, "btc spot", "BTC", 0, 100, 60, []string{"BTC/USD"})
	require.ErrorIs(t, err, types.ErrInvalidConfig)
	require.Contains(t, err.Error(), "source limit")

	require.Empty(t, k.GetAllOracles(ctx))
	require.Equal(t, uint64(0), k.GetOracleIdSequence(ctx))
}

func TestCreateOracleConfigRules(t *testing.T) {
	tests := []struct {
		name             string
		sourceLimit      uint32
		periodSeconds    uint64
		aggregateSeconds uint64
		valueNames       []string
		errMsg           string
	}{
		{"zero aggregate window", 3, 100, 0, []string{"BTC/USD"}, "aggregate period"},
		{"aggregate window fills period", 3, 100, 100, []string{"BTC/USD"}, "aggregate period"},
		{"no value names", 3, 100, 60, nil, "value names cannot be empty"},
		{"duplicate value names", 3, 100, 60, []string{"BTC/USD", "BTC/USD"}, "duplicate value name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, _, ctx := keepertest.OracleKeeper(t)

			_, err := k.CreateOracle(ctx, testCreator, "btc spot", "BTC", tt.sourceLimit, tt.periodSeconds, tt.aggregateSeconds, tt.valueNames)
			require.ErrorIs(t, err, types.ErrInvalidConfig)
			require.Contains(t, err.Error(), tt.errMsg)
			require.Empty(t, k.GetAllOracles(ctx))
		})
	}
}

func TestCreateOracleParamsCaps(t *testing.T) {
	k, _, ctx := keepertest.OracleKeeper(t)
	require.NoError(t, k.SetParams(ctx, types.NewParams(2, 10, 8)))

	_, err := k.CreateOracle(ctx, testCreator, "btc", "BTC", 3, 100, 60, []string{"a", "b", "c"})
	require.ErrorIs(t, err, types.ErrInvalidConfig)
	require.Contains(t, err.Error(), "value names exceeds the maximum")

	_, err = k.CreateOracle(ctx, testCreator, "a name beyond the cap", "BTC", 3, 100, 60, []string{"a"})
	require.ErrorIs(t, err, types.ErrInvalidConfig)
	require.Contains(t, err.Error(), "name length")

	_, err = k.CreateOracle(ctx, testCreator, "btc", "BTC", 3, 100, 60, []string{"far-too-long-value-name"})
	require.ErrorIs(t, err, types.ErrInvalidConfig)
	require.Contains(t, err.Error(), "exceeds the maximum length")

	_, err = k.CreateOracle(ctx, testCreator, "btc", "BTC", 3, 100, 60, []string{"a", ""})
	require.ErrorIs(t, err, types.ErrInvalidConfig)
	require.Contains(t, err.Error(), "value name cannot be empty")

	// Within every cap.
	_, err = k.CreateOracle(ctx, testCreator, "btc", "BTC", 3, 100, 60, []string{"a", "b"})
	require.NoError(t, err)
}

func TestCreateOracleEmptyAssetId(t *testing.T) {
	k, _, ctx := keepertest.OracleKeeper(t)

	_, err := k.CreateOracle(ctx, testCreator, "btc spot", "", 3, 100, 60, []string{"BTC/USD"})
	require.ErrorIs(t, err, types.ErrInvalidConfig)
	require.Contains(t, err.Error(), "asset id cannot be empty")
}

func TestCreateOracleTableRegistrationFails(t *testing.T) {
	k, ts, ctx := keepertest.OracleKeeper(t)
	ts.CreateErr = errors.New("table backend down")

	_, err := k.CreateOracle(ctx, testCreator, "btc spot", "BTC", 3, 100, 60, []string{"BTC/USD"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "table backend down")

	// The failed registration left no trace.
	require.Empty(t, k.GetAllOracles(ctx))
	require.Equal(t, uint64(0), k.GetOracleIdSequence(ctx))

	// The backend recovered; creation resumes from the first id.
	ts.CreateErr = nil
	oracle, err := k.CreateOracle(ctx, testCreator, "btc spot", "BTC", 3, 100, 60, []string{"BTC/USD"})
	require.NoError(t, err)
	require.Equal(t, uint64(1), oracle.Id)
}

func TestOracleIdSequencePersists(t *testing.T) {
	k, _, ctx := keepertest.OracleKeeper(t)

	k.SetOracleIdSequence(ctx, 41)

	oracle := createTestOracle(t, k, ctx, 3, "BTC/USD")
	require.Equal(t, uint64(41), oracle.Id)
	require.Equal(t, uint64(42), k.GetOracleIdSequence(ctx))
}

func TestGetOracleUnknown(t *testing.T) {
	k, _, ctx := keepertest.OracleKeeper(t)

	_, err := k.GetOracle(ctx, 9)
	require.ErrorIs(t, err, types.ErrUnknownOracle)
	require.False(t, k.HasOracle(ctx, 9))
}

func TestGetAllOraclesOrdered(t *testing.T) {
	k, _, ctx := keepertest.OracleKeeper(t)

	createTestOracle(t, k, ctx, 3, "BTC/USD")
	createTestOracle(t, k, ctx, 3, "ETH/USD")
	createTestOracle(t, k, ctx, 3, "ATOM/USD")

	oracles := k.GetAllOracles(ctx)
	require.Len(t, oracles, 3)
	for i, oracle := range oracles {
		require.Equal(t, uint64(i+1), oracle.Id)
	}
	require.True(t, strings.HasPrefix(oracles[0].ValueNames[0], "BTC"))
}
