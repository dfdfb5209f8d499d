package keeper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
	"github.com/stretchr/testify/require"

	"github.com/meridian-chain/meridian/x/oracle/keeper"
	"github.com/meridian-chain/meridian/x/oracle/types"
)

// BaseTime is the fixture's initial block time. Tests move forward from it
// with CtxAt, so oracle period offsets read like the raw seconds.
var BaseTime = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

// OracleKeeper builds an oracle keeper over a fresh in-memory multistore,
// wired to a stub tablescore whose winning sets the test controls.
func OracleKeeper(t testing.TB) (*keeper.Keeper, *StubTablescore, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	cdc := codec.NewLegacyAmino()
	types.RegisterLegacyAminoCodec(cdc)

	tablescore := NewStubTablescore()
	k := keeper.NewKeeper(cdc, storeKey, tablescore, types.DefaultAuthority())

	ctx := sdk.NewContext(stateStore, cmtproto.Header{
		ChainID: "meridian-test-1",
		Height:  1,
		Time:    BaseTime,
	}, false, log.NewNopLogger())

	require.NoError(t, k.SetParams(ctx, types.DefaultParams()))

	return k, tablescore, ctx
}

// CtxAt returns the context advanced to the given offset from BaseTime.
func CtxAt(ctx sdk.Context, offsetSeconds int64) sdk.Context {
	return ctx.WithBlockTime(BaseTime.Add(time.Duration(offsetSeconds) * time.Second))
}

// TestSource returns a deterministic bech32 account address for source i.
func TestSource(i int) string {
	return sdk.AccAddress(address.Hash("oracle-test-source", []byte{byte(i)})).String()
}

// StubTablescore implements types.TablescoreKeeper with winning sets the test
// sets directly. A table's default set answers every period unless the test
// pinned a per-period set.
type StubTablescore struct {
	nextTableId uint64
	tables      map[uint64]*stubTable

	// CreateErr, when set, is returned by the next CreateTable call.
	CreateErr error
}

type stubTable struct {
	assetId       string
	sourceLimit   uint32
	winners       map[string]struct{}
	periodWinners map[uint64]map[string]struct{}
}

var _ types.TablescoreKeeper = (*StubTablescore)(nil)

// NewStubTablescore creates an empty stub ranking module
func NewStubTablescore() *StubTablescore {
	return &StubTablescore{
		nextTableId: 1,
		tables:      make(map[uint64]*stubTable),
	}
}

// CreateTable implements types.TablescoreKeeper
func (s *StubTablescore) CreateTable(_ context.Context, assetId string, sourceLimit uint32) (uint64, error) {
	if s.CreateErr != nil {
		return 0, s.CreateErr
	}

	id := s.nextTableId
	s.nextTableId++
	s.tables[id] = &stubTable{
		assetId:       assetId,
		sourceLimit:   sourceLimit,
		winners:       make(map[string]struct{}),
		periodWinners: make(map[uint64]map[string]struct{}),
	}
	return id, nil
}

// IsWinner implements types.TablescoreKeeper
func (s *StubTablescore) IsWinner(_ context.Context, tableId uint64, _ string, account string, periodIndex uint64) (bool, error) {
	table, ok := s.tables[tableId]
	if !ok {
		return false, fmt.Errorf("unknown table %d", tableId)
	}

	_, in := table.effectiveSet(periodIndex)[account]
	return in, nil
}

// WinnerCount implements types.TablescoreKeeper
func (s *StubTablescore) WinnerCount(_ context.Context, tableId uint64, _ string, periodIndex uint64) (uint32, error) {
	table, ok := s.tables[tableId]
	if !ok {
		return 0, fmt.Errorf("unknown table %d", tableId)
	}

	return uint32(len(table.effectiveSet(periodIndex))), nil
}

func (t *stubTable) effectiveSet(periodIndex uint64) map[string]struct{} {
	if set, ok := t.periodWinners[periodIndex]; ok {
		return set
	}
	return t.winners
}

// Authorize adds accounts to the table's default winning set
func (s *StubTablescore) Authorize(tableId uint64, accounts ...string) {
	table := s.ensureTable(tableId)
	for _, acc := range accounts {
		table.winners[acc] = struct{}{}
	}
}

// AuthorizeForPeriod pins the winning set of one period, overriding the
// default set for that period only
func (s *StubTablescore) AuthorizeForPeriod(tableId, periodIndex uint64, accounts ...string) {
	table := s.ensureTable(tableId)
	set := make(map[string]struct{}, len(accounts))
	for _, acc := range accounts {
		set[acc] = struct{}{}
	}
	table.periodWinners[periodIndex] = set
}

// Revoke removes accounts from the table's default winning set
func (s *StubTablescore) Revoke(tableId uint64, accounts ...string) {
	table := s.ensureTable(tableId)
	for _, acc := range accounts {
		delete(table.winners, acc)
	}
}

func (s *StubTablescore) ensureTable(tableId uint64) *stubTable {
	table, ok := s.tables[tableId]
	if !ok {
		table = &stubTable{
			winners:       make(map[string]struct{}),
			periodWinners: make(map[uint64]map[string]struct{}),
		}
		s.tables[tableId] = table
		if tableId >= s.nextTableId {
			s.nextTableId = tableId + 1
		}
	}
	return table
}
