package types

import (
	"context"
)

// TablescoreKeeper is the expected interface of the source-ranking module.
// It is authoritative for which accounts may push into an oracle in a given
// period; this module never re-validates ranking scores and never caches its
// answers, since winning sets may legitimately change every period.
type TablescoreKeeper interface {
	// CreateTable registers a ranking table for an asset with the given head
	// size and returns its handle.
	CreateTable(ctx context.Context, assetId string, sourceLimit uint32) (uint64, error)

	// IsWinner reports whether the account is in the table's current winning
	// set for the given period.
	IsWinner(ctx context.Context, tableId uint64, assetId, account string, periodIndex uint64) (bool, error)

	// WinnerCount returns the size of the table's current winning set for the
	// given period.
	WinnerCount(ctx context.Context, tableId uint64, assetId string, periodIndex uint64) (uint32, error)
}
