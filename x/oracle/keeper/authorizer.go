package keeper

import (
	"context"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

// IsAuthorizedSource reports whether the account is in the oracle's winning
// source set for the given period. The tablescore module is authoritative;
// answers are never cached because winning sets may change every period.
func (k Keeper) IsAuthorizedSource(ctx context.Context, oracle types.Oracle, account string, periodIndex uint64) (bool, error) {
	return k.tablescore.IsWinner(ctx, oracle.TableId, oracle.AssetId, account, periodIndex)
}

// AuthorizedSourceCount returns the size of the oracle's winning source set
// for the given period. Diagnostic only; push and calculate validate
// authorization per submission and never depend on this count.
func (k Keeper) AuthorizedSourceCount(ctx context.Context, oracle types.Oracle, periodIndex uint64) (uint32, error) {
	return k.tablescore.WinnerCount(ctx, oracle.TableId, oracle.AssetId, periodIndex)
}
