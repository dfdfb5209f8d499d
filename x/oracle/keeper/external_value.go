package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

// GetExternalValue returns the latest finalized value of one oracle value
// stream. This is the read path for consumer modules.
func (k Keeper) GetExternalValue(ctx context.Context, oracleId uint64, valueIndex uint32) (types.ExternalValue, error) {
	oracle, err := k.GetOracle(ctx, oracleId)
	if err != nil {
		return types.ExternalValue{}, err
	}
	if int(valueIndex) >= len(oracle.ValueNames) {
		return types.ExternalValue{}, types.ErrInvalidValueIndex.Wrapf("index %d out of range, oracle %d tracks %d values", valueIndex, oracleId, len(oracle.ValueNames))
	}

	ev, ok := k.getExternalValue(ctx, oracleId, valueIndex)
	if !ok {
		return types.ExternalValue{}, types.ErrNoValueYet.Wrapf("oracle %d value %q was never calculated", oracleId, oracle.ValueNames[valueIndex])
	}
	return ev, nil
}

// GetOrCalculateValue returns the latest finalized value, running a
// calculation first when the slot was never finalized. Consumer modules that
// prefer triggering a due finalization over failing read through this.
func (k Keeper) GetOrCalculateValue(ctx context.Context, oracleId uint64, valueIndex uint32) (types.ExternalValue, error) {
	ev, err := k.GetExternalValue(ctx, oracleId, valueIndex)
	if err == nil {
		return ev, nil
	}
	if !sdkerrors.IsOf(err, types.ErrNoValueYet) {
		return types.ExternalValue{}, err
	}
	return k.Calculate(ctx, oracleId, valueIndex)
}

func (k Keeper) getExternalValue(ctx context.Context, oracleId uint64, valueIndex uint32) (types.ExternalValue, bool) {
	bz := k.getStore(ctx).Get(types.ExternalValueKey(oracleId, valueIndex))
	if bz == nil {
		return types.ExternalValue{}, false
	}

	var ev types.ExternalValue
	k.cdc.MustUnmarshalJSON(bz, &ev)
	return ev, true
}

func (k Keeper) setExternalValue(ctx context.Context, ev types.ExternalValue) {
	store := k.getStore(ctx)
	store.Set(types.ExternalValueKey(ev.OracleId, ev.ValueIndex), k.cdc.MustMarshalJSON(&ev))
}

// GetOracleExternalValues returns every finalized slot of one oracle, in
// value-index order
func (k Keeper) GetOracleExternalValues(ctx context.Context, oracleId uint64) []types.ExternalValue {
	store := k.getStore(ctx)
	iter := storetypes.KVStorePrefixIterator(store, types.ExternalValueOraclePrefix(oracleId))
	defer iter.Close()

	var values []types.ExternalValue
	for ; iter.Valid(); iter.Next() {
		var ev types.ExternalValue
		k.cdc.MustUnmarshalJSON(iter.Value(), &ev)
		values = append(values, ev)
	}
	return values
}

// GetAllExternalValues returns every finalized value across all oracles
func (k Keeper) GetAllExternalValues(ctx context.Context) []types.ExternalValue {
	store := k.getStore(ctx)
	iter := storetypes.KVStorePrefixIterator(store, types.ExternalValueKeyPrefix)
	defer iter.Close()

	var values []types.ExternalValue
	for ; iter.Valid(); iter.Next() {
		var ev types.ExternalValue
		k.cdc.MustUnmarshalJSON(iter.Value(), &ev)
		values = append(values, ev)
	}
	return values
}
