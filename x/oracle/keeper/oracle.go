package keeper

import (
	"context"
	"strconv"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

// CreateOracle validates a new oracle configuration, registers its ranking
// table with the tablescore module, allocates the next oracle id and stores
// the write-once record. Nothing is mutated on a validation failure.
func (k Keeper) CreateOracle(ctx context.Context, creator, name, assetId string, sourceLimit uint32, periodSeconds, aggregateSeconds uint64, valueNames []string) (types.Oracle, error) {
	if err := types.ValidateOracleConfig(sourceLimit, periodSeconds, aggregateSeconds, valueNames); err != nil {
		return types.Oracle{}, err
	}

	params := k.GetParams(ctx)
	if uint32(len(valueNames)) > params.MaxValueNames {
		return types.Oracle{}, types.ErrInvalidConfig.Wrapf("%d value names exceeds the maximum %d", len(valueNames), params.MaxValueNames)
	}
	if uint32(len(name)) > params.MaxNameLength {
		return types.Oracle{}, types.ErrInvalidConfig.Wrapf("name length %d exceeds the maximum %d", len(name), params.MaxNameLength)
	}
	for _, vn := range valueNames {
		if vn == "" {
			return types.Oracle{}, types.ErrInvalidConfig.Wrap("value name cannot be empty")
		}
		if uint32(len(vn)) > params.MaxValueNameLength {
			return types.Oracle{}, types.ErrInvalidConfig.Wrapf("value name %q exceeds the maximum length %d", vn, params.MaxValueNameLength)
		}
	}

	if assetId == "" {
		return types.Oracle{}, types.ErrInvalidConfig.Wrap("asset id cannot be empty")
	}

	tableId, err := k.tablescore.CreateTable(ctx, assetId, sourceLimit)
	if err != nil {
		return types.Oracle{}, err
	}

	oracleId, err := k.nextOracleId(ctx)
	if err != nil {
		return types.Oracle{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	oracle := types.NewOracle(oracleId, name, creator, assetId, tableId, sourceLimit, periodSeconds, aggregateSeconds, valueNames, sdkCtx.BlockTime().Unix())
	k.setOracle(ctx, oracle)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOracleCreated,
			sdk.NewAttribute(types.AttributeKeyOracleId, strconv.FormatUint(oracle.Id, 10)),
			sdk.NewAttribute(types.AttributeKeyCreator, oracle.Creator),
			sdk.NewAttribute(types.AttributeKeyName, oracle.Name),
			sdk.NewAttribute(types.AttributeKeyAssetId, oracle.AssetId),
			sdk.NewAttribute(types.AttributeKeyTableId, strconv.FormatUint(oracle.TableId, 10)),
			sdk.NewAttribute(types.AttributeKeyNumValues, strconv.Itoa(len(oracle.ValueNames))),
		),
	)

	if k.metrics != nil {
		k.metrics.OracleCreations.Inc()
	}

	k.Logger(ctx).Info("oracle created",
		"oracle_id", oracle.Id,
		"creator", oracle.Creator,
		"asset_id", oracle.AssetId,
		"table_id", oracle.TableId,
		"value_names", len(oracle.ValueNames),
	)

	return oracle, nil
}

// GetOracle returns the oracle record for the given id
func (k Keeper) GetOracle(ctx context.Context, oracleId uint64) (types.Oracle, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.OracleKey(oracleId))
	if bz == nil {
		return types.Oracle{}, types.ErrUnknownOracle.Wrapf("oracle %d", oracleId)
	}

	var oracle types.Oracle
	k.cdc.MustUnmarshalJSON(bz, &oracle)
	return oracle, nil
}

// HasOracle reports whether an oracle with the given id exists
func (k Keeper) HasOracle(ctx context.Context, oracleId uint64) bool {
	return k.getStore(ctx).Has(types.OracleKey(oracleId))
}

func (k Keeper) setOracle(ctx context.Context, oracle types.Oracle) {
	store := k.getStore(ctx)
	store.Set(types.OracleKey(oracle.Id), k.cdc.MustMarshalJSON(&oracle))
}

// GetAllOracles returns every oracle record, ordered by id
func (k Keeper) GetAllOracles(ctx context.Context) []types.Oracle {
	store := k.getStore(ctx)
	iter := storetypes.KVStorePrefixIterator(store, types.OracleKeyPrefix)
	defer iter.Close()

	var oracles []types.Oracle
	for ; iter.Valid(); iter.Next() {
		var oracle types.Oracle
		k.cdc.MustUnmarshalJSON(iter.Value(), &oracle)
		oracles = append(oracles, oracle)
	}
	return oracles
}

// GetOracleIdSequence returns the next oracle id to allocate. Zero means the
// sequence was never initialized; allocation treats it as one.
func (k Keeper) GetOracleIdSequence(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(types.OracleIdSequenceKey)
	return sdk.BigEndianToUint64(bz)
}

// SetOracleIdSequence sets the next oracle id to allocate
func (k Keeper) SetOracleIdSequence(ctx context.Context, seq uint64) {
	k.getStore(ctx).Set(types.OracleIdSequenceKey, sdk.Uint64ToBigEndian(seq))
}

// nextOracleId allocates the next oracle id. Ids start at one; zero is the
// unset sentinel.
func (k Keeper) nextOracleId(ctx context.Context) (uint64, error) {
	seq := k.GetOracleIdSequence(ctx)
	if seq == 0 {
		seq = 1
	}

	next := seq + 1
	if next == 0 {
		return 0, types.ErrOracleIdOverflow
	}

	k.SetOracleIdSequence(ctx, next)
	return seq, nil
}
