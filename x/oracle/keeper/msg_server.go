package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreateOracle handles oracle registration
func (ms msgServer) CreateOracle(goCtx context.Context, msg *types.MsgCreateOracle) (*types.MsgCreateOracleResponse, error) {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return nil, types.ErrInvalidConfig.Wrapf("invalid creator address: %s", err)
	}

	oracle, err := ms.Keeper.CreateOracle(goCtx, msg.Creator, msg.Name, msg.AssetId, msg.SourceLimit, msg.PeriodSeconds, msg.AggregateSeconds, msg.ValueNames)
	if err != nil {
		return nil, err
	}

	return &types.MsgCreateOracleResponse{OracleId: oracle.Id}, nil
}

// PushValues handles value submission from winning sources
func (ms msgServer) PushValues(goCtx context.Context, msg *types.MsgPushValues) (*types.MsgPushValuesResponse, error) {
	if _, err := sdk.AccAddressFromBech32(msg.Source); err != nil {
		return nil, types.ErrUnauthorized.Wrapf("invalid source address: %s", err)
	}

	periodIndex, err := ms.Keeper.PushValues(goCtx, msg.OracleId, msg.Source, msg.Values)
	if err != nil {
		if ms.metrics != nil {
			ms.metrics.RejectedPushes.With(map[string]string{
				"reason": pushRejectReason(err),
			}).Inc()
		}
		return nil, err
	}

	return &types.MsgPushValuesResponse{PeriodIndex: periodIndex}, nil
}

// Calculate handles permissionless value finalization
func (ms msgServer) Calculate(goCtx context.Context, msg *types.MsgCalculate) (*types.MsgCalculateResponse, error) {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return nil, types.ErrUnauthorized.Wrapf("invalid caller address: %s", err)
	}

	ev, err := ms.Keeper.Calculate(goCtx, msg.OracleId, msg.ValueIndex)
	if err != nil {
		return nil, err
	}

	return &types.MsgCalculateResponse{
		Value:       ev.Value,
		PeriodIndex: ev.PeriodIndex,
		NumSources:  ev.NumSources,
	}, nil
}

// UpdateParams handles governance parameter updates
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if msg.Authority != ms.authority {
		return nil, types.ErrInvalidAuthority.Wrapf("expected %s, got %s", ms.authority, msg.Authority)
	}

	if err := ms.SetParams(goCtx, msg.Params); err != nil {
		return nil, types.ErrInvalidConfig.Wrap(err.Error())
	}

	sdkCtx := sdk.UnwrapSDKContext(goCtx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeParamsUpdated,
			sdk.NewAttribute(types.AttributeKeyAuthority, msg.Authority),
		),
	)

	ms.Logger(goCtx).Info("oracle params updated", "authority", msg.Authority)

	return &types.MsgUpdateParamsResponse{}, nil
}

// pushRejectReason maps a push failure onto its metric label.
func pushRejectReason(err error) string {
	switch {
	case sdkerrors.IsOf(err, types.ErrUnknownOracle):
		return "unknown_oracle"
	case sdkerrors.IsOf(err, types.ErrNotAggregatingPeriod):
		return "not_aggregating"
	case sdkerrors.IsOf(err, types.ErrUnauthorized):
		return "unauthorized"
	case sdkerrors.IsOf(err, types.ErrWrongValueCount):
		return "wrong_value_count"
	case sdkerrors.IsOf(err, types.ErrInvalidValue):
		return "invalid_value"
	case sdkerrors.IsOf(err, types.ErrAlreadySubmitted):
		return "already_submitted"
	default:
		return "other"
	}
}
