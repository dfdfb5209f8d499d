package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

type queryServer struct {
	Keeper
}

const (
	defaultPaginationLimit = 100
	maxPaginationLimit     = 1000
)

// NewQueryServerImpl returns an implementation of the QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// sanitizePagination enforces sensible defaults and caps for paginated queries.
func sanitizePagination(p *query.PageRequest) *query.PageRequest {
	if p == nil {
		return &query.PageRequest{Limit: defaultPaginationLimit}
	}

	if p.Limit == 0 {
		p.Limit = defaultPaginationLimit
	}

	if p.Limit > maxPaginationLimit {
		p.Limit = maxPaginationLimit
	}

	return p
}

// queryStatusError maps keeper sentinel errors onto gRPC status codes.
func queryStatusError(err error) error {
	switch {
	case sdkerrors.IsOf(err, types.ErrUnknownOracle, types.ErrNoValueYet):
		return status.Error(codes.NotFound, err.Error())
	case sdkerrors.IsOf(err, types.ErrInvalidValueIndex):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return err
	}
}

// Params queries the oracle module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	return &types.QueryParamsResponse{Params: qs.GetParams(goCtx)}, nil
}

// Oracle queries one oracle by id
func (qs queryServer) Oracle(goCtx context.Context, req *types.QueryOracleRequest) (*types.QueryOracleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if req.OracleId == 0 {
		return nil, status.Error(codes.InvalidArgument, "oracle id cannot be zero")
	}

	oracle, err := qs.GetOracle(goCtx, req.OracleId)
	if err != nil {
		return nil, queryStatusError(err)
	}

	return &types.QueryOracleResponse{Oracle: oracle}, nil
}

// Oracles queries all oracles with pagination
func (qs queryServer) Oracles(goCtx context.Context, req *types.QueryOraclesRequest) (*types.QueryOraclesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	store := ctx.KVStore(qs.storeKey)
	oracleStore := prefix.NewStore(store, types.OracleKeyPrefix)

	var oracles []types.Oracle
	pageRes, err := query.Paginate(oracleStore, sanitizePagination(req.Pagination), func(key []byte, value []byte) error {
		var oracle types.Oracle
		if err := qs.cdc.UnmarshalJSON(value, &oracle); err != nil {
			return err
		}
		oracles = append(oracles, oracle)
		return nil
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryOraclesResponse{Oracles: oracles, Pagination: pageRes}, nil
}

// ExternalValue queries the latest finalized value of one value stream
func (qs queryServer) ExternalValue(goCtx context.Context, req *types.QueryExternalValueRequest) (*types.QueryExternalValueResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if req.OracleId == 0 {
		return nil, status.Error(codes.InvalidArgument, "oracle id cannot be zero")
	}

	oracle, err := qs.GetOracle(goCtx, req.OracleId)
	if err != nil {
		return nil, queryStatusError(err)
	}

	ev, err := qs.GetExternalValue(goCtx, req.OracleId, req.ValueIndex)
	if err != nil {
		return nil, queryStatusError(err)
	}

	return &types.QueryExternalValueResponse{
		ValueName:     oracle.ValueNames[req.ValueIndex],
		ExternalValue: ev,
	}, nil
}

// ExternalValues queries every finalized slot of one oracle
func (qs queryServer) ExternalValues(goCtx context.Context, req *types.QueryExternalValuesRequest) (*types.QueryExternalValuesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if req.OracleId == 0 {
		return nil, status.Error(codes.InvalidArgument, "oracle id cannot be zero")
	}

	oracle, err := qs.GetOracle(goCtx, req.OracleId)
	if err != nil {
		return nil, queryStatusError(err)
	}

	return &types.QueryExternalValuesResponse{
		ValueNames: oracle.ValueNames,
		Values:     qs.GetOracleExternalValues(goCtx, req.OracleId),
	}, nil
}

// PeriodPosition reports where an oracle stands in its cycle at the current
// block time
func (qs queryServer) PeriodPosition(goCtx context.Context, req *types.QueryPeriodPositionRequest) (*types.QueryPeriodPositionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if req.OracleId == 0 {
		return nil, status.Error(codes.InvalidArgument, "oracle id cannot be zero")
	}

	oracle, err := qs.GetOracle(goCtx, req.OracleId)
	if err != nil {
		return nil, queryStatusError(err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	now := ctx.BlockTime().Unix()
	periodIndex, phase := oracle.PhaseAt(now)
	lastPush, _ := qs.GetLastPushPeriod(goCtx, req.OracleId)

	return &types.QueryPeriodPositionResponse{
		PeriodIndex:    periodIndex,
		Phase:          phase.String(),
		PeriodStart:    types.PeriodStart(oracle.PeriodSeconds, oracle.CreatedAt, periodIndex),
		AggregateEnd:   types.AggregateEnd(oracle.PeriodSeconds, oracle.AggregateSeconds, oracle.CreatedAt, periodIndex),
		PeriodEnd:      types.PeriodEnd(oracle.PeriodSeconds, oracle.CreatedAt, periodIndex),
		LastPushPeriod: lastPush,
		BlockTime:      now,
	}, nil
}

// SourceStatus reports one account's standing against an oracle in the
// current period
func (qs queryServer) SourceStatus(goCtx context.Context, req *types.QuerySourceStatusRequest) (*types.QuerySourceStatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if req.OracleId == 0 {
		return nil, status.Error(codes.InvalidArgument, "oracle id cannot be zero")
	}

	if _, err := sdk.AccAddressFromBech32(req.Account); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid account address")
	}

	oracle, err := qs.GetOracle(goCtx, req.OracleId)
	if err != nil {
		return nil, queryStatusError(err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	periodIndex, _ := oracle.PhaseAt(ctx.BlockTime().Unix())

	authorized, err := qs.IsAuthorizedSource(goCtx, oracle, req.Account, periodIndex)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	count, err := qs.AuthorizedSourceCount(goCtx, oracle, periodIndex)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QuerySourceStatusResponse{
		PeriodIndex:           periodIndex,
		Authorized:            authorized,
		Submitted:             qs.HasSubmission(goCtx, req.OracleId, periodIndex, req.Account),
		AuthorizedSourceCount: count,
	}, nil
}
