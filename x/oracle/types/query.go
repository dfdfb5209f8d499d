package types

import (
	"context"

	"github.com/cosmos/cosmos-sdk/types/query"
)

// QueryParamsRequest is the request type for the Query/Params RPC method
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Query/Params RPC method
type QueryParamsResponse struct {
	Params Params `json:"params" yaml:"params"`
}

// QueryOracleRequest is the request type for the Query/Oracle RPC method
type QueryOracleRequest struct {
	OracleId uint64 `json:"oracle_id" yaml:"oracle_id"`
}

// QueryOracleResponse is the response type for the Query/Oracle RPC method
type QueryOracleResponse struct {
	Oracle Oracle `json:"oracle" yaml:"oracle"`
}

// QueryOraclesRequest is the request type for the Query/Oracles RPC method
type QueryOraclesRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty" yaml:"pagination"`
}

// QueryOraclesResponse is the response type for the Query/Oracles RPC method
type QueryOraclesResponse struct {
	Oracles    []Oracle            `json:"oracles" yaml:"oracles"`
	Pagination *query.PageResponse `json:"pagination,omitempty" yaml:"pagination"`
}

// QueryExternalValueRequest is the request type for the Query/ExternalValue
// RPC method
type QueryExternalValueRequest struct {
	OracleId   uint64 `json:"oracle_id" yaml:"oracle_id"`
	ValueIndex uint32 `json:"value_index" yaml:"value_index"`
}

// QueryExternalValueResponse is the response type for the Query/ExternalValue
// RPC method
type QueryExternalValueResponse struct {
	ValueName     string        `json:"value_name" yaml:"value_name"`
	ExternalValue ExternalValue `json:"external_value" yaml:"external_value"`
}

// QueryExternalValuesRequest is the request type for the Query/ExternalValues
// RPC method
type QueryExternalValuesRequest struct {
	OracleId uint64 `json:"oracle_id" yaml:"oracle_id"`
}

// QueryExternalValuesResponse lists every finalized slot of one oracle. The
// value names give the oracle's full arity; slots never calculated are absent
// from Values.
type QueryExternalValuesResponse struct {
	ValueNames []string        `json:"value_names" yaml:"value_names"`
	Values     []ExternalValue `json:"values" yaml:"values"`
}

// QueryPeriodPositionRequest is the request type for the Query/PeriodPosition
// RPC method
type QueryPeriodPositionRequest struct {
	OracleId uint64 `json:"oracle_id" yaml:"oracle_id"`
}

// QueryPeriodPositionResponse describes where an oracle stands in its cycle
// at the current block time. Diagnostic only.
type QueryPeriodPositionResponse struct {
	PeriodIndex    uint64 `json:"period_index" yaml:"period_index"`
	Phase          string `json:"phase" yaml:"phase"`
	PeriodStart    int64  `json:"period_start" yaml:"period_start"`
	AggregateEnd   int64  `json:"aggregate_end" yaml:"aggregate_end"`
	PeriodEnd      int64  `json:"period_end" yaml:"period_end"`
	LastPushPeriod uint64 `json:"last_push_period" yaml:"last_push_period"`
	BlockTime      int64  `json:"block_time" yaml:"block_time"`
}

// QuerySourceStatusRequest is the request type for the Query/SourceStatus RPC
// method
type QuerySourceStatusRequest struct {
	OracleId uint64 `json:"oracle_id" yaml:"oracle_id"`
	Account  string `json:"account" yaml:"account"`
}

// QuerySourceStatusResponse describes one account's standing against an
// oracle in the current period. Diagnostic only; push validates authorization
// itself.
type QuerySourceStatusResponse struct {
	PeriodIndex           uint64 `json:"period_index" yaml:"period_index"`
	Authorized            bool   `json:"authorized" yaml:"authorized"`
	Submitted             bool   `json:"submitted" yaml:"submitted"`
	AuthorizedSourceCount uint32 `json:"authorized_source_count" yaml:"authorized_source_count"`
}

// QueryServer is the server API of the oracle Query service, implemented by
// the keeper. Routing is the host application's concern.
type QueryServer interface {
	Params(ctx context.Context, req *QueryParamsRequest) (*QueryParamsResponse, error)
	Oracle(ctx context.Context, req *QueryOracleRequest) (*QueryOracleResponse, error)
	Oracles(ctx context.Context, req *QueryOraclesRequest) (*QueryOraclesResponse, error)
	ExternalValue(ctx context.Context, req *QueryExternalValueRequest) (*QueryExternalValueResponse, error)
	ExternalValues(ctx context.Context, req *QueryExternalValuesRequest) (*QueryExternalValuesResponse, error)
	PeriodPosition(ctx context.Context, req *QueryPeriodPositionRequest) (*QueryPeriodPositionResponse, error)
	SourceStatus(ctx context.Context, req *QuerySourceStatusRequest) (*QuerySourceStatusResponse, error)
}
