package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgCreateOracle = "create_oracle"
	TypeMsgPushValues   = "push_values"
	TypeMsgCalculate    = "calculate"
	TypeMsgUpdateParams = "update_params"
)

var (
	_ sdk.Msg = &MsgCreateOracle{}
	_ sdk.Msg = &MsgPushValues{}
	_ sdk.Msg = &MsgCalculate{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgCreateOracle registers a new oracle with a write-once configuration.
type MsgCreateOracle struct {
	Creator          string   `json:"creator" yaml:"creator"`
	Name             string   `json:"name" yaml:"name"`
	AssetId          string   `json:"asset_id" yaml:"asset_id"`
	SourceLimit      uint32   `json:"source_limit" yaml:"source_limit"`
	PeriodSeconds    uint64   `json:"period_seconds" yaml:"period_seconds"`
	AggregateSeconds uint64   `json:"aggregate_seconds" yaml:"aggregate_seconds"`
	ValueNames       []string `json:"value_names" yaml:"value_names"`
}

// MsgCreateOracleResponse carries the allocated oracle id.
type MsgCreateOracleResponse struct {
	OracleId uint64 `json:"oracle_id" yaml:"oracle_id"`
}

// NewMsgCreateOracle creates a new MsgCreateOracle instance
func NewMsgCreateOracle(creator, name, assetId string, sourceLimit uint32, periodSeconds, aggregateSeconds uint64, valueNames []string) *MsgCreateOracle {
	return &MsgCreateOracle{
		Creator:          creator,
		Name:             name,
		AssetId:          assetId,
		SourceLimit:      sourceLimit,
		PeriodSeconds:    periodSeconds,
		AggregateSeconds: aggregateSeconds,
		ValueNames:       valueNames,
	}
}

// Route implements sdk.Msg
func (msg *MsgCreateOracle) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg *MsgCreateOracle) Type() string {
	return TypeMsgCreateOracle
}

// GetSigners implements sdk.Msg
// Assumes address is valid (validated in ValidateBasic)
func (msg *MsgCreateOracle) GetSigners() []sdk.AccAddress {
	creator, _ := sdk.AccAddressFromBech32(msg.Creator)
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgCreateOracle) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgCreateOracle) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return ErrInvalidConfig.Wrapf("invalid creator address: %s", err)
	}

	if err := ValidateOracleConfig(msg.SourceLimit, msg.PeriodSeconds, msg.AggregateSeconds, msg.ValueNames); err != nil {
		return err
	}

	if msg.AssetId == "" {
		return ErrInvalidConfig.Wrap("asset id cannot be empty")
	}

	return nil
}

// MsgPushValues submits one value per value name of an oracle for the
// current aggregating period.
type MsgPushValues struct {
	Source   string     `json:"source" yaml:"source"`
	OracleId uint64     `json:"oracle_id" yaml:"oracle_id"`
	Values   []math.Int `json:"values" yaml:"values"`
}

// MsgPushValuesResponse carries the period index the values landed in.
type MsgPushValuesResponse struct {
	PeriodIndex uint64 `json:"period_index" yaml:"period_index"`
}

// NewMsgPushValues creates a new MsgPushValues instance
func NewMsgPushValues(source string, oracleId uint64, values []math.Int) *MsgPushValues {
	return &MsgPushValues{
		Source:   source,
		OracleId: oracleId,
		Values:   values,
	}
}

// Route implements sdk.Msg
func (msg *MsgPushValues) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg *MsgPushValues) Type() string {
	return TypeMsgPushValues
}

// GetSigners implements sdk.Msg
// Assumes address is valid (validated in ValidateBasic)
func (msg *MsgPushValues) GetSigners() []sdk.AccAddress {
	source, _ := sdk.AccAddressFromBech32(msg.Source)
	return []sdk.AccAddress{source}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgPushValues) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgPushValues) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Source); err != nil {
		return ErrUnauthorized.Wrapf("invalid source address: %s", err)
	}

	if msg.OracleId == 0 {
		return ErrUnknownOracle.Wrap("oracle id cannot be zero")
	}

	if len(msg.Values) == 0 {
		return ErrWrongValueCount.Wrap("push carries no values")
	}

	return ValidateValues(msg.Values)
}

// MsgCalculate finalizes one value stream of an oracle for the period whose
// calculate window is open, or for the immediately preceding period when its
// window was missed. Any account may send it.
type MsgCalculate struct {
	Caller     string `json:"caller" yaml:"caller"`
	OracleId   uint64 `json:"oracle_id" yaml:"oracle_id"`
	ValueIndex uint32 `json:"value_index" yaml:"value_index"`
}

// MsgCalculateResponse carries the finalized value.
type MsgCalculateResponse struct {
	Value       math.Int `json:"value" yaml:"value"`
	PeriodIndex uint64   `json:"period_index" yaml:"period_index"`
	NumSources  uint32   `json:"num_sources" yaml:"num_sources"`
}

// NewMsgCalculate creates a new MsgCalculate instance
func NewMsgCalculate(caller string, oracleId uint64, valueIndex uint32) *MsgCalculate {
	return &MsgCalculate{
		Caller:     caller,
		OracleId:   oracleId,
		ValueIndex: valueIndex,
	}
}

// Route implements sdk.Msg
func (msg *MsgCalculate) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg *MsgCalculate) Type() string {
	return TypeMsgCalculate
}

// GetSigners implements sdk.Msg
// Assumes address is valid (validated in ValidateBasic)
func (msg *MsgCalculate) GetSigners() []sdk.AccAddress {
	caller, _ := sdk.AccAddressFromBech32(msg.Caller)
	return []sdk.AccAddress{caller}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgCalculate) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgCalculate) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return ErrUnauthorized.Wrapf("invalid caller address: %s", err)
	}

	if msg.OracleId == 0 {
		return ErrUnknownOracle.Wrap("oracle id cannot be zero")
	}

	return nil
}

// MsgUpdateParams updates the module parameters. Governance-gated.
type MsgUpdateParams struct {
	Authority string `json:"authority" yaml:"authority"`
	Params    Params `json:"params" yaml:"params"`
}

// MsgUpdateParamsResponse is the empty update-params result.
type MsgUpdateParamsResponse struct{}

// NewMsgUpdateParams creates a new MsgUpdateParams instance
func NewMsgUpdateParams(authority string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{
		Authority: authority,
		Params:    params,
	}
}

// Route implements sdk.Msg
func (msg *MsgUpdateParams) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg *MsgUpdateParams) Type() string {
	return TypeMsgUpdateParams
}

// GetSigners implements sdk.Msg
// Assumes address is valid (validated in ValidateBasic)
func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgUpdateParams) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAuthority.Wrapf("invalid authority address: %s", err)
	}

	if err := msg.Params.Validate(); err != nil {
		return ErrInvalidConfig.Wrap(err.Error())
	}

	return nil
}

// MsgServer is the server API of the oracle Msg service, implemented by the
// keeper. Routing is the host application's concern.
type MsgServer interface {
	CreateOracle(ctx context.Context, msg *MsgCreateOracle) (*MsgCreateOracleResponse, error)
	PushValues(ctx context.Context, msg *MsgPushValues) (*MsgPushValuesResponse, error)
	Calculate(ctx context.Context, msg *MsgCalculate) (*MsgCalculateResponse, error)
	UpdateParams(ctx context.Context, msg *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}
