package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterLegacyAminoCodec registers the necessary x/oracle concrete types on
// the provided LegacyAmino codec. These types are used for amino JSON
// serialization, including message sign bytes.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateOracle{}, "meridian/oracle/MsgCreateOracle", nil)
	cdc.RegisterConcrete(&MsgPushValues{}, "meridian/oracle/MsgPushValues", nil)
	cdc.RegisterConcrete(&MsgCalculate{}, "meridian/oracle/MsgCalculate", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "meridian/oracle/MsgUpdateParams", nil)
}

// ModuleCdc references the global x/oracle module codec. State records and
// message sign bytes are encoded as amino JSON; the keeper receives its own
// codec instance at construction.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	ModuleCdc.Seal()
}
