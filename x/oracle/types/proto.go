package types

// The oracle messages are amino-encoded plain structs; the gogoproto method
// set below is what lets them satisfy sdk.Msg without generated marshaling
// code. String renders the amino JSON form.

func (msg *MsgCreateOracle) Reset()         { *msg = MsgCreateOracle{} }
func (msg *MsgCreateOracle) ProtoMessage()  {}
func (msg *MsgCreateOracle) String() string { return aminoJSONString(msg) }

func (msg *MsgPushValues) Reset()         { *msg = MsgPushValues{} }
func (msg *MsgPushValues) ProtoMessage()  {}
func (msg *MsgPushValues) String() string { return aminoJSONString(msg) }

func (msg *MsgCalculate) Reset()         { *msg = MsgCalculate{} }
func (msg *MsgCalculate) ProtoMessage()  {}
func (msg *MsgCalculate) String() string { return aminoJSONString(msg) }

func (msg *MsgUpdateParams) Reset()         { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) ProtoMessage()  {}
func (msg *MsgUpdateParams) String() string { return aminoJSONString(msg) }

func aminoJSONString(o interface{}) string {
	bz, err := ModuleCdc.MarshalJSON(o)
	if err != nil {
		return err.Error()
	}
	return string(bz)
}
