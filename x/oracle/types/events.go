package types

// Event types for the oracle module
// All event types use lowercase with underscore separator (module_action format)
const (
	EventTypeOracleCreated   = "oracle_created"
	EventTypeValuesPushed    = "oracle_values_pushed"
	EventTypeValueCalculated = "oracle_value_calculated"
	EventTypeParamsUpdated   = "oracle_params_updated"
)

// Event attribute keys for the oracle module
const (
	AttributeKeyOracleId    = "oracle_id"
	AttributeKeyCreator     = "creator"
	AttributeKeyName        = "name"
	AttributeKeyAssetId     = "asset_id"
	AttributeKeyTableId     = "table_id"
	AttributeKeySource      = "source"
	AttributeKeyPeriodIndex = "period_index"
	AttributeKeyNumValues   = "num_values"
	AttributeKeyValueIndex  = "value_index"
	AttributeKeyValueName   = "value_name"
	AttributeKeyValue       = "value"
	AttributeKeyNumSources  = "num_sources"
	AttributeKeyAuthority   = "authority"
)
