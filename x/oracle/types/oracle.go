package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"gopkg.in/yaml.v2"
)

// Oracle is the write-once configuration and identity of one oracle. Every
// field is fixed at creation; there is no update path.
type Oracle struct {
	// Id is the sequence-allocated handle, never zero, never reused
	Id uint64 `json:"id" yaml:"id"`
	// Name identifies the oracle to humans; no uniqueness is enforced
	Name string `json:"name" yaml:"name"`
	// Creator is the account that created the oracle
	Creator string `json:"creator" yaml:"creator"`
	// AssetId is passed through to the ranking collaborator untouched
	AssetId string `json:"asset_id" yaml:"asset_id"`
	// TableId is the ranking table registered for this oracle at creation
	TableId uint64 `json:"table_id" yaml:"table_id"`
	// SourceLimit is the minimum distinct sources required to finalize a period
	SourceLimit uint32 `json:"source_limit" yaml:"source_limit"`
	// PeriodSeconds is the total duration of one cycle
	PeriodSeconds uint64 `json:"period_seconds" yaml:"period_seconds"`
	// AggregateSeconds is the prefix of each cycle that accepts pushes
	AggregateSeconds uint64 `json:"aggregate_seconds" yaml:"aggregate_seconds"`
	// ValueNames defines the arity and identity of the tracked value streams
	ValueNames []string `json:"value_names" yaml:"value_names"`
	// CreatedAt is the block time at creation (unix seconds), the period origin
	CreatedAt int64 `json:"created_at" yaml:"created_at"`
}

// NewOracle assembles an oracle record from validated creation inputs.
func NewOracle(id uint64, name, creator, assetId string, tableId uint64, sourceLimit uint32, periodSeconds, aggregateSeconds uint64, valueNames []string, createdAt int64) Oracle {
	return Oracle{
		Id:               id,
		Name:             name,
		Creator:          creator,
		AssetId:          assetId,
		TableId:          tableId,
		SourceLimit:      sourceLimit,
		PeriodSeconds:    periodSeconds,
		AggregateSeconds: aggregateSeconds,
		ValueNames:       valueNames,
		CreatedAt:        createdAt,
	}
}

// ValidateOracleConfig checks the stateless creation rules, first failure
// wins: the source limit must be at least one, the aggregate window must be a
// strict non-empty prefix of the period, and the value names must be a
// non-empty duplicate-free list.
func ValidateOracleConfig(sourceLimit uint32, periodSeconds, aggregateSeconds uint64, valueNames []string) error {
	if sourceLimit < 1 {
		return ErrInvalidConfig.Wrap("source limit must be at least 1")
	}

	if aggregateSeconds == 0 || aggregateSeconds >= periodSeconds {
		return ErrInvalidConfig.Wrapf("aggregate period %d must be positive and shorter than period %d", aggregateSeconds, periodSeconds)
	}

	if len(valueNames) == 0 {
		return ErrInvalidConfig.Wrap("value names cannot be empty")
	}
	seen := make(map[string]struct{}, len(valueNames))
	for _, name := range valueNames {
		if _, ok := seen[name]; ok {
			return ErrInvalidConfig.Wrapf("duplicate value name %q", name)
		}
		seen[name] = struct{}{}
	}

	return nil
}

// Validate checks a stored oracle record, used at genesis import.
func (o Oracle) Validate() error {
	if o.Id == 0 {
		return ErrInvalidConfig.Wrap("oracle id cannot be zero")
	}
	if _, err := sdk.AccAddressFromBech32(o.Creator); err != nil {
		return ErrInvalidConfig.Wrapf("invalid creator address: %s", err)
	}
	return ValidateOracleConfig(o.SourceLimit, o.PeriodSeconds, o.AggregateSeconds, o.ValueNames)
}

// PhaseAt classifies a block time against this oracle's cycle.
func (o Oracle) PhaseAt(now int64) (uint64, Phase) {
	return PhaseOf(o.PeriodSeconds, o.AggregateSeconds, o.CreatedAt, now)
}

// ValueIndexOf resolves a value name to its slot index.
func (o Oracle) ValueIndexOf(name string) (uint32, bool) {
	for i, vn := range o.ValueNames {
		if vn == name {
			return uint32(i), true
		}
	}
	return 0, false
}

func (o Oracle) String() string {
	out, _ := yaml.Marshal(o)
	return string(out)
}
