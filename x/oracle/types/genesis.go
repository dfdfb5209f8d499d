package types

import (
	"fmt"
)

// GenesisState holds the full oracle module state
type GenesisState struct {
	Params           Params           `json:"params" yaml:"params"`
	OracleIdSequence uint64           `json:"oracle_id_sequence" yaml:"oracle_id_sequence"`
	Oracles          []Oracle         `json:"oracles" yaml:"oracles"`
	Submissions      []Submission     `json:"submissions" yaml:"submissions"`
	ExternalValues   []ExternalValue  `json:"external_values" yaml:"external_values"`
	LastPushPeriods  []LastPushPeriod `json:"last_push_periods" yaml:"last_push_periods"`
}

// DefaultGenesis returns the default genesis state for the oracle module.
// The id sequence starts at one; zero is the unset sentinel.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:           DefaultParams(),
		OracleIdSequence: 1,
		Oracles:          []Oracle{},
		Submissions:      []Submission{},
		ExternalValues:   []ExternalValue{},
		LastPushPeriods:  []LastPushPeriod{},
	}
}

// Validate ensures the genesis state is well-formed: parameters are sane,
// oracle ids are unique and covered by the sequence, and every submission and
// finalized value references a known oracle with matching arity.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	if gs.OracleIdSequence == 0 {
		return fmt.Errorf("oracle id sequence must be at least 1")
	}

	oracles := make(map[uint64]Oracle, len(gs.Oracles))
	for _, oracle := range gs.Oracles {
		if err := oracle.Validate(); err != nil {
			return fmt.Errorf("oracle %d: %w", oracle.Id, err)
		}
		if oracle.Id >= gs.OracleIdSequence {
			return fmt.Errorf("oracle id %d not covered by sequence %d", oracle.Id, gs.OracleIdSequence)
		}
		if _, ok := oracles[oracle.Id]; ok {
			return fmt.Errorf("duplicate oracle id %d", oracle.Id)
		}
		oracles[oracle.Id] = oracle
	}

	submitted := make(map[string]struct{}, len(gs.Submissions))
	for _, sub := range gs.Submissions {
		if err := sub.Validate(); err != nil {
			return fmt.Errorf("submission for oracle %d: %w", sub.OracleId, err)
		}
		oracle, ok := oracles[sub.OracleId]
		if !ok {
			return fmt.Errorf("submission references unknown oracle %d", sub.OracleId)
		}
		if len(sub.Values) != len(oracle.ValueNames) {
			return fmt.Errorf("submission for oracle %d carries %d values, want %d", sub.OracleId, len(sub.Values), len(oracle.ValueNames))
		}
		key := fmt.Sprintf("%d/%d/%s", sub.OracleId, sub.PeriodIndex, sub.Source)
		if _, ok := submitted[key]; ok {
			return fmt.Errorf("duplicate submission by %s for oracle %d period %d", sub.Source, sub.OracleId, sub.PeriodIndex)
		}
		submitted[key] = struct{}{}
	}

	valueSlots := make(map[string]struct{}, len(gs.ExternalValues))
	for _, ev := range gs.ExternalValues {
		if err := ev.Validate(); err != nil {
			return fmt.Errorf("external value for oracle %d: %w", ev.OracleId, err)
		}
		oracle, ok := oracles[ev.OracleId]
		if !ok {
			return fmt.Errorf("external value references unknown oracle %d", ev.OracleId)
		}
		if int(ev.ValueIndex) >= len(oracle.ValueNames) {
			return fmt.Errorf("external value index %d out of range for oracle %d", ev.ValueIndex, ev.OracleId)
		}
		key := fmt.Sprintf("%d/%d", ev.OracleId, ev.ValueIndex)
		if _, ok := valueSlots[key]; ok {
			return fmt.Errorf("duplicate external value slot %d for oracle %d", ev.ValueIndex, ev.OracleId)
		}
		valueSlots[key] = struct{}{}
	}

	lastPush := make(map[uint64]struct{}, len(gs.LastPushPeriods))
	for _, lp := range gs.LastPushPeriods {
		if _, ok := oracles[lp.OracleId]; !ok {
			return fmt.Errorf("last push period references unknown oracle %d", lp.OracleId)
		}
		if _, ok := lastPush[lp.OracleId]; ok {
			return fmt.Errorf("duplicate last push period for oracle %d", lp.OracleId)
		}
		lastPush[lp.OracleId] = struct{}{}
	}

	return nil
}
