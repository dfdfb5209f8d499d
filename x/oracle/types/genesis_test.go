package types

import (
	"strings"
	"testing"

	"cosmossdk.io/math"
)

// populatedGenesis returns a valid genesis state with one oracle, one
// submission and one finalized value, to mutate in failure cases.
func populatedGenesis() *GenesisState {
	return &GenesisState{
		Params:           DefaultParams(),
		OracleIdSequence: 2,
		Oracles: []Oracle{
			NewOracle(1, "btc spot", validAddress, "BTC", 1, 1, 100, 60, []string{"BTC/USD", "ETH/USD"}, 0),
		},
		Submissions: []Submission{
			{
				OracleId:    1,
				PeriodIndex: 0,
				Source:      validAddress,
				Values:      []math.Int{math.NewInt(50000), math.NewInt(3000)},
				SubmittedAt: 10,
			},
		},
		ExternalValues: []ExternalValue{
			{
				OracleId:     1,
				ValueIndex:   0,
				Value:        math.NewInt(50000),
				PeriodIndex:  0,
				CalculatedAt: 70,
				NumSources:   1,
			},
		},
		LastPushPeriods: []LastPushPeriod{
			{OracleId: 1, PeriodIndex: 0},
		},
	}
}

func TestDefaultGenesis(t *testing.T) {
	gs := DefaultGenesis()

	if gs.OracleIdSequence != 1 {
		t.Errorf("Expected OracleIdSequence 1, got %d", gs.OracleIdSequence)
	}
	if len(gs.Oracles) != 0 {
		t.Errorf("Expected no oracles, got %d", len(gs.Oracles))
	}
	if err := gs.Validate(); err != nil {
		t.Errorf("default genesis failed validation: %v", err)
	}
}

func TestGenesisValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(gs *GenesisState)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid populated state",
			mutate:  func(gs *GenesisState) {},
			wantErr: false,
		},
		{
			name:    "invalid params",
			mutate:  func(gs *GenesisState) { gs.Params.MaxValueNames = 0 },
			wantErr: true,
			errMsg:  "max value names",
		},
		{
			name:    "zero id sequence",
			mutate:  func(gs *GenesisState) { gs.OracleIdSequence = 0 },
			wantErr: true,
			errMsg:  "sequence must be at least 1",
		},
		{
			name:    "oracle id not covered by sequence",
			mutate:  func(gs *GenesisState) { gs.OracleIdSequence = 1 },
			wantErr: true,
			errMsg:  "not covered by sequence",
		},
		{
			name: "duplicate oracle id",
			mutate: func(gs *GenesisState) {
				gs.Oracles = append(gs.Oracles, gs.Oracles[0])
				gs.OracleIdSequence = 3
			},
			wantErr: true,
			errMsg:  "duplicate oracle id",
		},
		{
			name: "invalid oracle record",
			mutate: func(gs *GenesisState) {
				gs.Oracles[0].AggregateSeconds = gs.Oracles[0].PeriodSeconds
			},
			wantErr: true,
			errMsg:  "aggregate period",
		},
		{
			name: "submission for unknown oracle",
			mutate: func(gs *GenesisState) {
				gs.Submissions[0].OracleId = 9
			},
			wantErr: true,
			errMsg:  "unknown oracle",
		},
		{
			name: "submission arity mismatch",
			mutate: func(gs *GenesisState) {
				gs.Submissions[0].Values = []math.Int{math.NewInt(50000)}
			},
			wantErr: true,
			errMsg:  "carries 1 values, want 2",
		},
		{
			name: "duplicate submission",
			mutate: func(gs *GenesisState) {
				gs.Submissions = append(gs.Submissions, gs.Submissions[0])
			},
			wantErr: true,
			errMsg:  "duplicate submission",
		},
		{
			name: "submission with negative value",
			mutate: func(gs *GenesisState) {
				gs.Submissions[0].Values[0] = math.NewInt(-1)
			},
			wantErr: true,
			errMsg:  "is negative",
		},
		{
			name: "external value for unknown oracle",
			mutate: func(gs *GenesisState) {
				gs.ExternalValues[0].OracleId = 9
			},
			wantErr: true,
			errMsg:  "unknown oracle",
		},
		{
			name: "external value index out of range",
			mutate: func(gs *GenesisState) {
				gs.ExternalValues[0].ValueIndex = 2
			},
			wantErr: true,
			errMsg:  "out of range",
		},
		{
			name: "duplicate external value slot",
			mutate: func(gs *GenesisState) {
				gs.ExternalValues = append(gs.ExternalValues, gs.ExternalValues[0])
			},
			wantErr: true,
			errMsg:  "duplicate external value slot",
		},
		{
			name: "external value with zero sources",
			mutate: func(gs *GenesisState) {
				gs.ExternalValues[0].NumSources = 0
			},
			wantErr: true,
			errMsg:  "zero contributing sources",
		},
		{
			name: "last push period for unknown oracle",
			mutate: func(gs *GenesisState) {
				gs.LastPushPeriods[0].OracleId = 9
			},
			wantErr: true,
			errMsg:  "unknown oracle",
		},
		{
			name: "duplicate last push period",
			mutate: func(gs *GenesisState) {
				gs.LastPushPeriods = append(gs.LastPushPeriods, gs.LastPushPeriods[0])
			},
			wantErr: true,
			errMsg:  "duplicate last push period",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := populatedGenesis()
			tt.mutate(gs)

			err := gs.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("GenesisState.Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err != nil && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("GenesisState.Validate() error = %v, want error containing %q", err, tt.errMsg)
			}
		})
	}
}
