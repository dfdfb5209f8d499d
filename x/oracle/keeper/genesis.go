package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(fmt.Sprintf("failed to set params: %s", err))
	}

	seq := genState.OracleIdSequence
	if seq == 0 {
		seq = 1
	}
	k.SetOracleIdSequence(ctx, seq)

	for _, oracle := range genState.Oracles {
		k.setOracle(ctx, oracle)
	}

	for _, sub := range genState.Submissions {
		k.setSubmission(ctx, sub)
	}

	for _, ev := range genState.ExternalValues {
		k.setExternalValue(ctx, ev)
	}

	for _, lp := range genState.LastPushPeriods {
		k.setLastPushPeriod(ctx, lp.OracleId, lp.PeriodIndex)
	}

	k.Logger(ctx).Info("oracle module genesis initialized",
		"oracles", len(genState.Oracles),
		"submissions", len(genState.Submissions),
		"external_values", len(genState.ExternalValues),
	)
}

// ExportGenesis returns the module's exported genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return &types.GenesisState{
		Params:           k.GetParams(ctx),
		OracleIdSequence: k.GetOracleIdSequence(ctx),
		Oracles:          k.GetAllOracles(ctx),
		Submissions:      k.GetAllSubmissions(ctx),
		ExternalValues:   k.GetAllExternalValues(ctx),
		LastPushPeriods:  k.GetAllLastPushPeriods(ctx),
	}
}
