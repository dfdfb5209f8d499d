package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Oracle module sentinel errors
var (
	// Configuration errors
	ErrInvalidConfig    = sdkerrors.Register(ModuleName, 2, "invalid oracle config")
	ErrOracleIdOverflow = sdkerrors.Register(ModuleName, 3, "oracle id sequence overflow")

	// Lookup errors
	ErrUnknownOracle = sdkerrors.Register(ModuleName, 4, "unknown oracle")
	ErrNoValueYet    = sdkerrors.Register(ModuleName, 5, "no value calculated yet")

	// Timing errors
	ErrNotAggregatingPeriod = sdkerrors.Register(ModuleName, 6, "not in aggregating period")
	ErrNotCalculatePeriod   = sdkerrors.Register(ModuleName, 7, "not in calculate period")

	// Authorization errors
	ErrUnauthorized     = sdkerrors.Register(ModuleName, 8, "source not authorized")
	ErrInvalidAuthority = sdkerrors.Register(ModuleName, 9, "invalid authority")

	// Shape errors
	ErrWrongValueCount   = sdkerrors.Register(ModuleName, 10, "wrong value count")
	ErrInvalidValueIndex = sdkerrors.Register(ModuleName, 11, "invalid value index")
	ErrInvalidValue      = sdkerrors.Register(ModuleName, 12, "invalid value")

	// Duplication guards
	ErrAlreadySubmitted  = sdkerrors.Register(ModuleName, 13, "already submitted this period")
	ErrAlreadyCalculated = sdkerrors.Register(ModuleName, 14, "value already calculated")

	// Insufficiency errors
	ErrNotEnoughSources = sdkerrors.Register(ModuleName, 15, "not enough sources")
)
