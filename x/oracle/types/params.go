package types

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// Default parameter values. The caps bound state growth per oracle; they
// refine the creation rules and never relax them.
const (
	DefaultMaxValueNames      = 16
	DefaultMaxNameLength      = 64
	DefaultMaxValueNameLength = 32
)

// Params defines the governance-adjustable oracle module parameters
type Params struct {
	// MaxValueNames caps how many value streams one oracle may track
	MaxValueNames uint32 `json:"max_value_names" yaml:"max_value_names"`
	// MaxNameLength caps the oracle name length in bytes
	MaxNameLength uint32 `json:"max_name_length" yaml:"max_name_length"`
	// MaxValueNameLength caps each value name length in bytes
	MaxValueNameLength uint32 `json:"max_value_name_length" yaml:"max_value_name_length"`
}

// NewParams creates a new Params instance
func NewParams(maxValueNames, maxNameLength, maxValueNameLength uint32) Params {
	return Params{
		MaxValueNames:      maxValueNames,
		MaxNameLength:      maxNameLength,
		MaxValueNameLength: maxValueNameLength,
	}
}

// DefaultParams returns default oracle module parameters
func DefaultParams() Params {
	return NewParams(DefaultMaxValueNames, DefaultMaxNameLength, DefaultMaxValueNameLength)
}

// Validate ensures the parameter set is usable.
func (p Params) Validate() error {
	if p.MaxValueNames == 0 {
		return fmt.Errorf("max value names must be positive")
	}
	if p.MaxNameLength == 0 {
		return fmt.Errorf("max name length must be positive")
	}
	if p.MaxValueNameLength == 0 {
		return fmt.Errorf("max value name length must be positive")
	}
	return nil
}

// String implements the Stringer interface
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}
