package jsondiff

import (
	"fmt"
	"strings"
)

// CompareMode governs how the children of arrays & objects are reconciled
type CompareMode uint8

const (
	// Strict requires both sides to match exactly, symmetrically
	Strict CompareMode = iota
	// Inclusive uses the right hand side as the expected reference. the left
	// hand side may carry extra object fields & trailing array elements
	Inclusive
	// Contains behaves like Inclusive for objects, and treats arrays as
	// multisets: every right hand element must match a distinct left hand
	// element, in any order
	Contains
)

// String implements the fmt.Stringer interface
func (m CompareMode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Inclusive:
		return "inclusive"
	case Contains:
		return "contains"
	default:
		return fmt.Sprintf("CompareMode(%d)", uint8(m))
	}
}

// ParseCompareMode reads a mode name as produced by CompareMode.String.
// the empty string is Strict
func ParseCompareMode(s string) (CompareMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return Strict, nil
	case "inclusive", "include":
		return Inclusive, nil
	case "contains", "contain":
		return Contains, nil
	default:
		return Strict, fmt.Errorf("unknown compare mode: %q", s)
	}
}

// NumericMode governs whether integer & float numbers can be equal
type NumericMode uint8

const (
	// NumericStrict considers an integer 1 and a float 1.0 different
	NumericStrict NumericMode = iota
	// AssumeFloat converts both numbers to float64 before comparing
	AssumeFloat
)

// String implements the fmt.Stringer interface
func (m NumericMode) String() string {
	switch m {
	case NumericStrict:
		return "strict"
	case AssumeFloat:
		return "assume_float"
	default:
		return fmt.Sprintf("NumericMode(%d)", uint8(m))
	}
}

// Config holds the comparison semantics of a single call to Compare. The zero
// Config is strict comparison with strict numerics
type Config struct {
	Mode    CompareMode
	Numeric NumericMode
	// Provide a non-nil stats pointer & Compare will populate it with data
	// from the comparison. a Stats pointer must not be shared by concurrent
	// comparisons
	Stats *Stats
}

// Option is a function that adjusts a config, zero or more Options
// can be passed to the Compare function
type Option func(cfg *Config)

// OptionMode sets the compare mode
func OptionMode(m CompareMode) Option {
	return func(cfg *Config) {
		cfg.Mode = m
	}
}

// OptionNumeric sets the numeric mode
func OptionNumeric(m NumericMode) Option {
	return func(cfg *Config) {
		cfg.Numeric = m
	}
}

// OptionAssumeFloat is shorthand for OptionNumeric(AssumeFloat)
func OptionAssumeFloat() Option {
	return OptionNumeric(AssumeFloat)
}

// OptionSetStats will set the passed-in stats pointer when Compare is called
func OptionSetStats(st *Stats) Option {
	return func(cfg *Config) {
		cfg.Stats = st
	}
}

// NewConfig applies opts to the default config
func NewConfig(opts ...Option) Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return *cfg
}
