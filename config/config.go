// Package config holds the tunable parameters of a factoring run.
package config

import (
	"time"

	"github.com/google/go-cmp/cmp"
)

// Config recognizes the options spec.md §6 lists as the programmatic
// API's configuration surface.
type Config struct {
	// Threads is the worker count; 0 selects hardware parallelism.
	Threads int
	// FactorBaseSize overrides the digit-count-derived default B.
	FactorBaseSize int
	// LowerBoundPercent is the sieve threshold percent (default 85).
	LowerBoundPercent float64
	// IntervalSize is the k-values-per-window sieve interval (default 200000).
	IntervalSize int
	// Multiplier is the small odd k prepended to n; 0 selects automatic scoring.
	Multiplier uint64
	// ThresholdExponent is carried in the configuration but not read by
	// the sieve or the driver: T depends only on LowerBoundPercent.
	ThresholdExponent float64
	// ProcessPartialRelations enables the one-large-prime partial-relation cycle path.
	ProcessPartialRelations bool
	// MergeLimit is the structured-elimination row-weight cap (spec default range 5-10).
	MergeLimit int
	// SieveTimeLimit bounds sieve wall-clock time; 0 means unbounded.
	SieveTimeLimit time.Duration
	// ReportingInterval is carried in the configuration but not read: the
	// sieve emits no periodic progress events, only one "sieve.done"
	// event at the end of each run.
	ReportingInterval time.Duration
	// Report, if set, receives structured diagnostic events from the
	// sieve and driver -- the library stays silent by default and
	// callers wire their own observability on top, the same posture the
	// teacher's core packages take.
	Report func(event string, fields map[string]any)
}

// Default returns a Config with every field at its spec-mandated
// default.
func Default() Config {
	return Config{
		LowerBoundPercent:       85,
		IntervalSize:            200000,
		ProcessPartialRelations: true,
		MergeLimit:              8,
	}
}

// Equal reports whether c and other hold the same configuration,
// ignoring the Report callback (function values are never comparable).
func (c Config) Equal(other Config) bool {
	c.Report, other.Report = nil, nil
	return cmp.Equal(c, other)
}

// WithDefaults fills any zero-valued tunable in c with Default()'s
// value, leaving explicit overrides untouched.
func (c Config) WithDefaults() Config {
	d := Default()
	if c.LowerBoundPercent == 0 {
		c.LowerBoundPercent = d.LowerBoundPercent
	}
	if c.IntervalSize == 0 {
		c.IntervalSize = d.IntervalSize
	}
	if c.MergeLimit == 0 {
		c.MergeLimit = d.MergeLimit
	}
	return c
}
