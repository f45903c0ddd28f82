// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric kernels and the
// display routines. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotThreshold is the absolute magnitude below which the pre-pivot
	// pass of Inverse treats a diagonal entry as zero and swaps in the next row.
	// It is NOT relative to the matrix scale: matrices whose entries are all
	// tiny (e.g. ~1e-6) trigger swaps even when they are well conditioned.
	DefaultPivotThreshold = 1e-5

	// DefaultPrecision is the number of decimals printed by Show/ShowGorgeous.
	DefaultPrecision = 2

	// DefaultEpsilon is the absolute tolerance used by Equal-style comparisons.
	DefaultEpsilon = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotThresholdInvalid = "matrix: WithPivotThreshold: threshold must be finite, non-negative"
	panicPrecisionInvalid      = "matrix: WithPrecision: precision must be in [0, 17]"
)

// maxPrecision bounds WithPrecision; float64 carries at most 17 significant digits.
const maxPrecision = 17

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	pivotThreshold float64 // DefaultPivotThreshold
	precision      int     // DefaultPrecision
}

// WithPivotThreshold overrides the absolute pre-pivot threshold used by Inverse.
// Implementation:
//   - Stage 1: validate t is finite and ≥ 0.
//   - Stage 2: return a setter that writes t into Options.
//
// Behavior highlights:
//   - t = 0 disables the pre-pivot pass entirely (|x| < 0 never holds).
//
// Errors:
//   - Panics with a stable message when t is invalid.
func WithPivotThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		panic(panicPivotThresholdInvalid)
	}

	return func(o *Options) { o.pivotThreshold = t }
}

// WithPrecision sets the number of decimals written by Show and ShowGorgeous.
// Panics when p is outside [0, 17].
func WithPrecision(p int) Option {
	if p < 0 || p > maxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// NewOptions resolves option setters against documented defaults.
// Exposed so callers (e.g. the sparse package) can forward the same setters.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// PivotThreshold reports the effective pre-pivot threshold.
func (o Options) PivotThreshold() float64 { return o.pivotThreshold }

// Precision reports the effective display precision.
func (o Options) Precision() int { return o.precision }

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins; nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{
		pivotThreshold: DefaultPivotThreshold,
		precision:      DefaultPrecision,
	}
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
