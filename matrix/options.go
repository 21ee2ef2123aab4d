// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the orthogonalization engine
// and the numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters on top of defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The epsilon here is the stability threshold of the refinement loop in
//     GSO/QR (the "s·ε == 0" flush test). It is NOT a comparison tolerance;
//     EqualApprox takes its tolerance explicitly.
//   - MaxPasses bounds the refinement loop per column. Passes beyond two are
//     rare and tied to numerically dependent columns; the cap only guarantees
//     termination under pathological input.
package matrix

import (
	"math"

	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the IEEE-754 double machine epsilon (2⁻⁵²), the
	// threshold of the flush-to-zero test in GSO/QR.
	DefaultEpsilon = 0x1p-52

	// DefaultMaxPasses caps the number of refinement passes per column.
	DefaultMaxPasses = 64
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite and > 0"
	panicMaxPassesInvalid = "matrix: WithMaxPasses: passes must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps       float64        // > 0; DefaultEpsilon
	maxPasses int            // >= 1; DefaultMaxPasses
	logger    zerolog.Logger // refinement tracing; zerolog.Nop() by default
}

// Epsilon returns the resolved stability threshold.
func (o Options) Epsilon() float64 { return o.eps }

// MaxPasses returns the resolved per-column pass cap.
func (o Options) MaxPasses() int { return o.maxPasses }

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the stability threshold used by the flush-to-zero test.
// Implementation:
//   - Stage 1: validate eps is finite and > 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//
// Inputs:
//   - eps: positive finite threshold.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - The flush test fires when s·eps underflows, so a smaller eps treats more
//     columns as numerically dependent and a larger one fewer.
//
// AI-Hints:
//   - Keep the default unless you mirror a different floating format.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxPasses sets the per-column refinement pass cap.
// Panics when passes < 1.
// Complexity: O(1).
func WithMaxPasses(passes int) Option {
	if passes < 1 {
		panic(panicMaxPassesInvalid)
	}

	return func(o *Options) { o.maxPasses = passes }
}

// WithLogger routes refinement tracing (redo passes, flushed columns) to l.
// Events are emitted at debug level with the fields "op", "col" and "pass".
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against documented defaults.
// Last-writer-wins; pure function.
// Complexity: O(k) for k=len(opts).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		eps:       DefaultEpsilon,
		maxPasses: DefaultMaxPasses,
		logger:    zerolog.Nop(),
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in kernels and facades.
// Nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
