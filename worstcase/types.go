// Package worstcase defines core types, sentinel errors, and configuration
// options for the worst-case-expectation solvers over (weighted) L1 ambiguity
// balls.
//
// Given a payoff vector z and a nominal distribution p̄ over a finite outcome
// space, the solvers find the distribution p within a bounded (weighted) L1
// distance of p̄ that minimizes the expected payoff p·z. Both solvers are
// inner-loop primitives: deterministic, allocation-conscious, and free of I/O.
//
// Errors (sentinel):
//
//	– ErrDimensionMismatch         if input vectors are empty, of unequal
//	  length, or contain NaN/±Inf where finite values are required.
//	– ErrInvalidDistribution       if a nominal component lies outside [0,1].
//	– ErrInvalidBudget             if the deviation budget is negative or NaN.
//	– ErrUnnormalizedDistribution  if the weighted solver's nominal vector
//	  does not sum to 1 within tolerance.
//	– ErrNonPositiveWeight        if a weight is not strictly positive.
//	– ErrInvariantViolation        if the greedy transfer engine computes a
//	  non-positive weight change (a construction bug, never user error).
package worstcase

import "errors"

// Sentinel errors returned by the worst-case solvers.
// Tests and callers must match them via errors.Is.
var (
	// ErrDimensionMismatch indicates empty inputs, unequal vector lengths,
	// or a NaN/±Inf entry where a finite value is required.
	ErrDimensionMismatch = errors.New("worstcase: dimension mismatch or non-finite input")

	// ErrInvalidDistribution indicates a nominal distribution component
	// outside [0,1] beyond the configured tolerance.
	ErrInvalidDistribution = errors.New("worstcase: nominal distribution component outside [0,1]")

	// ErrInvalidBudget indicates a negative (or NaN) deviation budget.
	ErrInvalidBudget = errors.New("worstcase: deviation budget must be non-negative")

	// ErrUnnormalizedDistribution indicates that the weighted solver's nominal
	// distribution does not sum to 1 within tolerance. The unweighted solver
	// intentionally does not perform this check; normalization of its input
	// is the caller's responsibility.
	ErrUnnormalizedDistribution = errors.New("worstcase: nominal distribution does not sum to 1")

	// ErrNonPositiveWeight indicates a weight that is zero, negative, or
	// non-finite. The weighted L1 ball is well-defined only for strictly
	// positive weights.
	ErrNonPositiveWeight = errors.New("worstcase: weights must be strictly positive and finite")

	// ErrInvariantViolation indicates that a greedy transfer computed a
	// weight change ≤ 0. The candidate construction precludes this for any
	// admitted edge; observing it means a construction or numerical bug,
	// not a recoverable user error.
	ErrInvariantViolation = errors.New("worstcase: non-positive weight change in greedy transfer")

	// ErrBadTolerance indicates a non-positive tolerance passed to an
	// option constructor. Raised as a panic at configuration time: a broken
	// tolerance is a programmer error, not a data error.
	ErrBadTolerance = errors.New("worstcase: tolerance must be positive")
)

// Default numeric tolerances. The defaults are deliberately conservative and
// match the solver's stability analysis; override them only when the caller's
// data is known to be noisier (or cleaner) than float64 arithmetic noise.
const (
	// DefaultDistTol is the elementwise slack allowed around [0,1] for
	// nominal components, and the non-negativity slack on outputs.
	DefaultDistTol = 1e-9

	// DefaultSumTol bounds |Σp̄ − 1| in the weighted solver's
	// normalization check.
	DefaultSumTol = 1e-6

	// DefaultGradTol clamps candidate gradients: a gradient not strictly
	// below −DefaultGradTol is treated as non-improving (set to zero).
	DefaultGradTol = 1e-8

	// DefaultGradEpsilon is the width of the near-tie window: edges whose
	// gradients lie within this distance of the current steepest edge are
	// processed together, so numerical ties carry no ordering artifacts.
	DefaultGradEpsilon = 1e-5

	// DefaultMassTol is the donor-exhaustion threshold: a donor holding
	// less probability mass than this is considered empty.
	DefaultMassTol = 1e-10
)

// Options configures the numeric tolerances of both solvers.
//
// The zero value resolves to the package defaults; use DefaultOptions (or
// pass no functional options) unless a tolerance genuinely needs tuning.
// Options never repair inputs — validation reports, it does not correct.
type Options struct {
	DistTol     float64 // elementwise [0,1] slack and output non-negativity slack
	SumTol      float64 // normalization slack |Σp̄ − 1| (weighted solver only)
	GradTol     float64 // clamp threshold for non-improving gradients
	GradEpsilon float64 // near-tie window width in gradient units
	MassTol     float64 // donor-exhaustion and budget-exhaustion threshold
}

// Option represents a functional option for configuring a solver call.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with the package
// default tolerances. Use this as a starting point for overrides.
func DefaultOptions() Options {
	return Options{
		DistTol:     DefaultDistTol,
		SumTol:      DefaultSumTol,
		GradTol:     DefaultGradTol,
		GradEpsilon: DefaultGradEpsilon,
		MassTol:     DefaultMassTol,
	}
}

// WithDistTol overrides the elementwise distribution tolerance.
// Must be positive; non-positive values panic with ErrBadTolerance.
func WithDistTol(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.DistTol = tol
	}
}

// WithSumTol overrides the normalization tolerance of the weighted solver.
// Must be positive; non-positive values panic with ErrBadTolerance.
func WithSumTol(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.SumTol = tol
	}
}

// WithGradTol overrides the gradient clamp threshold.
// Must be positive; non-positive values panic with ErrBadTolerance.
func WithGradTol(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.GradTol = tol
	}
}

// WithGradEpsilon overrides the near-tie window width.
// Must be positive; non-positive values panic with ErrBadTolerance.
func WithGradEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.GradEpsilon = eps
	}
}

// WithMassTol overrides the donor-exhaustion threshold.
// Must be positive; non-positive values panic with ErrBadTolerance.
func WithMassTol(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.MassTol = tol
	}
}

// resolveOptions applies functional options on top of the defaults.
func resolveOptions(opts []Option) Options {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts { // apply each override in order
		opt(&cfg)
	}
	return cfg
}
