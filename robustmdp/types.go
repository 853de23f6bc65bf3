// Package robustmdp defines the model types, sentinel errors, and
// configuration options for robust value iteration over Markov decision
// processes with (weighted) L1 transition ambiguity.
//
// The model is SA-rectangular: nature picks an adversarial transition
// distribution independently for every state-action pair, inside an L1 ball
// around the nominal row. The inner minimization is delegated to the
// worstcase package; this package supplies the outer Bellman fixed-point
// loop.
//
// Errors (sentinel):
//
//	– ErrNilModel           if the model pointer is nil.
//	– ErrDimensionMismatch  if the transition/reward tensors are empty or
//	  ragged, or an entry is non-finite.
//	– ErrNoActions          if some state has no action.
//	– ErrBadDiscount        if the discount factor is outside [0,1).
//	– ErrBadTransition      if a nominal row is not a probability
//	  distribution within tolerance.
//	– ErrBadBudget          if an ambiguity budget is negative or the
//	  per-state-action budget table has the wrong shape.
//	– ErrBadWeights         if the ambiguity weight vector has the wrong
//	  length or a non-positive entry.
package robustmdp

import "errors"

// Sentinel errors returned by robust value iteration.
// Tests and callers must match them via errors.Is.
var (
	// ErrNilModel indicates that a nil *MDP was passed in.
	ErrNilModel = errors.New("robustmdp: model is nil")

	// ErrDimensionMismatch indicates empty or ragged model tensors, or a
	// non-finite reward entry.
	ErrDimensionMismatch = errors.New("robustmdp: dimension mismatch or non-finite input")

	// ErrNoActions indicates a state with an empty action set; the Bellman
	// maximum over its actions would be undefined.
	ErrNoActions = errors.New("robustmdp: state has no actions")

	// ErrBadDiscount indicates a discount factor outside [0,1). A discount
	// of 1 has no contracting fixed point and is rejected.
	ErrBadDiscount = errors.New("robustmdp: discount factor must lie in [0,1)")

	// ErrBadTransition indicates a nominal transition row that is not a
	// probability distribution within tolerance.
	ErrBadTransition = errors.New("robustmdp: transition row is not a distribution")

	// ErrBadBudget indicates a negative ambiguity budget, or a
	// per-state-action budget table whose shape does not match the model.
	ErrBadBudget = errors.New("robustmdp: invalid ambiguity budget")

	// ErrBadWeights indicates an ambiguity weight vector of the wrong
	// length or with a non-positive entry.
	ErrBadWeights = errors.New("robustmdp: invalid ambiguity weights")

	// ErrBadConfig indicates a non-positive convergence threshold or
	// iteration limit. Raised as a panic at configuration time: a broken
	// solver configuration is a programmer error, not a data error.
	ErrBadConfig = errors.New("robustmdp: convergence threshold and iteration limit must be positive")
)

// Default solver configuration.
const (
	// DefaultEps is the sup-norm residual below which value iteration is
	// considered converged.
	DefaultEps = 1e-6

	// DefaultMaxIterations bounds the number of Bellman sweeps.
	DefaultMaxIterations = 1000
)

// MDP is a finite Markov decision process with dense per-state-action
// transition rows and next-state rewards.
//
// Shapes: Transitions[s][a][s'] is the nominal probability of moving to s'
// when playing a in s; Rewards[s][a][s'] is the reward collected on that
// move. Both tensors must agree on every dimension; every state needs at
// least one action; every row must be a probability distribution.
type MDP struct {
	// Transitions holds the nominal transition rows, indexed
	// [state][action][next state].
	Transitions [][][]float64

	// Rewards holds the next-state rewards, indexed like Transitions.
	Rewards [][][]float64

	// Discount is the per-step discount factor γ ∈ [0,1).
	Discount float64
}

// NumStates returns the number of states of the model (0 for a nil model).
func (m *MDP) NumStates() int {
	if m == nil {
		return 0
	}
	return len(m.Transitions)
}

// Result holds the outcome of robust value iteration.
type Result struct {
	// Values is the robust value function, one entry per state.
	Values []float64

	// Policy is the greedy action per state under Values; ties break
	// toward the lowest action index for determinism.
	Policy []int

	// Residual is the final sup-norm Bellman residual.
	Residual float64

	// Iterations is the number of completed Bellman sweeps.
	Iterations int

	// Converged reports whether Residual dropped below the configured
	// threshold before the iteration limit.
	Converged bool
}

// Options configures robust value iteration.
//
// The zero budget (the default) makes nature powerless and the iteration
// reduces to classic expected-value iteration. The zero value of Eps and
// MaxIterations resolves to the package defaults.
type Options struct {
	// Budget is the uniform L1 ambiguity radius applied to every
	// state-action row. Ignored for a pair where Budgets is set.
	Budget float64

	// Budgets optionally overrides Budget per state-action pair; when
	// non-nil its shape must match the model's action sets.
	Budgets [][]float64

	// Weights optionally switches the ambiguity metric to a weighted L1
	// distance over next states; when non-nil its length must equal the
	// state count and all entries must be strictly positive.
	Weights []float64

	// Eps is the sup-norm residual threshold for convergence.
	Eps float64

	// MaxIterations bounds the number of Bellman sweeps.
	MaxIterations int
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// DefaultOptions returns an Options struct with the package defaults:
// zero budget (nominal value iteration), unweighted metric, DefaultEps,
// DefaultMaxIterations.
func DefaultOptions() Options {
	return Options{
		Eps:           DefaultEps,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithBudget sets a uniform L1 ambiguity radius for every state-action row.
// Negative budgets are rejected later with ErrBadBudget.
func WithBudget(xi float64) Option {
	return func(o *Options) {
		o.Budget = xi
	}
}

// WithBudgets sets per-state-action ambiguity radii; overrides WithBudget
// wherever set. Shape and sign are validated against the model.
func WithBudgets(budgets [][]float64) Option {
	return func(o *Options) {
		o.Budgets = budgets
	}
}

// WithWeights switches the ambiguity metric to the weighted L1 distance
// with the given per-next-state weights.
func WithWeights(w []float64) Option {
	return func(o *Options) {
		o.Weights = w
	}
}

// WithEps overrides the convergence threshold.
// Must be positive; non-positive values panic with ErrBadConfig.
func WithEps(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			panic(ErrBadConfig.Error())
		}
		o.Eps = eps
	}
}

// WithMaxIterations overrides the Bellman sweep limit.
// Must be positive; non-positive values panic with ErrBadConfig.
func WithMaxIterations(limit int) Option {
	return func(o *Options) {
		if limit <= 0 {
			panic(ErrBadConfig.Error())
		}
		o.MaxIterations = limit
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
