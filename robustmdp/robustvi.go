// Package robustmdp - robust value iteration.
//
// RobustValueIteration computes the SA-rectangular robust value function:
// at every state-action pair, nature replaces the nominal transition row
// with the worst admissible row inside the configured (weighted) L1 ball,
// and the agent maximizes over actions against that adversary. The inner
// minimization is exactly the worstcase package's solvers applied to the
// one-step continuation payoffs.
//
// Algorithm Outline:
//  1. Validate the model, budgets, and weights; fail fast with sentinels.
//  2. Start from v ≡ 0. Per sweep, per state s, per action a:
//     u[s'] = R[s][a][s'] + γ·v[s']       (continuation payoffs)
//     q(s,a) = min_{p ∈ ball(P[s][a], ξ)} p·u   (nature's response)
//     vNext[s] = max_a q(s,a), argmax recorded as the greedy policy.
//  3. Stop when the sup-norm residual ‖vNext − v‖∞ ≤ Eps or the sweep
//     limit is reached.
//
// The robust Bellman operator is a γ-contraction in the sup norm, so the
// iteration converges geometrically for any γ ∈ [0,1).
//
// Complexity:
//
//	Time   = O(iter · S · A · S log S)  (each inner solve is O(S log S))
//	Memory = O(S) beyond the model.
//
// Errors: strict sentinels from types.go; inner solver errors are
// forwarded as-is (none are reachable once validation passes).
package robustmdp

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/robustopt/worstcase"
)

// RobustValueIteration solves the robust MDP and returns the value
// function, greedy policy, and convergence diagnostics.
//
// Determinism: states and actions are swept in index order and policy ties
// break toward the lowest action index; repeated runs on the same model and
// options produce identical results.
//
// Complexity: O(iter · S · A · S log S) time, O(S) extra space.
func RobustValueIteration(m *MDP, opts ...Option) (Result, error) {
	cfg := resolveOptions(opts)
	numStates, err := validateModel(m)
	if err != nil {
		return Result{}, err
	}
	if err = validateAmbiguity(m, numStates, cfg); err != nil {
		return Result{}, err
	}

	var (
		v       = make([]float64, numStates) // current value function
		vNext   = make([]float64, numStates) // next value function
		u       = make([]float64, numStates) // continuation payoffs scratch
		scratch = make([]float64, numStates) // nominal-row copy for the weighted solver
		policy  = make([]int, numStates)
	)

	var (
		iter, s, a, next int
		xi, q, best      float64
		residual         = math.Inf(1)
		bestAction       int
		converged        bool
	)
	for iter = 0; iter < cfg.MaxIterations; iter++ {
		for s = 0; s < numStates; s++ {
			best = math.Inf(-1)
			bestAction = 0
			for a = 0; a < len(m.Transitions[s]); a++ {
				// Continuation payoff of landing in each next state.
				for next = 0; next < numStates; next++ {
					u[next] = m.Rewards[s][a][next] + m.Discount*v[next]
				}

				xi = cfg.Budget
				if cfg.Budgets != nil {
					xi = cfg.Budgets[s][a]
				}

				// Nature's response inside the ambiguity ball. The weighted
				// solver mutates its nominal argument, so it works on a copy.
				if cfg.Weights == nil {
					_, q, err = worstcase.WorstCaseL1(u, m.Transitions[s][a], xi)
				} else {
					copy(scratch, m.Transitions[s][a])
					_, q, err = worstcase.WorstCaseL1Weighted(u, scratch, cfg.Weights, xi)
				}
				if err != nil {
					return Result{}, err
				}

				if q > best {
					best = q
					bestAction = a
				}
			}
			vNext[s] = best
			policy[s] = bestAction
		}

		// Sup-norm residual of this sweep.
		residual = 0
		for s = 0; s < numStates; s++ {
			if d := math.Abs(vNext[s] - v[s]); d > residual {
				residual = d
			}
		}
		v, vNext = vNext, v

		if residual <= cfg.Eps {
			converged = true
			iter++
			break
		}
	}

	return Result{
		Values:     v,
		Policy:     policy,
		Residual:   residual,
		Iterations: iter,
		Converged:  converged,
	}, nil
}

// NominalValue applies one greedy Bellman backup of values under the
// nominal (unperturbed) transition model, a convenience for comparing
// nominal and robust answers.
//
// Contract: values must have one entry per state; the model must be valid.
//
// Complexity: O(S²·A).
func NominalValue(m *MDP, values []float64) ([]float64, error) {
	numStates, err := validateModel(m)
	if err != nil {
		return nil, err
	}
	if len(values) != numStates {
		return nil, ErrDimensionMismatch
	}

	out := make([]float64, numStates)
	u := make([]float64, numStates)
	var (
		s, a, next int
		q, best    float64
	)
	for s = 0; s < numStates; s++ {
		best = math.Inf(-1)
		for a = 0; a < len(m.Transitions[s]); a++ {
			for next = 0; next < numStates; next++ {
				u[next] = m.Rewards[s][a][next] + m.Discount*values[next]
			}
			q = floats.Dot(m.Transitions[s][a], u)
			if q > best {
				best = q
			}
		}
		out[s] = best
	}
	return out, nil
}
