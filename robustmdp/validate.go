// Package robustmdp - model and option validation.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(S²·A) worst-case over S states and A actions; no hidden allocations.
package robustmdp

import "math"

// rowSumTol bounds |Σrow − 1| for nominal transition rows. It matches the
// normalization tolerance the inner weighted solver enforces, so a row that
// passes here never fails downstream.
const rowSumTol = 1e-6

// validateModel verifies the model tensors and discount. Returns the state
// count on success.
//
// Contract:
//   - m non-nil, ≥1 state, every state ≥1 action.
//   - Transitions and Rewards agree on every dimension; rows have length S.
//   - Every transition row is a probability distribution within tolerance.
//   - Rewards are finite; Discount ∈ [0,1).
//
// Complexity: O(S²·A).
func validateModel(m *MDP) (int, error) {
	if m == nil {
		return 0, ErrNilModel
	}
	numStates := len(m.Transitions)
	if numStates == 0 || len(m.Rewards) != numStates {
		return 0, ErrDimensionMismatch
	}
	if m.Discount < 0 || m.Discount >= 1 || math.IsNaN(m.Discount) {
		return 0, ErrBadDiscount
	}

	var (
		s, a, next int       // tensor indices
		row        []float64 // transition row under validation
		sum        float64   // row mass accumulator
		x          float64   // current entry
	)
	for s = 0; s < numStates; s++ {
		if len(m.Transitions[s]) == 0 {
			return 0, ErrNoActions
		}
		if len(m.Rewards[s]) != len(m.Transitions[s]) {
			return 0, ErrDimensionMismatch
		}
		for a = 0; a < len(m.Transitions[s]); a++ {
			row = m.Transitions[s][a]
			if len(row) != numStates || len(m.Rewards[s][a]) != numStates {
				return 0, ErrDimensionMismatch
			}
			sum = 0
			for next = 0; next < numStates; next++ {
				x = row[next]
				if !(x >= 0 && x <= 1) { // negated form also catches NaN
					return 0, ErrBadTransition
				}
				sum += x
				if r := m.Rewards[s][a][next]; math.IsNaN(r) || math.IsInf(r, 0) {
					return 0, ErrDimensionMismatch
				}
			}
			if math.Abs(sum-1) > rowSumTol {
				return 0, ErrBadTransition
			}
		}
	}

	return numStates, nil
}

// validateAmbiguity verifies budgets and weights against a validated model.
//
// Complexity: O(S·A).
func validateAmbiguity(m *MDP, numStates int, cfg Options) error {
	if cfg.Budget < 0 || math.IsNaN(cfg.Budget) {
		return ErrBadBudget
	}
	if cfg.Budgets != nil {
		if len(cfg.Budgets) != numStates {
			return ErrBadBudget
		}
		var s, a int
		for s = 0; s < numStates; s++ {
			if len(cfg.Budgets[s]) != len(m.Transitions[s]) {
				return ErrBadBudget
			}
			for a = 0; a < len(cfg.Budgets[s]); a++ {
				if cfg.Budgets[s][a] < 0 || math.IsNaN(cfg.Budgets[s][a]) {
					return ErrBadBudget
				}
			}
		}
	}
	if cfg.Weights != nil {
		if len(cfg.Weights) != numStates {
			return ErrBadWeights
		}
		var i int
		for i = 0; i < numStates; i++ {
			if !(cfg.Weights[i] > 0) || math.IsInf(cfg.Weights[i], 0) {
				return ErrBadWeights
			}
		}
	}
	return nil
}
