// Package worstcase - validation utilities shared by both solvers.
//
// This file contains small, tight helpers that:
//  1. Validate vector shapes (equal lengths, non-empty, finite entries).
//  2. Validate the deviation budget (non-negative, not NaN).
//  3. Validate the nominal distribution (elementwise [0,1] within tolerance).
//  4. Validate weights and normalization (weighted variant only).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) worst-case; no hidden allocations.
package worstcase

import "math"

// validateUnweighted verifies (z, p̄, ξ) for the unweighted solver.
// It deliberately does NOT check that p̄ sums to 1: the unweighted solver
// leaves normalization to the caller, and only the weighted entry point
// enforces it.
//
// Complexity: O(n) time, O(1) space.
func validateUnweighted(z, nominal []float64, xi float64, cfg Options) error {
	if err := validateShape(z, nominal); err != nil {
		return err
	}
	if err := validateBudget(xi); err != nil {
		return err
	}
	return validateDistribution(nominal, cfg.DistTol)
}

// validateWeighted verifies (z, p̄, w, ξ) for the weighted solver.
// In addition to the unweighted checks it enforces strictly positive finite
// weights and |Σp̄ − 1| ≤ SumTol.
//
// Complexity: O(n) time, O(1) space.
func validateWeighted(z, nominal, w []float64, xi float64, cfg Options) error {
	if err := validateShape(z, nominal); err != nil {
		return err
	}
	if len(w) != len(z) {
		return ErrDimensionMismatch
	}
	if err := validateBudget(xi); err != nil {
		return err
	}
	if err := validateDistribution(nominal, cfg.DistTol); err != nil {
		return err
	}
	if err := validateWeights(w); err != nil {
		return err
	}
	return validateNormalized(nominal, cfg.SumTol)
}

// validateShape enforces non-empty, equal-length payoff and nominal vectors
// with finite payoff entries.
//
// NaN/±Inf payoffs make the objective ill-posed, so they are rejected with
// the same sentinel as a shape violation.
//
// Complexity: O(n).
func validateShape(z, nominal []float64) error {
	if len(z) == 0 || len(z) != len(nominal) {
		return ErrDimensionMismatch
	}
	var (
		i int     // loop index
		x float64 // current payoff entry
	)
	for i = 0; i < len(z); i++ { // scan payoffs for non-finite entries
		x = z[i]
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ErrDimensionMismatch
		}
	}
	return nil
}

// validateBudget enforces ξ ≥ 0 and not NaN.
//
// Complexity: O(1).
func validateBudget(xi float64) error {
	if xi < 0 || math.IsNaN(xi) {
		return ErrInvalidBudget
	}
	return nil
}

// validateDistribution enforces every nominal component within
// [−tol, 1+tol]. NaN components fail the range check by comparison
// semantics and are rejected through the same sentinel.
//
// Complexity: O(n).
func validateDistribution(nominal []float64, tol float64) error {
	var (
		i int     // loop index
		x float64 // current component
	)
	for i = 0; i < len(nominal); i++ { // elementwise range check
		x = nominal[i]
		if !(x >= -tol && x <= 1+tol) { // negated form also catches NaN
			return ErrInvalidDistribution
		}
	}
	return nil
}

// validateWeights enforces strictly positive, finite weights.
//
// Complexity: O(n).
func validateWeights(w []float64) error {
	var (
		i int     // loop index
		x float64 // current weight
	)
	for i = 0; i < len(w); i++ { // strict positivity scan
		x = w[i]
		if !(x > 0) || math.IsInf(x, 0) { // negated form also catches NaN
			return ErrNonPositiveWeight
		}
	}
	return nil
}

// validateNormalized enforces |Σp̄ − 1| ≤ tol.
//
// Complexity: O(n).
func validateNormalized(nominal []float64, tol float64) error {
	var sum float64
	var i int
	for i = 0; i < len(nominal); i++ { // plain left-to-right summation
		sum += nominal[i]
	}
	if math.Abs(sum-1) > tol {
		return ErrUnnormalizedDistribution
	}
	return nil
}
