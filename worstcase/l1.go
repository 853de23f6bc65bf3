// Package worstcase - unweighted L1 worst-case solver.
//
// WorstCaseL1 finds, inside the plain L1 ball of radius ξ around a nominal
// distribution p̄, the distribution p minimizing the expected payoff p·z.
//
// Algorithm Outline:
//  1. Clamp ξ to [0, 2] — 2 is the L1 diameter of the probability simplex,
//     so any larger budget is unreachable.
//  2. Sort outcome indices by payoff ascending; let k* be the cheapest.
//  3. Add ε = min(ξ/2, 1 − p̄[k*]) at k*. The factor 1/2 reflects that a
//     transfer contributes to the L1 distance at both endpoints.
//  4. Walk outcomes from the most expensive downward, stripping mass
//     (up to each outcome's current holding) into the ε budget until ε is
//     exhausted or only k* remains.
//
// For a linear objective over an L1 ball intersected with the simplex the
// extreme-to-extreme greedy move is optimal: any feasible redistribution of
// the same total mass is dominated by "take from the currently most
// expensive, give to the currently cheapest".
//
// Complexity:
//
//	Time   = O(n log n)  (dominated by the sort; the transfer pass is O(n))
//	Memory = O(n)        (index permutation + output copy)
//
// Errors:
//   - ErrDimensionMismatch   — empty/unequal vectors or non-finite payoffs.
//   - ErrInvalidBudget       — ξ < 0 or NaN.
//   - ErrInvalidDistribution — a nominal component outside [0,1].
package worstcase

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// maxL1Diameter is the largest possible L1 distance between two probability
// vectors; budgets above it are clamped, not rejected.
const maxL1Diameter = 2.0

// WorstCaseL1 computes the worst-case (minimizing) distribution within the
// unweighted L1 ball of radius xi around nominal, and its objective p·z.
//
// Contracts:
//   - z and nominal are equal-length, non-empty; payoffs finite.
//   - nominal components lie in [0,1]; the component *sum* is NOT checked —
//     normalization is the caller's responsibility by design, and a
//     non-normalized input yields a correspondingly non-normalized output.
//   - Inputs are never mutated; the returned p is freshly allocated.
//
// Complexity: O(n log n) time, O(n) space.
func WorstCaseL1(z, nominal []float64, xi float64, opts ...Option) ([]float64, float64, error) {
	cfg := resolveOptions(opts)
	if err := validateUnweighted(z, nominal, xi, cfg); err != nil {
		return nil, 0, err
	}

	// Budget beyond the simplex diameter buys nothing; clamp, don't reject.
	if xi > maxL1Diameter {
		xi = maxL1Diameter
	}

	n := len(z)

	// Full ascending sort of the index permutation. Only the extreme ends of
	// the order are ever touched, so an O(n) selection would suffice; the
	// full sort is a simplicity/robustness choice and keeps the stated
	// O(n log n) bound.
	order := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return z[order[a]] < z[order[b]] })

	// Work on a copy: the input stays untouched.
	p := make([]float64, n)
	copy(p, nominal)

	// Pour ε into the cheapest outcome, capped by the headroom up to 1.
	cheapest := order[0]
	eps := math.Min(xi/2, 1-p[cheapest])
	p[cheapest] += eps

	// Strip the same amount off the most expensive outcomes, never touching
	// the receiver at order[0].
	var (
		k    int     // outcome index currently being drained
		diff float64 // amount drained from k this step
	)
	for i = n - 1; i > 0 && eps > 0; i-- {
		k = order[i]
		diff = math.Min(eps, p[k])
		p[k] -= diff
		eps -= diff
	}

	return p, floats.Dot(p, z), nil
}
