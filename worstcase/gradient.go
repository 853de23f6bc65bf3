// Package worstcase - candidate-pair gradient enumeration for the weighted
// solver.
//
// For the weighted L1 ball the optimal transfer direction is no longer
// "most expensive → cheapest": moving mass through a high-weight outcome
// consumes budget faster, so the steepest improving direction depends on the
// ratio of payoff drop to weighted budget cost. This file precomputes, for
// every viable donor→receiver pair, that marginal rate (the "gradient"),
// and orders all pairs by ascending gradient (most negative first).
//
// Receiver pruning:
//
//	An outcome can usefully absorb mass only if no other outcome is both
//	cheaper (payoff) and lighter-or-equal (weight). Scanning outcomes in
//	ascending payoff order, the possible receivers are exactly those whose
//	weight sets a new strict running minimum — the lower-left Pareto
//	frontier of (payoff, weight). This prunes the O(n²) pair set to O(n·r)
//	where r is the frontier size, typically small.
//
// Edge construction, two disjoint kinds:
//   - baseline (donorGreater=false): donor i gives mass straight off its
//     nominal holding to frontier receiver j with z[i] > z[j];
//     gradient = (z[j] − z[i]) / (w[i] + w[j]). Cost accrues on both ends.
//   - give-back (donorGreater=true): frontier outcome i, holding mass above
//     its nominal value from an earlier transfer, passes some on to a still
//     cheaper frontier receiver j (z[i] > z[j], w[i] < w[j] strictly);
//     gradient = (z[j] − z[i]) / (w[j] − w[i]). The donor already paid its
//     own weight when it first received, so only the differential is charged.
//
// Complexity:
//
//	Time   = O(n log n + n·r log(n·r))  (payoff sort + edge sort)
//	Memory = O(n·r)
package worstcase

import "sort"

// candidate is one edge of the bipartite "who gives mass to whom" graph:
// a viable donor→receiver pair with its precomputed gradient.
type candidate struct {
	donor        int     // outcome losing mass
	receiver     int     // outcome gaining mass
	grad         float64 // objective change per unit of weighted budget; ≤ 0
	donorGreater bool    // true for give-back edges (differential cost)
}

// Gradients is the immutable candidate-pair table of the weighted solver.
//
// It is a pure lookup structure: a record array sorted ascending by gradient
// plus private copies of (z, w). Once built it is read-only and may be
// shared across Solve calls — but only for the same (z, w); a different
// payoff or weight vector requires a rebuild.
type Gradients struct {
	z     []float64   // payoff vector (private copy)
	w     []float64   // weight vector (private copy)
	edges []candidate // all viable pairs, sorted ascending by grad
	cfg   Options     // tolerances fixed at construction
}

// NewGradients builds the candidate-pair table for payoffs z and strictly
// positive weights w. Exported so callers re-solving with the same (z, w)
// and varying (nominal, ξ) can amortize the construction cost.
//
// Errors:
//   - ErrDimensionMismatch — empty/unequal vectors or non-finite payoffs.
//   - ErrNonPositiveWeight — a weight is not strictly positive and finite.
//
// Complexity: O(n log n + n·r log(n·r)) time, O(n·r) space.
func NewGradients(z, w []float64, opts ...Option) (*Gradients, error) {
	cfg := resolveOptions(opts)
	if err := validateShape(z, w); err != nil { // lengths must agree, payoffs must be finite
		return nil, err
	}
	if err := validateWeights(w); err != nil {
		return nil, err
	}

	n := len(z)
	g := &Gradients{
		z:   make([]float64, n),
		w:   make([]float64, n),
		cfg: cfg,
	}
	copy(g.z, z)
	copy(g.w, w)

	// Ascending payoff order; ties broken by index for determinism.
	order := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		if g.z[order[a]] != g.z[order[b]] {
			return g.z[order[a]] < g.z[order[b]]
		}
		return order[a] < order[b]
	})

	// Receiver frontier: in ascending payoff order, keep outcomes whose
	// weight is a strict new running minimum. Along the frontier payoffs
	// increase and weights strictly decrease.
	frontier := make([]int, 0, n)
	var (
		idx  int     // outcome under consideration
		minw float64 // running weight minimum
	)
	for i = 0; i < n; i++ {
		idx = order[i]
		if i == 0 || g.w[idx] < minw {
			frontier = append(frontier, idx)
			minw = g.w[idx]
		}
	}

	// Baseline edges: every donor × every strictly cheaper frontier receiver.
	var (
		donor, recv int
		grad        float64
		j           int
	)
	for donor = 0; donor < n; donor++ {
		for j = 0; j < len(frontier); j++ {
			recv = frontier[j]
			if !(g.z[donor] > g.z[recv]) {
				continue
			}
			grad = (g.z[recv] - g.z[donor]) / (g.w[donor] + g.w[recv])
			g.edges = append(g.edges, candidate{
				donor:    donor,
				receiver: recv,
				grad:     clampGrad(grad, cfg.GradTol),
			})
		}
	}

	// Give-back edges: ordered frontier pairs. frontier[j] is cheaper and
	// strictly heavier than frontier[i] for j < i, which is exactly the
	// z[i] > z[j], w[i] < w[j] requirement.
	for i = 1; i < len(frontier); i++ {
		donor = frontier[i]
		for j = 0; j < i; j++ {
			recv = frontier[j]
			if !(g.z[donor] > g.z[recv]) {
				continue // equal payoffs can share the frontier head; no edge
			}
			grad = (g.z[recv] - g.z[donor]) / (g.w[recv] - g.w[donor])
			g.edges = append(g.edges, candidate{
				donor:        donor,
				receiver:     recv,
				grad:         clampGrad(grad, cfg.GradTol),
				donorGreater: true,
			})
		}
	}

	// Single ascending sort; stable so equal gradients keep construction
	// order and results stay deterministic across runs.
	sort.SliceStable(g.edges, func(a, b int) bool { return g.edges[a].grad < g.edges[b].grad })

	return g, nil
}

// Len returns the number of viable candidate pairs.
func (g *Gradients) Len() int { return len(g.edges) }

// clampGrad zeroes gradients that are not strictly improving within tol.
// Zeroed edges sort to the end of the table and are never selected.
func clampGrad(grad, tol float64) float64 {
	if grad >= -tol {
		return 0
	}
	return grad
}
