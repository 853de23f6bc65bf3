// Package worstcase - weighted greedy transfer engine.
//
// Solve consumes a prebuilt Gradients table rank by rank, executing the
// largest feasible mass transfer along every edge in the current near-tie
// window until the weighted deviation budget is exhausted or no improving
// transfer remains.
//
// Near-tie window:
//
//	Floating-point gradients that are mathematically equal rarely compare
//	equal, and honoring them in arbitrary bit-level order produces ordering
//	artifacts. The engine therefore keeps an explicit ordered buffer of the
//	edges whose gradients lie within GradEpsilon of the newest (steepest
//	remaining) edge, evicting the oldest entry first as the rank pointer
//	advances. Every edge in the window is offered a transfer each rank.
//
// Donor-state guard:
//
//	A give-back edge (donorGreater=true) is honored only while the donor
//	currently holds more than its original nominal mass; a baseline edge
//	only while it does not. The working vector is mutated in place, so the
//	original nominal values are retained in a private copy for this
//	comparison.
//
// Complexity:
//
//	Time   = O(E·s) where E = table size and s = window occupancy
//	         (s is bounded by the tie multiplicity, typically O(1))
//	Memory = O(n + E) (original-nominal copy + window index buffer)
package worstcase

import "gonum.org/v1/gonum/floats"

// Solve runs the greedy transfer engine against the prebuilt table, seeding
// the working distribution from nominal and consuming at most xi units of
// weighted budget.
//
// Ownership contract: nominal is mutated in place and returned as the
// worst-case distribution. Callers that need the original must copy it
// beforehand.
//
// Errors:
//   - ErrDimensionMismatch        — nominal length differs from the table's n.
//   - ErrInvalidBudget            — ξ < 0 or NaN.
//   - ErrInvalidDistribution      — a nominal component outside [0,1].
//   - ErrUnnormalizedDistribution — |Σnominal − 1| beyond tolerance.
//   - ErrInvariantViolation       — a window edge computed a weight change
//     ≤ 0; precluded by construction, reported if ever observed.
//
// Complexity: O(E·s) time, O(n + E) space; table construction not included.
func (g *Gradients) Solve(nominal []float64, xi float64) ([]float64, float64, error) {
	if err := validateWeighted(g.z, nominal, g.w, xi, g.cfg); err != nil {
		return nil, 0, err
	}

	// Retain the original nominal values: the donor-state guard compares
	// the working mass against them after transfers start mutating p.
	base := make([]float64, len(nominal))
	copy(base, nominal)

	p := nominal // working distribution, mutated in place
	xiRest := xi

	// Explicit bounded window of edge ranks, oldest first. Indices into
	// g.edges; head marks the logical front so eviction is O(1).
	window := make([]int, 0, 16)
	head := 0

	var (
		rank   int       // current position in the gradient-sorted table
		wi     int       // window scan position
		e      candidate // edge under consideration
		rate   float64   // weighted budget cost per unit of mass moved
		avail  float64   // mass the donor can still give at this rate
		amount float64   // mass actually moved along the edge
	)
	for rank = 0; rank < len(g.edges) && xiRest >= g.cfg.MassTol; rank++ {
		// Clamped edges sort last; once reached, no improving edge remains.
		if g.edges[rank].grad >= 0 {
			break
		}

		// Admit the newest edge, then evict entries no longer tied with it.
		window = append(window, rank)
		for len(window)-head > 1 &&
			g.edges[rank].grad-g.edges[window[head]].grad > g.cfg.GradEpsilon {
			head++
		}

		for wi = head; wi < len(window); wi++ {
			e = g.edges[window[wi]]

			// Direction must match the donor's current relationship to its
			// original nominal mass (see file header).
			if e.donorGreater {
				if p[e.donor] <= base[e.donor]+g.cfg.MassTol {
					continue
				}
			} else if p[e.donor] > base[e.donor]+g.cfg.MassTol {
				continue
			}

			if p[e.donor] <= g.cfg.MassTol {
				continue // donor exhausted
			}

			if e.donorGreater {
				// Differential rate: the donor already paid its own weight
				// when it first received this mass.
				rate = g.w[e.receiver] - g.w[e.donor]
				// Only the surplus above nominal moves at the differential
				// rate; mass below nominal would cost the full sum.
				avail = p[e.donor] - base[e.donor]
			} else {
				rate = g.w[e.donor] + g.w[e.receiver]
				avail = p[e.donor]
			}
			if rate <= 0 {
				// Construction guarantees w[receiver] > w[donor] on
				// give-back edges and positive weights throughout.
				return nil, 0, ErrInvariantViolation
			}

			amount = xiRest / rate
			if avail < amount {
				amount = avail
			}
			p[e.donor] -= amount
			p[e.receiver] += amount
			xiRest -= amount * rate

			if xiRest < g.cfg.MassTol {
				break // budget exhausted mid-window
			}
		}
	}

	return p, floats.Dot(p, g.z), nil
}

// WorstCaseL1Weighted computes the worst-case (minimizing) distribution
// within the weighted L1 ball of radius xi around nominal, and its objective
// p·z. Each outcome's contribution to the budget is scaled by its strictly
// positive weight w[i].
//
// Ownership contract: nominal is mutated in place and returned as the
// output distribution. With unit weights the result coincides with
// WorstCaseL1 at the same budget — moving one unit of mass then charges
// w[i]+w[j] = 2, exactly the plain L1 accounting.
//
// One-shot convenience over NewGradients + Solve; callers solving many
// (nominal, ξ) instances against fixed (z, w) should hold a Gradients.
//
// Complexity: O(n log n + n·r log(n·r)) time, O(n·r) space.
func WorstCaseL1Weighted(z, nominal, w []float64, xi float64, opts ...Option) ([]float64, float64, error) {
	// Full input validation first: construction must not start on inputs
	// whose distribution or budget is invalid.
	cfg := resolveOptions(opts)
	if err := validateWeighted(z, nominal, w, xi, cfg); err != nil {
		return nil, 0, err
	}
	g, err := NewGradients(z, w, opts...)
	if err != nil {
		return nil, 0, err
	}
	return g.Solve(nominal, xi)
}
