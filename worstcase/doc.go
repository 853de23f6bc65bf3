// Package worstcase solves the constrained worst-case-expectation problem
// at the heart of distributionally-robust optimization: find the probability
// distribution, within a bounded deviation of a nominal one, that minimizes
// an expected payoff.
//
// 🚀 What does it solve?
//
//	Given payoffs z and a nominal distribution p̄ over n outcomes,
//	  minimize   p·z
//	  subject to p on the probability simplex,
//	             dist(p, p̄) ≤ ξ,
//	where dist is the plain L1 distance (WorstCaseL1) or a per-outcome
//	weighted L1 distance (WorstCaseL1Weighted). This is the inner loop of
//	robust Markov-decision-process solvers and robust-optimization outer
//	loops, so it is built for: correctness, numerical stability, and a hard
//	O(n log n) bound.
//
// ✨ Key features:
//   - unweighted solver: sort + single two-pointer mass transfer
//   - weighted solver: Pareto-pruned donor→receiver gradient table consumed
//     by a near-tie-tolerant greedy transfer engine
//   - reusable Gradients table for repeated solves against fixed (z, w)
//   - strict sentinel-error contract; inputs are never silently repaired
//   - deterministic: no RNG, no maps in hot paths, stable sorts
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/robustopt/worstcase"
//
//	// Unweighted: pure, inputs untouched.
//	p, obj, err := worstcase.WorstCaseL1(z, nominal, 0.5)
//
//	// Weighted: nominal is mutated in place and returned as p.
//	p, obj, err = worstcase.WorstCaseL1Weighted(z, nominal, w, 0.5)
//
//	// Amortized: one table, many solves against the same (z, w).
//	g, err := worstcase.NewGradients(z, w)
//	p, obj, err = g.Solve(nominal, 0.5)
//
// Ownership: the weighted solver overwrites its nominal argument — copy
// beforehand if the original is still needed. The unweighted solver never
// mutates its inputs.
//
// Performance:
//
//   - WorstCaseL1:         O(n log n) time, O(n) space.
//   - NewGradients:        O(n log n + n·r log(n·r)) time, O(n·r) space,
//     where r is the receiver-frontier size (typically small).
//   - (*Gradients).Solve:  O(E·s) time over E table edges with window
//     occupancy s (bounded by tie multiplicity).
//
// See example_test.go for runnable examples.
package worstcase
