// Package robustopt is an in-memory toolkit for distributionally-robust
// decision making over finite outcome spaces — from the worst-case
// inner-loop primitives up to robust Markov-decision-process solving.
//
// 🚀 What is robustopt?
//
//	A deterministic, allocation-conscious library that brings together:
//		• Worst-case expectation over L1 ambiguity balls (worstcase)
//		• Worst-case expectation over weighted L1 balls, with a reusable
//		  candidate-pair gradient table (worstcase)
//		• SA-rectangular robust value iteration built on those primitives
//		  (robustmdp)
//
// ✨ Why choose robustopt?
//
//   - Inner-loop discipline – the solvers are O(n log n), RNG-free, and
//     built to be called millions of times inside an outer loop
//   - Strict contracts – sentinel errors, documented ownership of every
//     buffer, validation that reports instead of silently repairing
//   - Pure Go numerics – gonum for the vector kernels, nothing hidden
//
// Under the hood, everything is organized under two subpackages:
//
//	worstcase/ — validation, the unweighted L1 solver, the gradient
//	             enumerator, and the weighted greedy transfer engine
//	robustmdp/ — model types and robust value iteration
//
// Quick start:
//
//	z := []float64{0.5, 0.2, 0.9, 0.1}        // payoffs per outcome
//	pbar := []float64{0.25, 0.25, 0.25, 0.25} // nominal distribution
//
//	p, obj, err := worstcase.WorstCaseL1(z, pbar, 0.5)
//	// p is the adversarial distribution, obj = p·z its expected payoff.
//
// See each subpackage's doc.go and example_test.go for details.
package robustopt
