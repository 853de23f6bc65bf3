// Package robustmdp solves finite Markov decision processes whose
// transition probabilities are only known up to a (weighted) L1 ambiguity
// ball around a nominal model.
//
// 🚀 What is a robust MDP?
//
//	A classic MDP trusts its transition matrix. A robust MDP assumes an
//	adversary ("nature") may perturb every state-action transition row
//	within a budgeted distance of the nominal row, and asks for the policy
//	maximizing the worst-case discounted return. With SA-rectangular L1
//	ambiguity the inner adversarial step has a closed greedy solution —
//	provided by the worstcase package — which keeps every Bellman backup
//	at O(S log S).
//
// ✨ Key features:
//   - robust value iteration with uniform or per-state-action budgets
//   - unweighted or weighted L1 ambiguity metrics
//   - zero budget reduces exactly to classic value iteration
//   - deterministic sweeps, sentinel-error contract, no I/O
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/robustopt/robustmdp"
//
//	m := &robustmdp.MDP{
//	    Transitions: transitions, // [state][action][next state]
//	    Rewards:     rewards,     // same shape
//	    Discount:    0.9,
//	}
//	res, err := robustmdp.RobustValueIteration(m,
//	    robustmdp.WithBudget(0.2),
//	)
//	if err != nil {
//	    // handle sentinel (ErrBadTransition, ErrBadBudget, …)
//	}
//	fmt.Println(res.Values, res.Policy, res.Converged)
//
// Performance:
//
//   - Time:   O(iterations · S · A · S log S)
//   - Memory: O(S) beyond the model tensors.
//
// See example_test.go for a worked two-state machine-replacement model.
package robustmdp
