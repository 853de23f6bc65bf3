package robustmdp_test

import (
	"fmt"

	"github.com/katalvlaran/robustopt/robustmdp"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleRobustValueIteration
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A two-state chain: state 0 can stay put (no reward) or jump to the
//	absorbing state 1, collecting 1 on arrival. Nominally the jump is a
//	sure thing and the optimal value of state 0 is exactly 1.
//
//	Under an L1 ambiguity budget of 0.4, nature may divert 0.2 of the
//	jump's probability mass toward whichever landing state is worst,
//	dragging the robust value of state 0 down to 0.8/0.82 ≈ 0.976.
//
// The greedy policy still jumps: pessimism lowers the value but does not
// flip the decision here.
func ExampleRobustValueIteration() {
	m := &robustmdp.MDP{
		Transitions: [][][]float64{
			{ // state 0
				{1, 0}, // stay
				{0, 1}, // jump
			},
			{ // state 1 (absorbing)
				{0, 1},
			},
		},
		Rewards: [][][]float64{
			{
				{0, 0},
				{0, 1},
			},
			{
				{0, 0},
			},
		},
		Discount: 0.9,
	}

	res, err := robustmdp.RobustValueIteration(m, robustmdp.WithBudget(0.4))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("values=[%.3f %.3f]\n", res.Values[0], res.Values[1])
	fmt.Printf("policy=%v converged=%v\n", res.Policy, res.Converged)
	// Output:
	// values=[0.976 0.000]
	// policy=[1 0] converged=true
}
