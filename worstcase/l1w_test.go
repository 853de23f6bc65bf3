package worstcase_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/robustopt/worstcase"
)

// weightedL1Dist computes Σ wᵢ·|pᵢ − qᵢ|, the ball metric of the weighted solver.
func weightedL1Dist(p, q, w []float64) float64 {
	var sum float64
	for i := range p {
		sum += w[i] * math.Abs(p[i]-q[i])
	}
	return sum
}

// TestWorstCaseL1Weighted_InvalidInputs verifies the weighted solver's full
// sentinel taxonomy, including the normalization check the unweighted solver
// deliberately omits.
func TestWorstCaseL1Weighted_InvalidInputs(t *testing.T) {
	uniform := []float64{1, 1, 1, 1}

	// Weight vector of the wrong length.
	_, _, err := worstcase.WorstCaseL1Weighted(scenarioZ, append([]float64(nil), scenarioNominal...), []float64{1, 1}, 0.5)
	assert.ErrorIs(t, err, worstcase.ErrDimensionMismatch, "short weight vector must error")

	// Non-positive weight.
	_, _, err = worstcase.WorstCaseL1Weighted(scenarioZ, append([]float64(nil), scenarioNominal...), []float64{1, 1, 0, 1}, 0.5)
	assert.ErrorIs(t, err, worstcase.ErrNonPositiveWeight, "zero weight must error")

	// Negative budget.
	_, _, err = worstcase.WorstCaseL1Weighted(scenarioZ, append([]float64(nil), scenarioNominal...), uniform, -0.5)
	assert.ErrorIs(t, err, worstcase.ErrInvalidBudget, "negative budget must error")

	// Component outside [0,1].
	_, _, err = worstcase.WorstCaseL1Weighted(scenarioZ, []float64{1.25, -0.25, 0, 0}, uniform, 0.5)
	assert.ErrorIs(t, err, worstcase.ErrInvalidDistribution, "component outside [0,1] must error")

	// Unnormalized nominal: only the weighted solver enforces Σp̄ = 1.
	_, _, err = worstcase.WorstCaseL1Weighted(scenarioZ, []float64{0.4, 0.4, 0.4, 0.4}, uniform, 0.5)
	assert.ErrorIs(t, err, worstcase.ErrUnnormalizedDistribution, "non-normalized nominal must error")
}

// TestWorstCaseL1Weighted_UniformWeightsMatchUnweighted runs the second
// acceptance scenario: unit weights charge w[i]+w[j] = 2 per unit of mass,
// exactly the plain L1 accounting, so both solvers must agree.
func TestWorstCaseL1Weighted_UniformWeightsMatchUnweighted(t *testing.T) {
	uniform := []float64{1, 1, 1, 1}
	for _, xi := range []float64{0, 0.1, 0.5, 1.2, 2} {
		pU, objU, err := worstcase.WorstCaseL1(scenarioZ, scenarioNominal, xi)
		require.NoError(t, err, "xi=%v", xi)

		nominal := append([]float64(nil), scenarioNominal...)
		pW, objW, err := worstcase.WorstCaseL1Weighted(scenarioZ, nominal, uniform, xi)
		require.NoError(t, err, "xi=%v", xi)

		assert.InDelta(t, objU, objW, 1e-9, "xi=%v: objectives must coincide under unit weights", xi)
		for i := range pU {
			assert.InDelta(t, pU[i], pW[i], 1e-9, "xi=%v: component %d must coincide", xi, i)
		}
	}
}

// TestWorstCaseL1Weighted_NonUniformWeights runs the third acceptance
// scenario: weights [1,2,3,4] make mass movement through heavy outcomes
// expensive, so less mass leaves the z=0.9 outcome than under unit weights.
func TestWorstCaseL1Weighted_NonUniformWeights(t *testing.T) {
	w := []float64{1, 2, 3, 4}
	nominal := append([]float64(nil), scenarioNominal...)

	p, obj, err := worstcase.WorstCaseL1Weighted(scenarioZ, nominal, w, 0.5)
	require.NoError(t, err)

	assert.Greater(t, obj, 0.1, "weighted budget cannot reach min(z) at xi=0.5")
	assert.Less(t, obj, 0.425, "worst case must improve on the nominal objective")

	// Unit weights drain the z=0.9 outcome by 0.25; the heavier metric must
	// move strictly less off it for the same budget.
	movedOffExpensive := 0.25 - p[2]
	assert.Greater(t, movedOffExpensive, 0.0, "some mass still leaves the expensive outcome")
	assert.Less(t, movedOffExpensive, 0.25, "heavy weights must slow the drain of the expensive outcome")

	// The greedy engine consumes the whole budget on this instance.
	assert.InDelta(t, 0.5, weightedL1Dist(p, scenarioNominal, w), 1e-9, "budget fully consumed")
}

// TestWorstCaseL1Weighted_MutatesNominalInPlace pins the ownership contract:
// the returned distribution is the caller's nominal slice.
func TestWorstCaseL1Weighted_MutatesNominalInPlace(t *testing.T) {
	nominal := append([]float64(nil), scenarioNominal...)
	p, _, err := worstcase.WorstCaseL1Weighted(scenarioZ, nominal, []float64{1, 1, 1, 1}, 0.5)
	require.NoError(t, err)

	assert.Same(t, &nominal[0], &p[0], "output must alias the nominal argument")
	assert.NotEqual(t, scenarioNominal, nominal, "nominal must have been rewritten in place")
}

// TestWorstCaseL1Weighted_ZeroBudget checks the ξ=0 contract on the weighted
// path: the distribution and objective stay exactly nominal.
func TestWorstCaseL1Weighted_ZeroBudget(t *testing.T) {
	nominal := append([]float64(nil), scenarioNominal...)
	p, obj, err := worstcase.WorstCaseL1Weighted(scenarioZ, nominal, []float64{1, 2, 3, 4}, 0)
	require.NoError(t, err)

	assert.Equal(t, scenarioNominal, p, "zero budget must leave the distribution untouched")
	assert.Equal(t, floats.Dot(scenarioNominal, scenarioZ), obj, "zero budget objective must equal p̄·z exactly")
}

// TestWorstCaseL1Weighted_LargeBudgetReachesCheapest checks convergence: a
// budget large enough to pay every weighted transfer puts all mass on the
// minimal-payoff outcome.
func TestWorstCaseL1Weighted_LargeBudgetReachesCheapest(t *testing.T) {
	nominal := append([]float64(nil), scenarioNominal...)
	p, obj, err := worstcase.WorstCaseL1Weighted(scenarioZ, nominal, []float64{1, 2, 3, 4}, 10)
	require.NoError(t, err)

	assert.InDelta(t, 0.1, obj, 1e-9, "objective must converge to min(z)")
	assert.InDelta(t, 1.0, p[3], 1e-9, "all mass on the cheapest outcome")
}

// TestWorstCaseL1Weighted_Invariants verifies the simplex and budget
// invariants on pseudo-random weighted instances.
func TestWorstCaseL1Weighted_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(48)
		z, nominal := randomInstance(rng, n)
		w := make([]float64, n)
		for i := range w {
			w[i] = 0.1 + rng.Float64()*5
		}
		xi := rng.Float64() * 3
		original := append([]float64(nil), nominal...)

		p, obj, err := worstcase.WorstCaseL1Weighted(z, nominal, w, xi)
		require.NoError(t, err, "trial %d", trial)

		for i, v := range p {
			assert.GreaterOrEqual(t, v, -1e-9, "trial %d: component %d went negative", trial, i)
		}
		assert.InDelta(t, 1.0, floats.Sum(p), 1e-6, "trial %d: mass not conserved", trial)
		assert.LessOrEqual(t, weightedL1Dist(p, original, w), xi+1e-6, "trial %d: weighted budget exceeded", trial)
		assert.GreaterOrEqual(t, obj, floats.Min(z)-1e-9, "trial %d: objective below min(z)", trial)
		assert.LessOrEqual(t, obj, floats.Dot(original, z)+1e-9, "trial %d: objective above nominal", trial)
	}
}

// TestWorstCaseL1Weighted_ObjectiveMonotoneInBudget verifies that enlarging
// the weighted budget never raises the worst case.
func TestWorstCaseL1Weighted_ObjectiveMonotoneInBudget(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	z, nominal := randomInstance(rng, 24)
	w := make([]float64, len(z))
	for i := range w {
		w[i] = 0.5 + rng.Float64()*2
	}

	prev := math.Inf(1)
	for _, xi := range []float64{0, 0.05, 0.1, 0.25, 0.5, 1, 2, 4} {
		scratch := append([]float64(nil), nominal...)
		_, obj, err := worstcase.WorstCaseL1Weighted(z, scratch, w, xi)
		require.NoError(t, err, "xi=%v", xi)
		assert.LessOrEqual(t, obj, prev+1e-12, "objective must be non-increasing in xi (xi=%v)", xi)
		prev = obj
	}
}
