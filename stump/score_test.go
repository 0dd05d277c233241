package stump

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fill loads the accumulator with labels at unit weight into bucket b.
func fill(t *testing.T, labels []float64, b Bucket) *Accumulator {
	t.Helper()
	w, err := NewAccumulator(1)
	require.NoError(t, err)
	ones := make([]float64, len(labels))
	for i := range ones {
		ones[i] = 1.0
	}
	weights := NewSliceWeights(ones)
	for _, l := range labels {
		w.Add(RegressionLabel(l), b, weights, 1)
	}
	return w
}

func TestVarianceScorer_EndToEnd(t *testing.T) {
	// Five unit-weight examples, all in TRUE: wt=5, dist=1, sqr=5.
	w := fill(t, []float64{1, -1, 1, 1, -1}, BucketTrue)

	assert.InDelta(t, 5.0, w.Weight(BucketTrue), tol)
	assert.InDelta(t, 1.0, w.Dist(BucketTrue), tol)
	assert.InDelta(t, 5.0, w.Sqr(BucketTrue), tol)

	var z VarianceScorer
	// score = sqr - dist^2/wt = 5 - 0.2 = 4.8; other buckets empty.
	assert.InDelta(t, 4.8, z.Score(w), tol)
}

func TestVarianceScorer_Missing(t *testing.T) {
	var z VarianceScorer

	empty, err := NewAccumulator(1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, z.Missing(empty, false),
		"empty MISSING bucket contributes nothing")

	w := fill(t, []float64{2, 4}, BucketMissing)
	// sqr=20, dist=6, wt=2 -> 20 - 36/2 = 2.
	assert.InDelta(t, 2.0, z.Missing(w, false), tol)
	assert.InDelta(t, z.Missing(w, false), z.Missing(w, true), tol,
		"optional flag does not change the regression formula")
}

func TestVarianceScorer_NonMissingStartsFromMissing(t *testing.T) {
	var z VarianceScorer
	w := fill(t, []float64{1, 3}, BucketFalse)

	// FALSE variance: sqr=10, dist=4, wt=2 -> 10 - 8 = 2.
	assert.InDelta(t, 2.0, z.NonMissing(w, 0), tol)
	assert.InDelta(t, 7.5, z.NonMissing(w, 5.5), tol)
	assert.Equal(t, z.NonMissing(w, 1.25), z.NonMissingPresence(w, 1.25),
		"presence variant is an alias")
}

func TestVarianceScorer_PerfectSplit(t *testing.T) {
	var z VarianceScorer
	// Constant labels per bucket leave zero residual variance.
	w := fill(t, []float64{2, 2, 2}, BucketTrue)
	ones := NewSliceWeights([]float64{1, 1})
	w.Add(RegressionLabel(-3), BucketFalse, ones, 1)
	w.Add(RegressionLabel(-3), BucketFalse, ones, 1)

	assert.InDelta(t, PerfectScore, z.Score(w), 1e-9)
}

func TestVarianceScorer_BetterAndEqual(t *testing.T) {
	var z VarianceScorer

	assert.True(t, z.Better(1.0, WorstScore))
	assert.True(t, z.Better(PerfectScore, 0.1))
	assert.False(t, z.Better(2.0, 1.0))
	assert.False(t, z.Better(1.0, 1.0), "Better is strict")
	assert.False(t, z.Better(NoScore, WorstScore),
		"NoScore never wins even though it is numerically small")

	assert.True(t, z.Equal(0.3, 0.3))
	assert.False(t, z.Equal(0.3, 0.3+1e-16), "Equal applies no tolerance")
}

func TestVarianceScorer_CanBeat(t *testing.T) {
	var z VarianceScorer
	w, err := NewAccumulator(1)
	require.NoError(t, err)

	zBest := 10.0
	assert.True(t, z.CanBeat(w, 5.0, zBest))
	assert.True(t, z.CanBeat(w, 10.0, zBest))
	// Within the 0.01% slack the candidate is still swept.
	assert.True(t, z.CanBeat(w, 10.0005, zBest))
	// Beyond it the missing part alone already loses.
	assert.False(t, z.CanBeat(w, 10.002, zBest))
}

func TestVarianceScorer_ScoreIsNeverNegativeAfterClip(t *testing.T) {
	var z VarianceScorer
	w := fill(t, []float64{1, 2, 3, 4}, BucketTrue)
	w.Clip(BucketTrue)
	assert.GreaterOrEqual(t, z.Score(w), PerfectScore-1e-9)
	assert.False(t, math.IsNaN(z.Score(w)))
}
