package stump

// Score sentinels. Scores are lower-is-better residual weighted variance;
// WorstScore seeds a best-so-far search and NoScore marks a score that
// could not be computed.
const (
	// WorstScore is an upper bound on any computable score.
	WorstScore = 1e100
	// NoScore flags that a score could not be calculated.
	NoScore = -1.0
	// PerfectScore is the theoretical minimum: zero residual variance.
	PerfectScore = 0.0
)

// minBucketWeight is the threshold below which a bucket is treated as
// empty when scoring and predicting.
const minBucketWeight = 1e-20

// canBeatSlack is the relative tolerance applied to the best-so-far bound
// in CanBeat, so borderline candidates are still swept.
const canBeatSlack = 1.0001

// VarianceScorer scores a candidate split from an accumulator snapshot.
// The score is the weighted variance of the label left unexplained by the
// three-way partition; lower is better. The scorer is stateless and safe
// to share.
type VarianceScorer struct{}

// varianceTerm is sqr - dist^2/wt, the weighted variance contribution of
// one bucket.
func varianceTerm(w *Accumulator, b Bucket) float64 {
	return w.sqr[b] - (w.dist[b]*w.dist[b])/w.wt[b]
}

// Missing returns the score contribution of the MISSING bucket, or 0 when
// that bucket holds no weight. This part is constant across all candidate
// thresholds of a feature, so callers compute it once per sweep. The
// optional flag is part of the shared strategy contract and is not
// consumed by the regression formula.
func (VarianceScorer) Missing(w *Accumulator, optional bool) float64 {
	if w.wt[BucketMissing] > minBucketWeight {
		return varianceTerm(w, BucketMissing)
	}
	return 0.0
}

// NonMissing adds the TRUE and FALSE bucket contributions on top of the
// precomputed missing part, skipping buckets without weight.
func (VarianceScorer) NonMissing(w *Accumulator, missing float64) float64 {
	result := missing
	for b := BucketFalse; b <= BucketTrue; b++ {
		if w.wt[b] > minBucketWeight {
			result += varianceTerm(w, b)
		}
	}
	return result
}

// NonMissingPresence scores a presence split. For the regression variant
// it is identical to NonMissing.
func (z VarianceScorer) NonMissingPresence(w *Accumulator, missing float64) float64 {
	return z.NonMissing(w, missing)
}

// Score returns the full candidate score for the accumulator's current
// partition.
func (z VarianceScorer) Score(w *Accumulator) float64 {
	return z.NonMissing(w, z.Missing(w, false))
}

// Better reports whether z1 is a strictly better (lower) score than z2.
// A NoScore value never wins.
func (VarianceScorer) Better(z1, z2 float64) bool {
	return z1 != NoScore && z1 < z2
}

// Equal reports exact score equality. No tolerance is applied: an
// exhaustive search relies on exact comparison for deterministic
// tie-breaking.
func (VarianceScorer) Equal(z1, z2 float64) bool {
	return z1 == z2
}

// CanBeat reports whether a candidate with the given missing-bucket
// contribution can still beat zBest. The missing part is a lower bound on
// the candidate's final score, so once it exceeds the slack-adjusted best
// the rest of the sweep for this feature cannot win and may be skipped.
func (VarianceScorer) CanBeat(w *Accumulator, missing, zBest float64) bool {
	return missing <= zBest*canBeatSlack
}
