package stump

// Predictions holds the stump's regression output for each bucket.
type Predictions [NumBuckets]float64

// UpdateRule tags the boosting weight-update formula compatible with a
// predictor's outputs. The boosting driver interprets the tag; the
// predictor only reports it.
type UpdateRule int

const (
	// UpdateNormal is the standard additive update on raw outputs.
	UpdateNormal UpdateRule = iota
	// UpdateGentle is the gentle-boost damped update.
	UpdateGentle
	// UpdateProb is the probabilistic update for confidence outputs.
	UpdateProb
)

// MeanPredictor converts a finalized accumulator into per-bucket
// regression outputs: the weighted mean of the labels that landed in each
// bucket. Stateless.
type MeanPredictor struct{}

// Predict returns the three bucket predictions. A bucket that received no
// weight falls back to the weighted mean over all three buckets combined,
// so every output is finite and defined. The epsilon and optional
// parameters belong to the shared strategy contract and are not consumed
// by the regression rule.
func (MeanPredictor) Predict(w *Accumulator, epsilon float64, optional bool) Predictions {
	var out Predictions
	for b := Bucket(0); b < NumBuckets; b++ {
		if w.wt[b] > minBucketWeight {
			out[b] = w.dist[b] / w.wt[b]
			continue
		}
		// No weight observed: use the sample mean across all buckets.
		var total, totalWt float64
		for j := Bucket(0); j < NumBuckets; j++ {
			total += w.dist[j]
			totalWt += w.wt[j]
		}
		out[b] = total / totalWt
	}
	return out
}

// UpdateRule reports the weight-update formula matching the weighted-mean
// outputs.
func (MeanPredictor) UpdateRule() UpdateRule { return UpdateNormal }
