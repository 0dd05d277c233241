// Package boosting trains boosted ensembles of regression decision stumps
// on top of the stump weak-learner package.
package boosting

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/ezoic/stumpgo/stump"
)

// ErrNoSplit indicates that no feature offered a weight-reducing split,
// e.g. because every feature is constant over the weighted sample.
var ErrNoSplit = errors.New("no valid split found")

// Stump is a one-level decision rule on a single feature. A NaN feature
// value routes an example to the missing prediction; otherwise values at
// or below the threshold take the true-branch prediction.
type Stump struct {
	Feature   int
	Threshold float64
	Pred      stump.Predictions
	Score     float64 // residual weighted variance of the chosen split
}

// Predict returns the stump's output for one example row.
func (s *Stump) Predict(row []float64) float64 {
	v := row[s.Feature]
	if math.IsNaN(v) {
		return s.Pred[stump.BucketMissing]
	}
	if v <= s.Threshold {
		return s.Pred[stump.BucketTrue]
	}
	return s.Pred[stump.BucketFalse]
}

// TrainStump finds the best single-feature split of X against targets y
// under the given per-example weights. Each feature is swept once in
// sorted value order: every example starts in the FALSE bucket (NaNs in
// MISSING), is transferred to TRUE as the candidate threshold advances,
// and each boundary between distinct values is scored. The scorer's
// pruning bound skips features whose missing-bucket residual alone cannot
// beat the best score found so far. Ties keep the earlier feature and the
// lower threshold, so the search is deterministic.
func TrainStump(X mat.Matrix, y, sampleWeight []float64, strat stump.Strategy, epsilon float64) (*Stump, error) {
	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return nil, errors.New("TrainStump: empty input matrix")
	}
	if len(y) != rows {
		return nil, errors.Newf("TrainStump: %d targets for %d rows", len(y), rows)
	}
	if len(sampleWeight) != rows {
		return nil, errors.Newf("TrainStump: %d weights for %d rows", len(sampleWeight), rows)
	}

	labels := make([]stump.RegressionLabel, rows)
	for i, v := range y {
		labels[i] = stump.RegressionLabel(v)
	}

	weights := stump.NewSliceWeights(sampleWeight)
	scorer := strat.Scorer

	best := &Stump{Feature: -1, Score: stump.WorstScore}
	values := make([]float64, rows)
	order := make([]int, rows)

	for feature := 0; feature < cols; feature++ {
		w, err := strat.NewAccumulator(1)
		if err != nil {
			return nil, err
		}

		// Partition the column: NaNs feed MISSING up front, everything
		// else starts in FALSE with the threshold below the minimum.
		order = order[:0]
		for i := 0; i < rows; i++ {
			values[i] = X.At(i, feature)
			weights.Seek(i)
			if math.IsNaN(values[i]) {
				w.Add(labels[i], stump.BucketMissing, weights, 0)
			} else {
				w.Add(labels[i], stump.BucketFalse, weights, 0)
				order = append(order, i)
			}
		}
		w.Clip(stump.BucketMissing)

		missing := scorer.Missing(w, false)
		if !scorer.CanBeat(w, missing, best.Score) {
			// The fixed missing residual already exceeds the tolerant
			// best bound; no threshold on this feature can win.
			continue
		}
		if len(order) < 2 {
			continue
		}

		sort.Slice(order, func(a, b int) bool {
			return values[order[a]] < values[order[b]]
		})

		for k, idx := range order {
			weights.Seek(idx)
			w.Transfer(labels[idx], stump.BucketFalse, stump.BucketTrue, 1.0, weights, 0)

			// Score only at boundaries between distinct values; equal
			// values must stay on the same side of the threshold.
			if k == len(order)-1 || values[idx] == values[order[k+1]] {
				continue
			}

			z := scorer.NonMissing(w, missing)
			if scorer.Better(z, best.Score) {
				best = &Stump{
					Feature:   feature,
					Threshold: (values[idx] + values[order[k+1]]) / 2.0,
					Pred:      strat.Predictor.Predict(w, epsilon, false),
					Score:     z,
				}
			}
		}
	}

	if best.Feature < 0 {
		return nil, ErrNoSplit
	}
	return best, nil
}
