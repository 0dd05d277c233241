package stump

import (
	"github.com/cockroachdb/errors"
)

// Scorer is the split-scoring half of a weak-learner strategy.
type Scorer interface {
	Missing(w *Accumulator, optional bool) float64
	NonMissing(w *Accumulator, missing float64) float64
	NonMissingPresence(w *Accumulator, missing float64) float64
	Score(w *Accumulator) float64
	Better(z1, z2 float64) bool
	Equal(z1, z2 float64) bool
	CanBeat(w *Accumulator, missing, zBest float64) bool
}

// Predictor is the output half of a weak-learner strategy.
type Predictor interface {
	Predict(w *Accumulator, epsilon float64, optional bool) Predictions
	UpdateRule() UpdateRule
}

// Strategy bundles one weak-learner training rule: how to build its
// accumulator and how to score and predict from it. The set of strategies
// is closed and one is selected up front for a whole training run; the
// strategy never changes mid-sweep.
type Strategy struct {
	Name           string
	NewAccumulator func(labelCount int) (*Accumulator, error)
	Scorer         Scorer
	Predictor      Predictor
}

// Regression is the scalar-regression stump strategy.
var Regression = Strategy{
	Name:           "regression",
	NewAccumulator: NewAccumulator,
	Scorer:         VarianceScorer{},
	Predictor:      MeanPredictor{},
}

// SelectStrategy picks the strategy for a training run from the label
// cardinality of the problem. Only scalar regression (labelCount 1) is
// available in this package; classification variants live elsewhere.
func SelectStrategy(labelCount int) (Strategy, error) {
	if labelCount == 1 {
		return Regression, nil
	}
	return Strategy{}, errors.Newf(
		"no weak-learner strategy for label count %d: only scalar regression is supported",
		labelCount)
}
