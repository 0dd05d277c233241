package boosting

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/ezoic/stumpgo/core/model"
	"github.com/ezoic/stumpgo/metrics"
	scigoErrors "github.com/ezoic/stumpgo/pkg/errors"
	"github.com/ezoic/stumpgo/pkg/log"
	"github.com/ezoic/stumpgo/stump"
)

// BoostedStumpRegressor fits an additive ensemble of decision stumps by
// least-squares boosting: each round trains one stump on the current
// residuals and adds its shrunken predictions to the model.
type BoostedStumpRegressor struct {
	state  *model.StateManager
	logger log.Logger

	// Hyperparameters
	NEstimators  int     // Number of boosting rounds
	LearningRate float64 // Shrinkage applied to each stump
	Epsilon      float64 // Smoothing threaded through to the predictor
	Verbosity    int     // > 0 enables progress logging

	// Learned state
	initScore float64
	stumps    []Stump
	trainLoss []float64 // weighted MSE after each round
	nFeatures int
}

// NewBoostedStumpRegressor creates a regressor with default parameters.
func NewBoostedStumpRegressor() *BoostedStumpRegressor {
	return &BoostedStumpRegressor{
		state:        model.NewStateManager(),
		logger:       log.GetLoggerWithName("boosting.regressor"),
		NEstimators:  100,
		LearningRate: 0.1,
		Epsilon:      0.0,
		Verbosity:    -1,
	}
}

// WithNEstimators sets the number of boosting rounds.
func (b *BoostedStumpRegressor) WithNEstimators(n int) *BoostedStumpRegressor {
	b.NEstimators = n
	return b
}

// WithLearningRate sets the shrinkage factor.
func (b *BoostedStumpRegressor) WithLearningRate(lr float64) *BoostedStumpRegressor {
	b.LearningRate = lr
	return b
}

// WithEpsilon sets the predictor smoothing parameter.
func (b *BoostedStumpRegressor) WithEpsilon(eps float64) *BoostedStumpRegressor {
	b.Epsilon = eps
	return b
}

// WithVerbosity sets the logging verbosity.
func (b *BoostedStumpRegressor) WithVerbosity(v int) *BoostedStumpRegressor {
	b.Verbosity = v
	return b
}

// Fit trains the ensemble with uniform sample weights.
func (b *BoostedStumpRegressor) Fit(X, y mat.Matrix) error {
	return b.FitWeighted(X, y, nil)
}

// FitWeighted trains the ensemble with per-example weights. A nil
// sampleWeight means uniform weighting.
func (b *BoostedStumpRegressor) FitWeighted(X, y mat.Matrix, sampleWeight []float64) (err error) {
	defer scigoErrors.Recover(&err, "BoostedStumpRegressor.FitWeighted")

	rows, cols := X.Dims()
	yRows, yCols := y.Dims()
	if rows == 0 || cols == 0 {
		return scigoErrors.NewValueError("FitWeighted", "empty training matrix")
	}
	if rows != yRows {
		return scigoErrors.NewDimensionError("FitWeighted", rows, yRows, 0)
	}
	if yCols != 1 {
		return scigoErrors.NewDimensionError("FitWeighted", 1, yCols, 1)
	}
	if sampleWeight != nil && len(sampleWeight) != rows {
		return scigoErrors.NewDimensionError("FitWeighted", rows, len(sampleWeight), 0)
	}
	if b.NEstimators <= 0 {
		return scigoErrors.NewValueError("FitWeighted", "NEstimators must be positive")
	}

	if sampleWeight == nil {
		sampleWeight = make([]float64, rows)
		for i := range sampleWeight {
			sampleWeight[i] = 1.0
		}
	}

	strat, err := stump.SelectStrategy(1)
	if err != nil {
		return err
	}

	// The initial score is the weighted mean of y; boosting then fits
	// residuals around it.
	var sum, sumW float64
	for i := 0; i < rows; i++ {
		sum += y.At(i, 0) * sampleWeight[i]
		sumW += sampleWeight[i]
	}
	if sumW <= 0 {
		return scigoErrors.NewValueError("FitWeighted", "sample weights sum to zero")
	}
	b.initScore = sum / sumW
	b.nFeatures = cols

	residual := make([]float64, rows)
	for i := 0; i < rows; i++ {
		residual[i] = y.At(i, 0) - b.initScore
	}

	b.stumps = b.stumps[:0]
	b.trainLoss = b.trainLoss[:0]
	row := make([]float64, cols)

	for iter := 0; iter < b.NEstimators; iter++ {
		st, err := TrainStump(X, residual, sampleWeight, strat, b.Epsilon)
		if errors.Is(err, ErrNoSplit) {
			if b.Verbosity > 0 {
				b.logger.Info("Stopping early: no split improves the fit",
					"iteration", iter)
			}
			break
		}
		if err != nil {
			return scigoErrors.NewModelError("BoostedStumpRegressor.FitWeighted",
				"stump training failed", err)
		}

		// Shrink the stump's outputs before adding it to the ensemble.
		for bk := range st.Pred {
			st.Pred[bk] *= b.LearningRate
		}
		b.stumps = append(b.stumps, *st)

		var loss float64
		for i := 0; i < rows; i++ {
			mat.Row(row, i, X)
			residual[i] -= st.Predict(row)
			loss += sampleWeight[i] * residual[i] * residual[i]
		}
		loss /= sumW
		b.trainLoss = append(b.trainLoss, loss)

		if b.Verbosity > 0 && iter%10 == 0 {
			b.logger.Debug("Training progress",
				"iteration", iter,
				"loss", loss,
				"feature", st.Feature,
				"threshold", st.Threshold)
		}
	}

	if len(b.stumps) == 0 {
		// Constant model: every prediction is the initial score.
		if b.Verbosity > 0 {
			b.logger.Warn("No stump trained; model predicts the weighted mean")
		}
	}

	b.state.SetFitted()
	return nil
}

// Predict returns the ensemble's output for each row of X.
func (b *BoostedStumpRegressor) Predict(X mat.Matrix) (*mat.VecDense, error) {
	if !b.state.IsFitted() {
		return nil, scigoErrors.NewNotFittedError("BoostedStumpRegressor", "Predict")
	}

	rows, cols := X.Dims()
	if cols != b.nFeatures {
		return nil, scigoErrors.NewDimensionError("Predict", b.nFeatures, cols, 1)
	}

	out := mat.NewVecDense(rows, nil)
	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(row, i, X)
		pred := b.initScore
		for s := range b.stumps {
			pred += b.stumps[s].Predict(row)
		}
		out.SetVec(i, pred)
	}
	return out, nil
}

// Score returns the R² coefficient of determination on the given data.
func (b *BoostedStumpRegressor) Score(X, y mat.Matrix) (float64, error) {
	if !b.state.IsFitted() {
		return 0, scigoErrors.NewNotFittedError("BoostedStumpRegressor", "Score")
	}

	pred, err := b.Predict(X)
	if err != nil {
		return 0, err
	}

	rows, _ := y.Dims()
	yVec := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}
	return metrics.R2Score(yVec, pred)
}

// Stumps returns a copy of the trained stumps.
func (b *BoostedStumpRegressor) Stumps() []Stump {
	out := make([]Stump, len(b.stumps))
	copy(out, b.stumps)
	return out
}

// TrainLoss returns the weighted training MSE recorded after each
// boosting round.
func (b *BoostedStumpRegressor) TrainLoss() []float64 {
	out := make([]float64, len(b.trainLoss))
	copy(out, b.trainLoss)
	return out
}

// InitScore returns the learned base prediction.
func (b *BoostedStumpRegressor) InitScore() float64 { return b.initScore }

// IsFitted reports whether the model has been trained.
func (b *BoostedStumpRegressor) IsFitted() bool { return b.state.IsFitted() }
