package boosting

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	scigoErrors "github.com/ezoic/stumpgo/pkg/errors"
)

func TestBoostedStumpRegressor_SingleStumpExactFit(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewDense(4, 1, []float64{0, 0, 10, 10})

	reg := NewBoostedStumpRegressor().
		WithNEstimators(1).
		WithLearningRate(1.0)
	require.NoError(t, reg.Fit(X, y))

	// Init score is the mean (5); one unshrunken stump fits the
	// residuals exactly.
	assert.InDelta(t, 5.0, reg.InitScore(), 1e-9)
	require.Len(t, reg.Stumps(), 1)

	pred, err := reg.Predict(X)
	require.NoError(t, err)
	want := []float64{0, 0, 10, 10}
	for i, w := range want {
		assert.InDelta(t, w, pred.AtVec(i), 1e-9, "row %d", i)
	}

	r2, err := reg.Score(X, y)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r2, 1e-9)
}

func TestBoostedStumpRegressor_ShrinkageConverges(t *testing.T) {
	// Piecewise-constant target over two features; many shrunken rounds
	// should drive the training loss down monotonically-ish to near zero.
	X := mat.NewDense(8, 2, []float64{
		1, 10,
		2, 20,
		3, 10,
		4, 20,
		5, 10,
		6, 20,
		7, 10,
		8, 20,
	})
	y := mat.NewDense(8, 1, []float64{-3, -3, -3, -3, 3, 3, 3, 3})

	reg := NewBoostedStumpRegressor().
		WithNEstimators(200).
		WithLearningRate(0.3)
	require.NoError(t, reg.Fit(X, y))

	loss := reg.TrainLoss()
	require.NotEmpty(t, loss)
	assert.Less(t, loss[len(loss)-1], 1e-6)

	r2, err := reg.Score(X, y)
	require.NoError(t, err)
	assert.Greater(t, r2, 0.999)
}

func TestBoostedStumpRegressor_FitWeightedIgnoresZeroWeightRows(t *testing.T) {
	// The last two rows are outliers but carry no weight.
	X := mat.NewDense(6, 1, []float64{1, 2, 3, 4, 5, 6})
	y := mat.NewDense(6, 1, []float64{1, 1, 1, 1, 100, 100})
	w := []float64{1, 1, 1, 1, 0, 0}

	reg := NewBoostedStumpRegressor().WithNEstimators(10)
	require.NoError(t, reg.FitWeighted(X, y, w))

	assert.InDelta(t, 1.0, reg.InitScore(), 1e-9,
		"weighted mean excludes zero-weight outliers")

	pred, err := reg.Predict(mat.NewDense(1, 1, []float64{2.5}))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, pred.AtVec(0), 1e-6)
}

func TestBoostedStumpRegressor_ConstantTarget(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{1, 2, 3})
	y := mat.NewDense(3, 1, []float64{4, 4, 4})

	reg := NewBoostedStumpRegressor().WithNEstimators(5)
	require.NoError(t, reg.Fit(X, y))

	// Residuals are zero after the init score, so every stump trained on
	// them outputs zero and the model predicts the constant.
	pred, err := reg.Predict(X)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 4.0, pred.AtVec(i), 1e-9)
	}
}

func TestBoostedStumpRegressor_MissingFeatureValues(t *testing.T) {
	nan := math.NaN()
	X := mat.NewDense(6, 1, []float64{1, 2, 3, 4, nan, nan})
	y := mat.NewDense(6, 1, []float64{-2, -2, 2, 2, 8, 8})

	reg := NewBoostedStumpRegressor().
		WithNEstimators(100).
		WithLearningRate(0.5)
	require.NoError(t, reg.Fit(X, y))

	pred, err := reg.Predict(mat.NewDense(3, 1, []float64{1.5, 3.5, nan}))
	require.NoError(t, err)
	assert.InDelta(t, -2.0, pred.AtVec(0), 0.05)
	assert.InDelta(t, 2.0, pred.AtVec(1), 0.05)
	assert.InDelta(t, 8.0, pred.AtVec(2), 0.05)
}

func TestBoostedStumpRegressor_Validation(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{1, 2, 3})
	y := mat.NewDense(3, 1, []float64{1, 2, 3})

	t.Run("predict before fit", func(t *testing.T) {
		reg := NewBoostedStumpRegressor()
		_, err := reg.Predict(X)
		var notFitted *scigoErrors.NotFittedError
		assert.True(t, errors.As(err, &notFitted))
	})

	t.Run("row mismatch", func(t *testing.T) {
		reg := NewBoostedStumpRegressor()
		badY := mat.NewDense(2, 1, []float64{1, 2})
		err := reg.Fit(X, badY)
		var dimErr *scigoErrors.DimensionError
		assert.True(t, errors.As(err, &dimErr))
	})

	t.Run("y not a column vector", func(t *testing.T) {
		reg := NewBoostedStumpRegressor()
		badY := mat.NewDense(3, 2, nil)
		assert.Error(t, reg.Fit(X, badY))
	})

	t.Run("weight length mismatch", func(t *testing.T) {
		reg := NewBoostedStumpRegressor()
		assert.Error(t, reg.FitWeighted(X, y, []float64{1}))
	})

	t.Run("feature count mismatch at predict", func(t *testing.T) {
		reg := NewBoostedStumpRegressor().WithNEstimators(2)
		require.NoError(t, reg.Fit(X, y))
		_, err := reg.Predict(mat.NewDense(1, 3, nil))
		var dimErr *scigoErrors.DimensionError
		assert.True(t, errors.As(err, &dimErr))
	})

	t.Run("zero weight sum", func(t *testing.T) {
		reg := NewBoostedStumpRegressor()
		assert.Error(t, reg.FitWeighted(X, y, []float64{0, 0, 0}))
	})
}
