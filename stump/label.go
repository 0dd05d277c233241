package stump

// Label is the regression target supplied with each training example.
// Implementations are immutable.
type Label interface {
	// Value returns the scalar regression target.
	Value() float64
}

// RegressionLabel is a plain float64 regression target.
type RegressionLabel float64

// Value implements Label.
func (l RegressionLabel) Value() float64 { return float64(l) }

// WeightSource supplies the per-example boosting weights for the current
// round. It is a positional cursor: Current reads the weight of the
// example at the cursor, Advance moves the cursor forward. The narrow
// interface keeps the accumulator independent of how weights are stored.
type WeightSource interface {
	// Current returns the weight at the cursor position.
	Current() float64

	// Advance moves the cursor forward by n positions.
	Advance(n int)
}

// SliceWeights adapts a weight slice to the WeightSource interface.
type SliceWeights struct {
	weights []float64
	pos     int
}

// NewSliceWeights creates a cursor over weights positioned at the start.
// The slice is not copied; the caller keeps ownership.
func NewSliceWeights(weights []float64) *SliceWeights {
	return &SliceWeights{weights: weights}
}

// Current implements WeightSource.
func (s *SliceWeights) Current() float64 { return s.weights[s.pos] }

// Advance implements WeightSource.
func (s *SliceWeights) Advance(n int) { s.pos += n }

// Seek positions the cursor at index i.
func (s *SliceWeights) Seek(i int) { s.pos = i }
