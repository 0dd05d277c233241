package stump

import (
	scigoErrors "github.com/ezoic/stumpgo/pkg/errors"
)

// Bucket identifies one of the three weight partitions of a candidate
// split. The set is closed: exactly three buckets always exist.
type Bucket int

const (
	// BucketFalse holds examples for which the split predicate is false.
	BucketFalse Bucket = iota
	// BucketTrue holds examples for which the split predicate is true.
	BucketTrue
	// BucketMissing holds examples whose feature value is missing.
	BucketMissing

	// NumBuckets is the number of weight partitions.
	NumBuckets = 3
)

// Accumulator maintains the weighted label statistics of the three buckets
// during one split-point sweep: dist is the sum of value*weight, sqr the
// sum of value^2*weight and wt the plain weight sum per bucket.
//
// An accumulator lives for a single feature's sweep: construct, a run of
// Add/Transfer/Clip/SwapBuckets calls in sorted feature-value order, a
// read by the scorer and predictor, then discard. It carries no internal
// synchronization.
type Accumulator struct {
	dist [NumBuckets]float64
	sqr  [NumBuckets]float64
	wt   [NumBuckets]float64
}

// NewAccumulator creates an accumulator for a split search. This variant
// supports scalar regression targets only, so labelCount must be 1.
func NewAccumulator(labelCount int) (*Accumulator, error) {
	if labelCount != 1 {
		return nil, scigoErrors.NewValueError("NewAccumulator",
			"not a regression problem: label count must be 1")
	}
	return &Accumulator{}, nil
}

// LabelCount reports the label cardinality this accumulator supports,
// which is always 1 for the regression variant.
func (w *Accumulator) LabelCount() int { return 1 }

// Add accumulates one example into bucket with an implicit weight scale of
// 1, then advances the weight cursor by advance.
func (w *Accumulator) Add(label Label, bucket Bucket, weights WeightSource, advance int) {
	w.AddScaled(label, bucket, 1.0, weights, advance)
}

// AddScaled accumulates one example into bucket. The contribution uses
// weight weights.Current()*scale and the example's label value, after
// which the cursor is advanced by advance.
func (w *Accumulator) AddScaled(label Label, bucket Bucket, scale float64, weights WeightSource, advance int) {
	f := label.Value()
	wgt := weights.Current() * scale
	fw := f * wgt
	w.dist[bucket] += fw
	w.sqr[bucket] += f * fw
	w.wt[bucket] += wgt
	weights.Advance(advance)
}

// Transfer moves one example's contribution from one bucket to another as
// the candidate threshold advances past it, without recomputing the
// bucket statistics from scratch. The contribution is derived exactly as
// in AddScaled and is subtracted from from and added to to.
func (w *Accumulator) Transfer(label Label, from, to Bucket, scale float64, weights WeightSource, advance int) {
	f := label.Value()
	wgt := weights.Current() * scale
	fw := f * wgt
	ffw := f * fw
	w.dist[from] -= fw
	w.sqr[from] -= ffw
	w.wt[from] -= wgt
	w.dist[to] += fw
	w.sqr[to] += ffw
	w.wt[to] += wgt
	weights.Advance(advance)
}

// Merge would fold bucket from of other into bucket to of w. The
// regression accumulator does not support cross-accumulator merging; the
// error is unconditional. Parallel split searches use one accumulator per
// goroutine instead of merging partial sweeps.
func (w *Accumulator) Merge(from, to Bucket, other *Accumulator) error {
	return scigoErrors.NewNotImplementedError("Accumulator.Merge",
		"cross-accumulator transfer is not supported by the regression variant")
}

// Clip floors the bucket's statistics at zero. Repeated add/subtract
// rounds can leave them slightly negative; after Clip all three values
// for the bucket are >= 0. Idempotent.
func (w *Accumulator) Clip(bucket Bucket) {
	if w.dist[bucket] < 0 {
		w.dist[bucket] = 0
	}
	if w.sqr[bucket] < 0 {
		w.sqr[bucket] = 0
	}
	if w.wt[bucket] < 0 {
		w.wt[bucket] = 0
	}
}

// SwapBuckets exchanges all statistics between two buckets.
func (w *Accumulator) SwapBuckets(b1, b2 Bucket) {
	w.dist[b1], w.dist[b2] = w.dist[b2], w.dist[b1]
	w.sqr[b1], w.sqr[b2] = w.sqr[b2], w.sqr[b1]
	w.wt[b1], w.wt[b2] = w.wt[b2], w.wt[b1]
}

// Swap exchanges the entire state with another accumulator.
func (w *Accumulator) Swap(other *Accumulator) {
	*w, *other = *other, *w
}

// Dist returns the sum of value*weight accumulated in bucket.
func (w *Accumulator) Dist(bucket Bucket) float64 { return w.dist[bucket] }

// Sqr returns the sum of value^2*weight accumulated in bucket.
func (w *Accumulator) Sqr(bucket Bucket) float64 { return w.sqr[bucket] }

// Weight returns the weight sum accumulated in bucket.
func (w *Accumulator) Weight(bucket Bucket) float64 { return w.wt[bucket] }
