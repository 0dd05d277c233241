// Package stump implements the regression weak learner used by boosted
// decision stump training: a three-bucket weighted-statistics accumulator,
// a variance-based split scorer, and the per-bucket prediction rule.
//
// The package models one split of the training weight into TRUE, FALSE and
// MISSING buckets. During a split search the caller sweeps examples in
// sorted feature-value order, moving weight between buckets with
// Accumulator.Transfer as the candidate threshold advances, scoring each
// candidate with VarianceScorer and finally deriving the stump's outputs
// with MeanPredictor. All state fits in three fixed-length arrays, so
// every operation is O(1); the hot path allocates nothing.
//
// Accumulators are not safe for concurrent use. Evaluating several
// features in parallel requires one Accumulator per goroutine.
package stump
