// Package model provides the shared estimator plumbing: fitted-state
// tracking that prevents use of untrained models.
//
// Every estimator in the library composes a StateManager and calls
// SetFitted at the end of a successful Fit; prediction paths check
// IsFitted before touching learned parameters.
package model

import "sync"

// EstimatorState represents the learning state of a model.
type EstimatorState int

const (
	// NotFitted indicates the model is not yet trained.
	NotFitted EstimatorState = iota
	// Fitted indicates the model has been trained.
	Fitted
)

// StateManager tracks whether an estimator has been fitted. Safe for
// concurrent use: training happens on one goroutine while prediction
// callers may race against the fitted check.
type StateManager struct {
	mu    sync.RWMutex
	state EstimatorState
}

// NewStateManager creates a StateManager in the NotFitted state.
func NewStateManager() *StateManager {
	return &StateManager{state: NotFitted}
}

// IsFitted reports whether the estimator has been trained.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == Fitted
}

// SetFitted marks the estimator as trained. Called by estimator
// implementations at the end of a successful Fit.
func (s *StateManager) SetFitted() {
	s.mu.Lock()
	s.state = Fitted
	s.mu.Unlock()
}

// Reset returns the estimator to its untrained state.
func (s *StateManager) Reset() {
	s.mu.Lock()
	s.state = NotFitted
	s.mu.Unlock()
}
