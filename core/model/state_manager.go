// Package model provides state management and the common contracts shared by
// the estimators and transformers in this library.
package model

import (
	"fmt"
	"sync"
)

// StateManager manages the fitted state of a model in a thread-safe manner.
// Models hold it by composition rather than embedding a base estimator.
type StateManager struct {
	Fitted bool
	mu     sync.RWMutex

	// Dimensions seen during fitting.
	NSamples   int
	NVariables int
}

// NewStateManager creates a new StateManager instance.
func NewStateManager() *StateManager {
	return &StateManager{
		Fitted: false,
	}
}

// IsFitted returns whether the model has been fitted.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Fitted
}

// SetFitted marks the model as fitted.
func (s *StateManager) SetFitted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Fitted = true
}

// Reset resets the fitted state.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Fitted = false
	s.NSamples = 0
	s.NVariables = 0
}

// SetDimensions records the number of samples and variables seen during
// fitting.
func (s *StateManager) SetDimensions(nSamples, nVariables int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.NSamples = nSamples
	s.NVariables = nVariables
}

// GetDimensions returns the number of samples and variables seen during
// fitting.
func (s *StateManager) GetDimensions() (nSamples, nVariables int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.NSamples, s.NVariables
}

// RequireFitted returns an error if the model has not been fitted.
func (s *StateManager) RequireFitted() error {
	if !s.IsFitted() {
		return fmt.Errorf("model has not been fitted yet. Call Fit() first")
	}
	return nil
}
