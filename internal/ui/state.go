package ui

import (
	"sync"

	"github.com/interviewqs/qbank/internal/questions"
)

// State is the application state the filter buttons read.
type State struct {
	Filter string
}

// Actions are the state transitions a filter button can trigger.
type Actions interface {
	SetFilter(filter string)
}

// Store owns the current filter for the question browser.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore returns a Store with no filter applied.
func NewStore() *Store {
	return &Store{state: State{Filter: questions.AllTag}}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetFilter implements Actions.
func (s *Store) SetFilter(filter string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Filter = filter
}
