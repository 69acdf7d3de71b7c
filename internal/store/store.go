// Package store holds the expense and filter state and applies actions to it.
//
// A Store is single writer: Dispatch runs the reducers, installs the new
// state and then notifies every subscriber synchronously, in registration
// order, before returning. State values are never modified after being
// installed, so a snapshot returned by State can be read freely while later
// actions are dispatched.
package store

import (
	"sync"

	"golang.org/x/exp/slices"

	"github.com/GustavoCaso/expensify/internal/action"
	"github.com/GustavoCaso/expensify/internal/expense"
	"github.com/GustavoCaso/expensify/internal/filter"
	"github.com/GustavoCaso/expensify/internal/logger"
	"github.com/GustavoCaso/expensify/internal/reducer"
)

type State struct {
	Expenses []expense.Expense
	Filters  filter.Criteria
}

// DefaultState is the state of a newly created store.
func DefaultState() State {
	return State{
		Expenses: []expense.Expense{},
		Filters:  filter.Default(),
	}
}

type Listener func()

type subscription struct {
	id       int
	listener Listener
}

type Store struct {
	mu          sync.Mutex
	logger      *logger.Logger
	state       State
	subs        []subscription
	nextSubID   int
	dispatching bool
	closed      bool
}

type Option func(*Store)

// WithState replaces the initial state of the store.
func WithState(state State) Option {
	return func(s *Store) {
		if state.Expenses == nil {
			state.Expenses = []expense.Expense{}
		}
		state.Expenses = slices.Clone(state.Expenses)
		s.state = state
	}
}

func New(logger *logger.Logger, opts ...Option) *Store {
	s := &Store{
		logger: logger.With("component", "store"),
		state:  DefaultState(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// State returns the current snapshot. The expenses are copied, so writing
// to the returned slice never reaches the store.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		Expenses: slices.Clone(s.state.Expenses),
		Filters:  s.state.Filters,
	}
}

// Dispatch applies a to both reducers and notifies the subscribers.
//
// Calling Dispatch from inside a subscriber does not apply the nested action:
// it is logged as an error and dropped, and the outer dispatch carries on
// with the remaining subscribers. Dispatching after Close is dropped as well.
func (s *Store) Dispatch(a action.Action) {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		s.logger.Warn("dispatch on closed store ignored", action.Describe(a)...)
		return
	}

	if s.dispatching {
		s.mu.Unlock()
		s.logger.Error("nested dispatch from a subscriber ignored", action.Describe(a)...)
		return
	}

	s.dispatching = true
	s.state = State{
		Expenses: reducer.Expenses(s.state.Expenses, a),
		Filters:  reducer.Filters(s.state.Filters, a),
	}
	expenses := len(s.state.Expenses)
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)

	s.mu.Unlock()

	s.logger.Debug("action dispatched", append(action.Describe(a), "expenses", expenses, "subscribers", len(subs))...)

	defer func() {
		s.mu.Lock()
		s.dispatching = false
		s.mu.Unlock()
	}()

	for _, sub := range subs {
		sub.listener()
	}
}

// Subscribe registers listener to be called after every dispatch.
// The returned function removes it; calling it more than once only logs a
// warning.
func (s *Store) Subscribe(listener Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subs = append(s.subs, subscription{id: id, listener: listener})

	return func() {
		if !s.unsubscribe(id) {
			s.logger.Warn("unsubscribe called for a listener that is not registered", "subscription", id)
		}
	}
}

func (s *Store) unsubscribe(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subs {
		if sub.id == id {
			subs := make([]subscription, 0, len(s.subs)-1)
			subs = append(subs, s.subs[:i]...)
			s.subs = append(subs, s.subs[i+1:]...)
			return true
		}
	}

	return false
}

// Close drops every subscriber. Further dispatches are ignored.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.closed = true
	s.subs = nil
	s.logger.Debug("store closed")
}
