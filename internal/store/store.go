// Package store is the dispatch-based state container that owns the task
// list. Views read snapshots with State, ask for changes with Dispatch and
// learn about changes through Subscribe.
package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/hy4ri/basiclist-tui/internal/api"
)

// ErrNotFound is returned by backends when a task id does not exist.
var ErrNotFound = errors.New("task not found")

// Backend persists tasks. A count of zero or less means every task.
type Backend interface {
	List(ctx context.Context, count int) ([]api.Task, error)
	Create(ctx context.Context, fields api.TaskFields) (api.Task, error)
	Update(ctx context.Context, id string, fields api.TaskFields) (api.Task, error)
	Delete(ctx context.Context, id string) error
}

// State is a snapshot of the store.
type State struct {
	List    []api.Task
	Loading bool
	Err     error

	// Version increases on every change.
	Version uint64
}

// Store holds the task list and applies intents to it.
type Store struct {
	backend Backend
	logger  *log.Logger

	mu        sync.RWMutex
	state     State
	lastCount int
	subs      map[int]chan State
	nextSub   int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger logs every dispatched intent to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New creates a store over backend.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		subs:    make(map[int]chan State),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() State {
	st := s.state
	st.List = append([]api.Task(nil), s.state.List...)
	return st
}

// Subscribe returns a channel that receives the state after every change,
// and a function that ends the subscription. Slow subscribers only see the
// latest state.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan State, 1)
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

// Dispatch applies intent. Backend failures are recorded in State.Err and
// returned.
func (s *Store) Dispatch(ctx context.Context, intent Intent) error {
	s.logf("dispatch %s %+v", intent.Type(), intent)

	switch in := intent.(type) {
	case Fetch:
		return s.fetch(ctx, in.Count)
	case *Fetch:
		return s.fetch(ctx, in.Count)
	case Submit:
		return s.submit(ctx, in)
	case *Submit:
		return s.submit(ctx, *in)
	}
	return fmt.Errorf("unsupported intent %q", intent.Type())
}

// Refresh repeats the most recent listing. After a submit that is the
// whole list.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.RLock()
	count := s.lastCount
	s.mu.RUnlock()
	return s.fetch(ctx, count)
}

func (s *Store) fetch(ctx context.Context, count int) error {
	s.update(func(st *State) {
		st.Loading = true
	})
	s.mu.Lock()
	s.lastCount = count
	s.mu.Unlock()

	tasks, err := s.backend.List(ctx, count)
	if err != nil {
		err = fmt.Errorf("fetch tasks: %w", err)
		s.update(func(st *State) {
			st.Loading = false
			st.Err = err
		})
		return err
	}

	s.update(func(st *State) {
		st.Loading = false
		st.Err = nil
		st.List = tasks
	})
	return nil
}

func (s *Store) submit(ctx context.Context, in Submit) error {
	if err := in.Validate(); err != nil {
		return err
	}

	var err error
	switch in.Op {
	case OpCreate:
		_, err = s.backend.Create(ctx, in.Fields)
	case OpUpdate:
		_, err = s.backend.Update(ctx, in.ID, in.Fields)
	case OpDelete:
		err = s.backend.Delete(ctx, in.ID)
	}
	if err != nil {
		err = fmt.Errorf("%s task: %w", in.Op, err)
		s.update(func(st *State) { st.Err = err })
		return err
	}

	// The list after a submit is the service's whole list, not the first page.
	tasks, err := s.backend.List(ctx, 0)
	if err != nil {
		err = fmt.Errorf("reload tasks: %w", err)
		s.update(func(st *State) { st.Err = err })
		return err
	}

	s.mu.Lock()
	s.lastCount = 0
	s.mu.Unlock()
	s.update(func(st *State) {
		st.Err = nil
		st.List = tasks
	})
	return nil
}

// update mutates the state under the lock and notifies subscribers.
func (s *Store) update(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.state)
	s.state.Version++
	snap := s.snapshotLocked()

	for _, ch := range s.subs {
		// drop a stale undelivered state so the newest one fits
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

func (s *Store) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
