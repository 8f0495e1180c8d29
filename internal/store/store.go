// Package store tracks the lifecycle of the transfer list request.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Veraticus/transfers/internal/model"
	"github.com/Veraticus/transfers/internal/service"
)

// Status is the fetch lifecycle stage.
type Status int

// Fetch lifecycle stages.
const (
	StatusIdle Status = iota
	StatusLoading
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchState is a snapshot of the request lifecycle. Items is replaced
// wholesale on success and must be treated as read-only. Attempt counts the
// fetches started so far, so two failures in a row stay distinguishable.
type FetchState struct {
	Err     error
	Items   []model.Transaction
	Status  Status
	Attempt int
}

// ErrorMessage returns the display message of the last failure, or "".
func (s FetchState) ErrorMessage() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// Store owns the FetchState. It is the only writer; readers take snapshots or
// subscribe to transitions.
type Store struct {
	fetcher     service.TransactionFetcher
	subscribers map[int]chan FetchState
	state       FetchState
	inflight    sync.WaitGroup
	mu          sync.Mutex
	nextSubID   int
}

// New creates an idle store backed by fetcher.
func New(fetcher service.TransactionFetcher) *Store {
	return &Store{
		fetcher:     fetcher,
		subscribers: make(map[int]chan FetchState),
	}
}

// State returns the current snapshot.
func (s *Store) State() FetchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// TriggerFetch starts a fetch unless one is already in flight, in which case
// it does nothing and returns false. Existing items stay visible until the new
// fetch resolves. An in-flight fetch cannot be cancelled through the store.
func (s *Store) TriggerFetch(ctx context.Context) bool {
	s.mu.Lock()
	if s.state.Status == StatusLoading {
		s.mu.Unlock()
		slog.Debug("Fetch already in flight, ignoring trigger")
		return false
	}
	s.state.Status = StatusLoading
	s.state.Attempt++
	s.inflight.Add(1)
	s.publishLocked()
	s.mu.Unlock()

	go s.run(ctx)
	return true
}

// Wait blocks until no fetch is in flight.
func (s *Store) Wait() {
	s.inflight.Wait()
}

// Fetch triggers a fetch if none is running, waits for the outcome and
// returns the resulting state.
func (s *Store) Fetch(ctx context.Context) FetchState {
	s.TriggerFetch(ctx)
	s.Wait()
	return s.State()
}

// Subscribe returns a channel that receives every state transition, starting
// with the current state, and a function that ends the subscription. A slow
// reader only ever sees the most recent state.
func (s *Store) Subscribe() (<-chan FetchState, func()) {
	ch := make(chan FetchState, 1)

	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = ch
	ch <- s.state
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

func (s *Store) run(ctx context.Context) {
	defer s.inflight.Done()

	start := time.Now()
	items, err := s.fetcher.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state.Status = StatusFailed
		s.state.Err = err
		slog.Warn("Fetch failed", "error", err, "duration", time.Since(start))
	} else {
		if items == nil {
			items = []model.Transaction{}
		}
		s.state.Status = StatusSucceeded
		s.state.Items = items
		s.state.Err = nil
		slog.Info("Fetch succeeded", "count", len(items), "duration", time.Since(start))
	}

	s.publishLocked()
}

// publishLocked delivers the current state to every subscriber, replacing any
// state the subscriber has not read yet. Callers hold s.mu.
func (s *Store) publishLocked() {
	for _, ch := range s.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- s.state
	}
}
