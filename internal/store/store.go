// Package store holds the current browse.State and coordinates the
// asynchronous catalog fetch. It is the only component in the system that
// touches shared mutable state; the reducer it applies stays pure.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/tinytelemetry/vitrine/internal/browse"
	"github.com/tinytelemetry/vitrine/internal/fetch"
)

// Subscriber receives each new state after a dispatch that changed it.
// Callbacks run on the dispatching goroutine while the store is locked, so
// they must return quickly and must not call back into the store; hand off
// to another goroutine instead.
type Subscriber func(browse.State)

// Option configures a Store at construction time.
type Option func(*Store)

// WithFetchTimeout bounds each catalog fetch. Zero disables the bound.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *Store) { s.fetchTimeout = d }
}

// Store applies the reducer synchronously on Dispatch and publishes the
// resulting state to subscribers. At most one fetch is in flight; starting a
// new one cancels the prior, and a superseded or cancelled fetch never
// dispatches its completion.
type Store struct {
	mu    sync.Mutex
	state browse.State

	fetcher      fetch.Fetcher
	fetchTimeout time.Duration

	subs      map[int]Subscriber
	nextSubID int

	// gen identifies the latest fetch; completions carrying an older
	// generation are dropped.
	gen         uint64
	cancelFetch context.CancelFunc

	closed bool
}

// New creates a store over the initial state with the given fetch capability.
func New(fetcher fetch.Fetcher, opts ...Option) *Store {
	s := &Store{
		state:   browse.Initial(),
		fetcher: fetcher,
		subs:    make(map[int]Subscriber),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current snapshot.
func (s *Store) State() browse.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn and returns a func that removes it. The callback is
// invoked only when a dispatch produced a structurally different state.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Dispatch applies the reducer to action, notifies subscribers if the state
// changed, and starts a fetch for effect actions. Safe to call from any
// goroutine; mutations are serialized.
func (s *Store) Dispatch(action browse.Action) {
	s.apply(action, 0)
}

// Close cancels any in-flight fetch and drops all subscribers. Dispatch
// becomes a no-op afterwards.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.cancelFetch != nil {
		s.cancelFetch()
		s.cancelFetch = nil
	}
	s.subs = nil
}

// apply is the single mutation path. gen is zero for user dispatches and the
// fetch generation for completion dispatches, which are dropped when stale.
func (s *Store) apply(action browse.Action, gen uint64) {
	s.mu.Lock()

	if s.closed || (gen != 0 && gen != s.gen) {
		s.mu.Unlock()
		return
	}

	prev := s.state
	next := browse.Reduce(prev, action)
	s.state = next

	var fetchCtx context.Context
	var fetchGen uint64
	if action.TriggersFetch() {
		fetchCtx, fetchGen = s.beginFetchLocked()
	}

	if !next.Equal(prev) {
		for _, fn := range s.subs {
			fn(next)
		}
	}
	s.mu.Unlock()

	if fetchCtx != nil {
		go s.runFetch(fetchCtx, fetchGen)
	}
}

// beginFetchLocked cancels any in-flight fetch and arms a new one.
func (s *Store) beginFetchLocked() (context.Context, uint64) {
	if s.cancelFetch != nil {
		s.cancelFetch()
	}

	s.gen++

	var ctx context.Context
	var cancel context.CancelFunc
	if s.fetchTimeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), s.fetchTimeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	s.cancelFetch = cancel

	return ctx, s.gen
}

func (s *Store) runFetch(ctx context.Context, gen uint64) {
	items, err := s.fetcher.FetchItems(ctx)

	if err != nil {
		// A cancelled fetch was superseded or the store closed; its result
		// must not reach the reducer.
		if errors.Is(err, context.Canceled) {
			return
		}
		s.apply(browse.LoadFailed(fetch.AsFetchError(err)), gen)
		return
	}
	s.apply(browse.ItemsLoaded(items), gen)
}
