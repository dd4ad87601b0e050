package search

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mmcdole/marquee/internal/domain"
)

const (
	// DefaultSettleDelay holds the loader after a search resolves so fast
	// responses don't flicker. It is added to the request time.
	DefaultSettleDelay = time.Second

	// DefaultInitialQuery seeds the grid on mount
	DefaultInitialQuery = "popular"

	MsgNoResults   = "No movies found for your request."
	MsgSearchError = "Something went wrong. Try again later."
)

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithObserver registers the state-change observer
func WithObserver(observer Observer) Option {
	return func(o *Orchestrator) {
		o.observer = observer
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSettleDelay overrides the post-completion loader hold
func WithSettleDelay(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d >= 0 {
			o.settleDelay = d
		}
	}
}

// WithInitialQuery overrides the query issued by Mount
func WithInitialQuery(query string) Option {
	return func(o *Orchestrator) {
		if query != "" {
			o.initialQuery = query
		}
	}
}

// WithClock replaces time.After for the settle timer
func WithClock(after func(time.Duration) <-chan time.Time) Option {
	return func(o *Orchestrator) {
		if after != nil {
			o.after = after
		}
	}
}

// Orchestrator owns the search UI state and coordinates gateway calls.
// It is safe for concurrent use; Submit blocks and is meant to run off the UI loop.
type Orchestrator struct {
	searcher     domain.MovieSearcher
	notifier     domain.Notifier
	observer     Observer
	logger       *slog.Logger
	settleDelay  time.Duration
	initialQuery string
	after        func(time.Duration) <-chan time.Time

	mu         sync.Mutex
	state      State
	generation uint64 // id of the newest submit; older resolutions are dropped

	mounted atomic.Bool
}

// New creates an orchestrator in the Idle state
func New(searcher domain.MovieSearcher, notifier domain.Notifier, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		searcher:     searcher,
		notifier:     notifier,
		logger:       slog.Default(),
		settleDelay:  DefaultSettleDelay,
		initialQuery: DefaultInitialQuery,
		after:        time.After,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Snapshot returns a copy of the current state
func (o *Orchestrator) Snapshot() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state.clone()
}

// Mount issues the initial search exactly once. Later calls return false
// without doing anything.
func (o *Orchestrator) Mount(ctx context.Context) bool {
	if !o.mounted.CompareAndSwap(false, true) {
		return false
	}
	o.logger.Debug("mounting search", "query", o.initialQuery)
	o.Submit(ctx, o.initialQuery)
	return true
}

// Submit runs one search to completion: clear and show the loader, call the
// gateway, apply the outcome, then hold the loader for the settle delay.
// Failures become error state plus an error notification; nothing is returned.
//
// Cancelling ctx during the hold ends it early so shutdown is not delayed by
// the settle delay. The loader clears at once and the resolved movies stay.
func (o *Orchestrator) Submit(ctx context.Context, query string) {
	gen := o.begin(query)

	movies, err := o.searcher.Search(ctx, query)

	if !o.resolve(gen, query, movies, err) {
		return
	}

	select {
	case <-o.after(o.settleDelay):
	case <-ctx.Done():
	}

	o.settle(gen)
}

// Select opens the detail modal for movie
func (o *Orchestrator) Select(movie domain.Movie) {
	o.update(func(s *State) {
		s.Selected = &movie
	})
}

// CloseModal clears the selection
func (o *Orchestrator) CloseModal() {
	o.update(func(s *State) {
		s.Selected = nil
	})
}

// begin starts a new generation and enters the loading state
func (o *Orchestrator) begin(query string) uint64 {
	var gen uint64
	o.update(func(s *State) {
		o.generation++
		gen = o.generation
		s.Query = query
		s.Movies = nil
		s.HasError = false
		s.IsLoading = true
	})
	o.logger.Debug("search started", "query", query, "generation", gen)
	return gen
}

// resolve applies a gateway outcome. Returns false if a newer search superseded it.
func (o *Orchestrator) resolve(gen uint64, query string, movies []domain.Movie, err error) bool {
	var note *domain.Notification

	o.mu.Lock()
	if gen != o.generation {
		o.mu.Unlock()
		o.logger.Debug("discarding stale search result", "query", query, "generation", gen)
		return false
	}

	switch {
	case err != nil:
		o.state.HasError = true
		note = &domain.Notification{Level: domain.LevelError, Message: MsgSearchError}
		o.logger.Warn("search failed", "query", query, "error", err)
	case len(movies) == 0:
		note = &domain.Notification{Level: domain.LevelInfo, Message: MsgNoResults}
		o.logger.Info("search returned no results", "query", query)
	default:
		o.state.Movies = movies
		o.logger.Info("search complete", "query", query, "results", len(movies))
	}
	snapshot := o.bumpLocked()
	o.mu.Unlock()

	o.emit(snapshot)
	if note != nil && o.notifier != nil {
		o.notifier.Notify(*note)
	}
	return true
}

// settle clears the loader unless a newer search has taken it over
func (o *Orchestrator) settle(gen uint64) {
	o.mu.Lock()
	if gen != o.generation {
		o.mu.Unlock()
		return
	}
	o.state.IsLoading = false
	snapshot := o.bumpLocked()
	o.mu.Unlock()

	o.emit(snapshot)
}

// update applies fn under the lock and notifies the observer
func (o *Orchestrator) update(fn func(s *State)) {
	o.mu.Lock()
	fn(&o.state)
	snapshot := o.bumpLocked()
	o.mu.Unlock()

	o.emit(snapshot)
}

func (o *Orchestrator) bumpLocked() State {
	o.state.Version++
	return o.state.clone()
}

func (o *Orchestrator) emit(snapshot State) {
	if o.observer != nil {
		o.observer.OnStateChange(snapshot)
	}
}
