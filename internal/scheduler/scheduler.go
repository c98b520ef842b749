// Package scheduler drives periodic re-synchronization of the unread view
// while a session is active, plus the one-time bootstrap at session start.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/liftops/liftray/internal/logging"
	"github.com/liftops/liftray/internal/store"
)

// DefaultInterval is the refresh period when none is configured.
const DefaultInterval = 30 * time.Second

// Syncer defines the store operations the scheduler drives.
type Syncer interface {
	FetchList(ctx context.Context, opts store.FetchOptions) error
	FetchUnread(ctx context.Context)
}

// Scheduler owns the refresh timer for one session. It must be stopped
// when the session ends; a timer that keeps firing after logout is a
// defect this type exists to prevent.
type Scheduler struct {
	syncer   Syncer
	logger   logging.Logger
	interval time.Duration
	limit    int
	tickChan <-chan time.Time

	mu      sync.Mutex
	stopCh  chan struct{}
	running bool
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithInterval sets the refresh period.
func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithPageLimit sets the page size used for the bootstrap list fetch.
func WithPageLimit(limit int) Option {
	return func(s *Scheduler) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Scheduler) {
		s.logger = l
	}
}

// WithTickChan injects an external tick source instead of a real ticker.
// Intended for tests.
func WithTickChan(ch <-chan time.Time) Option {
	return func(s *Scheduler) {
		s.tickChan = ch
	}
}

// New creates a scheduler for a syncer.
func New(syncer Syncer, opts ...Option) *Scheduler {
	if syncer == nil {
		panic("scheduler.New: syncer dependency cannot be nil")
	}
	s := &Scheduler{
		syncer:   syncer,
		logger:   logging.Noop(),
		interval: DefaultInterval,
		limit:    20,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start bootstraps the caches and begins the refresh loop in a goroutine.
// Calling Start on a running scheduler is a no-op. The loop ends when
// Stop is called or ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	stopCh := s.stopCh
	s.mu.Unlock()

	s.bootstrap(ctx)

	go s.loop(ctx, stopCh)
}

// Stop halts the refresh loop and releases the timer. Idempotent.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	close(s.stopCh)
	s.running = false
}

// Running reports whether the refresh loop is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// bootstrap loads page 1 of the full list and the unread view once.
func (s *Scheduler) bootstrap(ctx context.Context) {
	if err := s.syncer.FetchList(ctx, store.FetchOptions{Page: 1, Limit: s.limit}); err != nil {
		s.logger.Error("bootstrap list fetch failed", "error", err)
	}
	s.tick(ctx)
}

func (s *Scheduler) loop(ctx context.Context, stopCh <-chan struct{}) {
	tickChan, cleanup := s.setupTickChan()
	defer cleanup()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case <-tickChan:
			// A stop racing with a pending tick must win.
			select {
			case <-ctx.Done():
				return
			case <-stopCh:
				return
			default:
			}
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) setupTickChan() (<-chan time.Time, func()) {
	if s.tickChan != nil {
		return s.tickChan, func() {}
	}
	ticker := time.NewTicker(s.interval)
	return ticker.C, ticker.Stop
}

// tick refreshes the unread view. A failing or even panicking tick must
// not kill the loop; the next tick gets another chance.
func (s *Scheduler) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("refresh tick panicked", "panic", r)
		}
	}()
	s.syncer.FetchUnread(ctx)
}
