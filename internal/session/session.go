// Package session ties the notification subsystem to one signed-in user.
// A Session is constructed at login and closed at logout; nothing here is
// a process-wide singleton, so a long-lived process can run sessions
// back to back without leakage.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/liftops/liftray/internal/alert"
	"github.com/liftops/liftray/internal/api"
	"github.com/liftops/liftray/internal/config"
	"github.com/liftops/liftray/internal/domain"
	"github.com/liftops/liftray/internal/logging"
	"github.com/liftops/liftray/internal/scheduler"
	"github.com/liftops/liftray/internal/store"
	"github.com/liftops/liftray/internal/toast"
)

// Options holds the session dependencies. Nil fields fall back to
// configuration-driven defaults.
type Options struct {
	// Transport overrides the HTTP client built from configuration.
	Transport api.Transport
	// Platform overrides the desktop notification capability.
	Platform alert.Platform
	// Logger is the structured logger; defaults to the no-op logger.
	Logger logging.Logger
	// Interval overrides the configured poll period.
	Interval time.Duration
	// PageLimit overrides the configured page size.
	PageLimit int
}

// Session owns the store, scheduler, and alert bridge for one login.
type Session struct {
	store     *store.Store
	scheduler *scheduler.Scheduler
	bridge    *alert.Bridge
	toasts    *toast.Center
	logger    logging.Logger
}

// New wires a session from options and global configuration.
func New(opts Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Noop()
	}

	transport := opts.Transport
	if transport == nil {
		serverURL := config.Get("server_url", "")
		token := config.Get("token", "")
		if serverURL == "" {
			return nil, fmt.Errorf("session: server_url is not configured")
		}
		if token == "" {
			return nil, fmt.Errorf("session: token is not configured")
		}
		transport = api.NewClient(serverURL, token)
	}

	platform := opts.Platform
	if platform == nil {
		if config.GetBool("desktop_alerts", true) {
			platform = alert.NewDesktopPlatform()
		} else {
			platform = alert.NewNoopPlatform()
		}
	}

	interval := opts.Interval
	if interval <= 0 {
		interval = time.Duration(config.GetInt("poll_interval_seconds", 30)) * time.Second
	}
	limit := opts.PageLimit
	if limit <= 0 {
		limit = config.GetInt("page_limit", 20)
	}

	st := store.New(transport, store.WithLogger(logger))
	bridge := alert.NewBridge(platform, alert.WithLogger(logger))
	toasts := toast.NewCenter()

	// Every admitted notification raises an in-app toast unconditionally;
	// the native alert additionally requires permission.
	st.OnAdmit(func(n domain.Notification) {
		toasts.Push(toast.LevelInfo, n.Title, n.Message)
		bridge.Deliver(n)
	})

	sched := scheduler.New(st,
		scheduler.WithInterval(interval),
		scheduler.WithPageLimit(limit),
		scheduler.WithLogger(logger),
	)

	return &Session{
		store:     st,
		scheduler: sched,
		bridge:    bridge,
		toasts:    toasts,
		logger:    logger,
	}, nil
}

// Start bootstraps the caches and begins periodic refresh.
func (s *Session) Start(ctx context.Context) {
	s.scheduler.Start(ctx)
}

// Close stops the refresh loop and tears the store down. Transport calls
// still in flight resolve against a closed store, which ignores them.
func (s *Session) Close() {
	s.scheduler.Stop()
	s.store.Close()
}

// Store returns the session's notification store.
func (s *Session) Store() *store.Store {
	return s.store
}

// Toasts returns the session's in-app toast center.
func (s *Session) Toasts() *toast.Center {
	return s.toasts
}

// Bridge returns the desktop alert bridge.
func (s *Session) Bridge() *alert.Bridge {
	return s.bridge
}
