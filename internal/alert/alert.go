// Package alert gates delivery of native desktop notification popups
// behind platform permission. The store's admit path calls into the
// bridge; nothing here may ever block or fail that path.
package alert

import (
	"sync"

	"github.com/liftops/liftray/internal/domain"
	"github.com/liftops/liftray/internal/logging"
)

// Permission is the platform notification permission state.
type Permission string

const (
	PermissionUnrequested Permission = "unrequested"
	PermissionGranted     Permission = "granted"
	PermissionDenied      Permission = "denied"
)

// Platform is the narrow OS capability contract for native notifications.
// Environments without the capability plug in a no-op implementation;
// the store never branches on platform detection.
type Platform interface {
	// QueryPermission returns the current permission state without prompting.
	QueryPermission() Permission
	// RequestPermission prompts for permission and returns the outcome.
	RequestPermission() Permission
	// Show renders a native alert. The tag identifies the notification so
	// duplicate shows of the same tag do not stack.
	Show(title, body, tag string) error
}

// Bridge delivers admitted notifications as native desktop alerts.
// Permission is requested lazily on the first delivery and at most once
// per denial per session.
type Bridge struct {
	platform Platform
	logger   logging.Logger

	mu         sync.Mutex
	permission Permission
	requested  bool
	delivered  map[string]bool
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the structured logger.
func WithLogger(l logging.Logger) Option {
	return func(b *Bridge) {
		b.logger = l
	}
}

// NewBridge creates a bridge over a platform capability.
// A nil platform degrades to the no-op implementation.
func NewBridge(platform Platform, opts ...Option) *Bridge {
	if platform == nil {
		platform = NewNoopPlatform()
	}
	b := &Bridge{
		platform:  platform,
		logger:    logging.Noop(),
		delivered: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.permission = platform.QueryPermission()
	return b
}

// Permission returns the bridge's view of the permission state.
func (b *Bridge) Permission() Permission {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.permission
}

// Deliver shows a native alert for an admitted notification when
// permission allows it. Denied permission, missing capability, and show
// failures are all swallowed: the admit path never notices.
func (b *Bridge) Deliver(n domain.Notification) {
	b.mu.Lock()
	if b.permission == PermissionUnrequested && !b.requested {
		b.requested = true
		b.mu.Unlock()
		outcome := b.platform.RequestPermission()
		b.mu.Lock()
		b.permission = outcome
	}
	if b.permission != PermissionGranted {
		b.mu.Unlock()
		return
	}
	if b.delivered[n.ID] {
		b.mu.Unlock()
		return
	}
	b.delivered[n.ID] = true
	b.mu.Unlock()

	if err := b.platform.Show(n.Title, n.Message, n.ID); err != nil {
		b.logger.Warn("native alert failed", "id", n.ID, "error", err)
	}
}
