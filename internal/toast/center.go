package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level classifies a toast for styling.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Toast is one transient in-app message.
type Toast struct {
	ID    string
	Level Level
	Title string
	Body  string
	At    time.Time
}

// DefaultTTL is how long a toast stays visible.
const DefaultTTL = 5 * time.Second

// defaultMax caps how many toasts the center retains.
const defaultMax = 32

// Center collects transient toasts for UI consumers. Expired toasts are
// pruned lazily on read.
type Center struct {
	mu     sync.Mutex
	toasts []Toast
	ttl    time.Duration
	max    int
	clock  func() time.Time
}

// CenterOption configures a Center.
type CenterOption func(*Center)

// WithTTL sets how long toasts stay active.
func WithTTL(ttl time.Duration) CenterOption {
	return func(c *Center) {
		c.ttl = ttl
	}
}

// WithCenterClock sets the time source. Intended for tests.
func WithCenterClock(clock func() time.Time) CenterOption {
	return func(c *Center) {
		c.clock = clock
	}
}

// NewCenter creates a toast center.
func NewCenter(opts ...CenterOption) *Center {
	c := &Center{
		ttl:   DefaultTTL,
		max:   defaultMax,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Push adds a toast and returns it.
func (c *Center) Push(level Level, title, body string) Toast {
	t := Toast{
		ID:    uuid.NewString(),
		Level: level,
		Title: title,
		Body:  body,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	t.At = c.clock()
	c.toasts = append(c.toasts, t)
	if len(c.toasts) > c.max {
		c.toasts = c.toasts[len(c.toasts)-c.max:]
	}
	return t
}

// Active returns the toasts that have not expired yet, oldest first.
func (c *Center) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if now.Sub(t.At) < c.ttl {
			kept = append(kept, t)
		}
	}
	c.toasts = kept

	result := make([]Toast, len(kept))
	copy(result, kept)
	return result
}
