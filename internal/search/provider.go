// Package search provides a unified search abstraction for filtering
// notifications. CLI and TUI share the same matcher so free-text search
// behaves identically in both.
package search

import (
	"github.com/liftops/liftray/internal/domain"
)

// Provider defines the interface for search providers.
type Provider interface {
	// Match returns true if the notification matches the search query.
	Match(notif domain.Notification, query string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool     // If true, searches ignore case sensitivity
	Fields          []string // Fields to search in (default: title, message)
}

// DefaultOptions returns the default search options.
func DefaultOptions() Options {
	return Options{
		CaseInsensitive: true,
		Fields:          []string{"title", "message"},
	}
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

// WithFields sets the fields to search in.
// Valid fields: "title", "message", "type".
func WithFields(fields []string) Option {
	return func(o *Options) {
		o.Fields = fields
	}
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Apply filters notifications through a provider, preserving input order.
func Apply(provider Provider, notifs []domain.Notification, query string) []domain.Notification {
	if query == "" {
		return notifs
	}
	result := make([]domain.Notification, 0, len(notifs))
	for _, n := range notifs {
		if provider.Match(n, query) {
			result = append(result, n)
		}
	}
	return result
}
