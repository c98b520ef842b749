// Package api provides the client for the LiftDesk dashboard notification
// endpoints. The Transport interface is the contract the rest of the
// application depends on; the HTTP client is one implementation.
package api

import (
	"context"

	"github.com/liftops/liftray/internal/domain"
)

// ListOptions holds query parameters for the paginated full-list endpoint.
type ListOptions struct {
	Page  int
	Limit int
	// Read filters by read state when non-empty ("read" or "unread").
	Read string
	// Type filters by notification type when non-empty.
	Type domain.NotificationType
}

// ListResult is the server's page of the full notification list.
type ListResult struct {
	Items []domain.Notification
	Page  domain.Page
}

// UnreadResult is the server's unread-only view. Count is negative when
// the endpoint omits it and the caller should fall back to UnreadCount.
type UnreadResult struct {
	Items []domain.Notification
	Count int
}

// Transport defines the remote notification operations the store needs.
type Transport interface {
	// List fetches one page of the full notification list.
	List(ctx context.Context, opts ListOptions) (ListResult, error)
	// UnreadList fetches the unread-only view.
	UnreadList(ctx context.Context) (UnreadResult, error)
	// UnreadCount fetches the unread counter.
	UnreadCount(ctx context.Context) (int, error)
	// MarkRead confirms a single notification as read.
	MarkRead(ctx context.Context, id string) error
	// MarkAllRead confirms every notification as read.
	MarkAllRead(ctx context.Context) error
	// Delete removes a notification.
	Delete(ctx context.Context, id string) error
}
