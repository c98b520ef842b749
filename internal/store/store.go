// Package store owns the in-memory notification caches for one session:
// the paginated full list, the unread-only list, and the unread counter.
// All mutations go through the store so the three views stay consistent.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/liftops/liftray/internal/api"
	"github.com/liftops/liftray/internal/domain"
	"github.com/liftops/liftray/internal/logging"
)

// AdmitListener is invoked for every notification newly admitted into the
// store, either injected directly or discovered by a poll.
type AdmitListener func(domain.Notification)

// Snapshot is a consistent read of the store's caches for consumers.
type Snapshot struct {
	FullList    []domain.Notification
	UnreadList  []domain.Notification
	UnreadCount int
	Page        domain.Page
	Loading     bool
	Err         string
}

// Store keeps the notification feed synchronized against the transport.
// Every in-memory mutation is atomic under the store mutex; transport
// confirmations happen outside the lock and never roll back the
// optimistic step.
type Store struct {
	transport api.Transport
	logger    logging.Logger
	clock     func() time.Time

	mu          sync.Mutex
	fullList    []domain.Notification
	unreadList  []domain.Notification
	unreadCount int
	page        domain.Page
	loading     bool
	lastError   string
	closed      bool
	seen        map[string]bool
	listeners   []AdmitListener
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the structured logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// WithClock sets the time source used for read timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// New creates a store bound to a transport. One store is constructed per
// session and closed at logout.
func New(transport api.Transport, opts ...Option) *Store {
	if transport == nil {
		panic("store.New: transport dependency cannot be nil")
	}
	s := &Store{
		transport: transport,
		logger:    logging.Noop(),
		clock:     time.Now,
		seen:      make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnAdmit registers a listener for newly admitted notifications.
// Listeners run outside the store lock.
func (s *Store) OnAdmit(fn AdmitListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Close tears the store down. Later admits and fetch results become safe
// no-ops; outstanding transport calls may still resolve afterwards.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Snapshot returns a copy of the current caches, cursor, and flags.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	full := make([]domain.Notification, len(s.fullList))
	copy(full, s.fullList)
	unread := make([]domain.Notification, len(s.unreadList))
	copy(unread, s.unreadList)

	return Snapshot{
		FullList:    full,
		UnreadList:  unread,
		UnreadCount: s.unreadCount,
		Page:        s.page,
		Loading:     s.loading,
		Err:         s.lastError,
	}
}

// FetchOptions selects the page and filters for FetchList.
type FetchOptions struct {
	Page  int
	Limit int
	Read  string
	Type  domain.NotificationType
}

// FetchList replaces the full list and pagination cursor with the server's
// page for the given filters. Overlapping calls are not coalesced; the
// last call to resolve wins. On failure the prior list stays available and
// the error is recorded for consumers.
func (s *Store) FetchList(ctx context.Context, opts FetchOptions) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	s.mu.Unlock()

	result, err := s.transport.List(ctx, api.ListOptions{
		Page:  opts.Page,
		Limit: opts.Limit,
		Read:  opts.Read,
		Type:  opts.Type,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if s.closed {
		return nil
	}
	if err != nil {
		s.lastError = err.Error()
		s.logger.Error("list fetch failed", "error", err)
		return fmt.Errorf("fetch list: %w", err)
	}

	s.fullList = result.Items
	s.page = result.Page
	s.lastError = ""
	for _, n := range result.Items {
		s.seen[n.ID] = true
	}
	return nil
}

// FetchUnread replaces the unread list wholesale and resolves the unread
// counter from the same response, falling back to the count endpoint when
// the response omits it. It never returns an error: on failure the prior
// state stays and the failure is logged, so a polling loop can call it
// unconditionally. Items not seen before are announced to admit listeners.
func (s *Store) FetchUnread(ctx context.Context) {
	result, err := s.transport.UnreadList(ctx)
	if err != nil {
		s.mu.Lock()
		if !s.closed {
			s.lastError = err.Error()
		}
		s.mu.Unlock()
		s.logger.Error("unread fetch failed", "error", err)
		return
	}

	count := result.Count
	if count < 0 {
		count, err = s.transport.UnreadCount(ctx)
		if err != nil {
			s.logger.Warn("unread count fetch failed, deriving from list", "error", err)
			count = len(result.Items)
		}
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	var fresh []domain.Notification
	for _, n := range result.Items {
		if !s.seen[n.ID] {
			fresh = append(fresh, n)
			s.seen[n.ID] = true
		}
	}
	s.unreadList = result.Items
	s.unreadCount = count
	s.lastError = ""
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	for _, n := range fresh {
		notify(listeners, n)
	}
}

// MarkRead optimistically marks one notification read in every cache,
// then confirms against the transport. The optimistic mutation is kept
// even when the confirmation fails; the next poll reconciles.
// Marking an already-read id is a no-op for the counter.
func (s *Store) MarkRead(ctx context.Context, id string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	transitioned := false
	for i := range s.fullList {
		if s.fullList[i].ID == id {
			if !s.fullList[i].IsRead {
				s.fullList[i].MarkRead(s.clock())
				transitioned = true
			}
			break
		}
	}
	if removed := s.removeUnread(id); removed {
		transitioned = true
	}
	if transitioned {
		s.decrementUnread(1)
	}
	s.mu.Unlock()

	if err := s.transport.MarkRead(ctx, id); err != nil {
		s.logger.Error("mark read confirmation failed", "id", id, "error", err)
		return fmt.Errorf("mark read %s: %w", id, err)
	}
	return nil
}

// MarkAllRead optimistically marks everything read, empties the unread
// list, and zeroes the counter, then confirms against the transport.
func (s *Store) MarkAllRead(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	now := s.clock()
	for i := range s.fullList {
		s.fullList[i].MarkRead(now)
	}
	s.unreadList = nil
	s.unreadCount = 0
	s.mu.Unlock()

	if err := s.transport.MarkAllRead(ctx); err != nil {
		s.logger.Error("mark all read confirmation failed", "error", err)
		return fmt.Errorf("mark all read: %w", err)
	}
	return nil
}

// Delete optimistically removes a notification from both caches, then
// confirms against the transport. An unknown id is a safe no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	found := false
	wasUnread := false
	for i := range s.fullList {
		if s.fullList[i].ID == id {
			found = true
			wasUnread = !s.fullList[i].IsRead
			s.fullList = append(s.fullList[:i], s.fullList[i+1:]...)
			break
		}
	}
	if s.removeUnread(id) {
		found = true
		wasUnread = true
	}
	if wasUnread {
		s.decrementUnread(1)
	}
	s.mu.Unlock()

	if !found {
		return nil
	}
	if err := s.transport.Delete(ctx, id); err != nil {
		s.logger.Error("delete confirmation failed", "id", id, "error", err)
		return fmt.Errorf("delete %s: %w", id, err)
	}
	return nil
}

// Admit inserts a notification arriving from any source (poll discovery or
// a push channel) at the head of the caches and announces it to listeners.
// A duplicate id refreshes the cached copy instead of stacking a second
// entry. Admitting into a closed store is a safe no-op.
func (s *Store) Admit(n domain.Notification) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	duplicate := false
	for i := range s.fullList {
		if s.fullList[i].ID == n.ID {
			s.fullList[i] = n
			duplicate = true
			break
		}
	}
	if !duplicate {
		s.fullList = append([]domain.Notification{n}, s.fullList...)
	}

	if n.IsRead {
		// A read copy of an id cached unread (read elsewhere, delivered
		// via push) must leave the unread view entirely.
		if s.removeUnread(n.ID) {
			s.decrementUnread(1)
		}
	} else {
		inUnread := false
		for i := range s.unreadList {
			if s.unreadList[i].ID == n.ID {
				s.unreadList[i] = n
				inUnread = true
				break
			}
		}
		if !inUnread {
			s.unreadList = append([]domain.Notification{n}, s.unreadList...)
			s.unreadCount++
		}
	}

	s.seen[n.ID] = true
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	notify(listeners, n)
}

// removeUnread removes an id from the unread list. Caller holds the lock.
func (s *Store) removeUnread(id string) bool {
	for i := range s.unreadList {
		if s.unreadList[i].ID == id {
			s.unreadList = append(s.unreadList[:i], s.unreadList[i+1:]...)
			return true
		}
	}
	return false
}

// decrementUnread lowers the counter, floored at zero. Caller holds the lock.
func (s *Store) decrementUnread(by int) {
	s.unreadCount -= by
	if s.unreadCount < 0 {
		s.unreadCount = 0
	}
}

// snapshotListeners copies the listener slice. Caller holds the lock.
func (s *Store) snapshotListeners() []AdmitListener {
	listeners := make([]AdmitListener, len(s.listeners))
	copy(listeners, s.listeners)
	return listeners
}

func notify(listeners []AdmitListener, n domain.Notification) {
	for _, fn := range listeners {
		fn(n)
	}
}
