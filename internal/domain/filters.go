package domain

import "fmt"

// Read filter constants.
const (
	ReadFilterAll    = "all"
	ReadFilterRead   = "read"
	ReadFilterUnread = "unread"
)

// Filter holds filter criteria for notifications.
type Filter struct {
	Type       NotificationType // exact match; empty means all types
	ReadFilter string           // "read", "unread", "all" or ""
}

// IsEmpty returns true if the filter has no criteria set.
func (f Filter) IsEmpty() bool {
	return f.Type == "" && (f.ReadFilter == "" || f.ReadFilter == ReadFilterAll)
}

// Validate checks the filter values.
func (f Filter) Validate() error {
	if f.Type != "" && !f.Type.IsValid() {
		return fmt.Errorf("invalid notification type: %s", f.Type)
	}
	switch f.ReadFilter {
	case "", ReadFilterAll, ReadFilterRead, ReadFilterUnread:
		return nil
	default:
		return fmt.Errorf("invalid read filter: %s", f.ReadFilter)
	}
}

// Matches checks if the notification matches the filter criteria.
func (n *Notification) Matches(f Filter) bool {
	if f.Type != "" && n.Type != f.Type {
		return false
	}
	switch f.ReadFilter {
	case ReadFilterRead:
		return n.IsRead
	case ReadFilterUnread:
		return !n.IsRead
	}
	return true
}

// FilterNotifications returns the matching subsequence, preserving the
// order of the input. The input is never mutated.
func FilterNotifications(notifs []Notification, f Filter) []Notification {
	if f.IsEmpty() {
		return notifs
	}
	result := make([]Notification, 0, len(notifs))
	for _, n := range notifs {
		if n.Matches(f) {
			result = append(result, n)
		}
	}
	return result
}

// UnreadOf restricts a projection to unread notifications, preserving order.
func UnreadOf(notifs []Notification) []Notification {
	return FilterNotifications(notifs, Filter{ReadFilter: ReadFilterUnread})
}

// CountUnread counts unread notifications in a slice.
func CountUnread(notifs []Notification) int {
	count := 0
	for _, n := range notifs {
		if !n.IsRead {
			count++
		}
	}
	return count
}
