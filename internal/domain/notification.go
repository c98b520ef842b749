// Package domain provides the domain layer for notifications.
// It contains the notification entity, value objects, and pure projections.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// Notification represents a single event delivered to the signed-in user.
type Notification struct {
	ID          string
	Type        NotificationType
	Title       string
	Message     string
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
	RelatedType string
	RelatedID   string
	Data        map[string]any
}

// NotificationType represents the category of a notification.
type NotificationType string

const (
	TypeRequestCreated       NotificationType = "REQUEST_CREATED"
	TypeRequestAssigned      NotificationType = "REQUEST_ASSIGNED"
	TypeRequestStatusChanged NotificationType = "REQUEST_STATUS_CHANGED"
	TypeReportSubmitted      NotificationType = "REPORT_SUBMITTED"
	TypeContractExpiring     NotificationType = "CONTRACT_EXPIRING"
	TypeMaintenanceDue       NotificationType = "MAINTENANCE_DUE"
	TypeSystem               NotificationType = "SYSTEM_NOTIFICATION"
)

// IsValid checks if the notification type is a known value.
func (t NotificationType) IsValid() bool {
	switch t {
	case TypeRequestCreated, TypeRequestAssigned, TypeRequestStatusChanged,
		TypeReportSubmitted, TypeContractExpiring, TypeMaintenanceDue,
		TypeSystem:
		return true
	default:
		return false
	}
}

// String returns the string representation of the type.
func (t NotificationType) String() string {
	return string(t)
}

// Label returns a short human-readable label for the type.
func (t NotificationType) Label() string {
	switch t {
	case TypeRequestCreated:
		return "request"
	case TypeRequestAssigned:
		return "assigned"
	case TypeRequestStatusChanged:
		return "status"
	case TypeReportSubmitted:
		return "report"
	case TypeContractExpiring:
		return "contract"
	case TypeMaintenanceDue:
		return "maintenance"
	default:
		return "system"
	}
}

// knownTypes lists every valid type in display order.
var knownTypes = []NotificationType{
	TypeRequestCreated,
	TypeRequestAssigned,
	TypeRequestStatusChanged,
	TypeReportSubmitted,
	TypeContractExpiring,
	TypeMaintenanceDue,
	TypeSystem,
}

// TypeFromString resolves user input to a type. It accepts the wire
// value in any case ("MAINTENANCE_DUE", "maintenance_due") or the short
// label ("maintenance"). Unknown input returns false.
func TypeFromString(s string) (NotificationType, bool) {
	t := NotificationType(strings.ToUpper(s))
	if t.IsValid() {
		return t, true
	}
	label := strings.ToLower(s)
	for _, known := range knownTypes {
		if known.Label() == label {
			return known, true
		}
	}
	return "", false
}

// ParseNotificationType parses a string into a NotificationType.
// Unknown values degrade to TypeSystem so that feeds from newer server
// versions keep rendering instead of failing.
func ParseNotificationType(s string) NotificationType {
	t := NotificationType(s)
	if !t.IsValid() {
		return TypeSystem
	}
	return t
}

// MarkRead flips the notification to read and stamps ReadAt at the
// false-to-true transition. Marking an already-read notification is a no-op.
func (n *Notification) MarkRead(now time.Time) *Notification {
	if n.IsRead {
		return n
	}
	n.IsRead = true
	ts := now.UTC()
	n.ReadAt = &ts
	return n
}

// Validate validates the notification and returns an error if invalid.
func (n *Notification) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("notification ID cannot be empty")
	}
	if n.CreatedAt.IsZero() {
		return fmt.Errorf("notification created timestamp cannot be zero")
	}
	if n.IsRead && n.ReadAt == nil {
		return fmt.Errorf("read notification %s has no read timestamp", n.ID)
	}
	return nil
}

// Page describes the pagination cursor of the full-list view.
// The unread view and the counter are not paginated.
type Page struct {
	Total      int
	Page       int
	Limit      int
	TotalPages int
}
