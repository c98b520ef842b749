package format

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/liftops/liftray/internal/domain"
)

// CountsByType tallies notifications per type label.
func CountsByType(notifs []domain.Notification) map[string]int {
	counts := make(map[string]int)
	for i := range notifs {
		counts[notifs[i].Type.Label()]++
	}
	return counts
}

// FormatSummary writes a badge-style summary of the unread counter.
// If unread is 0, writes "No unread notifications".
func FormatSummary(w io.Writer, unread int) error {
	if unread == 0 {
		_, err := fmt.Fprintln(w, "No unread notifications")
		return err
	}
	_, err := fmt.Fprintf(w, "Unread notifications: %d\n", unread)
	return err
}

// FormatCounts writes per-type counts in key:value format, one per line.
// Types with zero notifications are omitted.
func FormatCounts(w io.Writer, notifs []domain.Notification) error {
	counts := CountsByType(notifs)
	for _, label := range []string{"request", "assigned", "status", "report", "contract", "maintenance", "system"} {
		if counts[label] == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s:%d\n", label, counts[label]); err != nil {
			return err
		}
	}
	return nil
}

// listItem is the JSON shape for one notification, matching the server's
// field naming so scripted consumers see one vocabulary.
type listItem struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	IsRead    bool    `json:"isRead"`
	ReadAt    *string `json:"readAt,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// WriteJSONList writes notifications as a JSON array.
func WriteJSONList(w io.Writer, notifs []domain.Notification) error {
	items := make([]listItem, 0, len(notifs))
	for i := range notifs {
		n := &notifs[i]
		item := listItem{
			ID:        n.ID,
			Type:      n.Type.String(),
			Title:     n.Title,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		}
		if n.ReadAt != nil {
			readAt := n.ReadAt.Format(time.RFC3339)
			item.ReadAt = &readAt
		}
		items = append(items, item)
	}
	enc := json.NewEncoder(w)
	return enc.Encode(items)
}

// statusPayload is the JSON shape for status-bar integrations.
type statusPayload struct {
	Unread int            `json:"unread"`
	Total  int            `json:"total"`
	ByType map[string]int `json:"byType"`
}

// FormatJSON writes the badge state as a single JSON object.
func FormatJSON(w io.Writer, unread, total int, notifs []domain.Notification) error {
	payload := statusPayload{
		Unread: unread,
		Total:  total,
		ByType: CountsByType(notifs),
	}
	enc := json.NewEncoder(w)
	return enc.Encode(payload)
}
