// Package format provides output formatting for CLI commands.
package format

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/liftops/liftray/internal/domain"
)

const messageWidth = 60

// WriteTable renders notifications as an aligned table, newest first as
// given. The read marker mirrors the unread badge: ● unread, ○ read.
func WriteTable(w io.Writer, notifs []domain.Notification, now time.Time) error {
	if len(notifs) == 0 {
		_, err := fmt.Fprintln(w, "No notifications")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\t \tTYPE\tAGE\tTITLE\tMESSAGE")
	for i := range notifs {
		n := &notifs[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			n.ID,
			readMarker(n),
			n.Type.Label(),
			domain.RelativeLabel(n.CreatedAt, now),
			truncate(n.Title, messageWidth),
			truncate(n.Message, messageWidth),
		)
	}
	return tw.Flush()
}

// WritePageFooter renders the pagination cursor below a table.
func WritePageFooter(w io.Writer, page domain.Page) error {
	if page.TotalPages <= 1 {
		return nil
	}
	_, err := fmt.Fprintf(w, "Page %d of %d (%d total)\n", page.Page, page.TotalPages, page.Total)
	return err
}

func readMarker(n *domain.Notification) string {
	if n.IsRead {
		return "○"
	}
	return "●"
}

func truncate(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
