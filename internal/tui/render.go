package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/liftops/liftray/internal/domain"
	"github.com/liftops/liftray/internal/toast"
)

// chromeHeight is the number of lines taken by the header and footer.
const chromeHeight = 4

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	unreadStyle   = lipgloss.NewStyle().Bold(true)
	readStyle     = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	searchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	toastStyles   = map[toast.Level]lipgloss.Style{
		toast.LevelSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		toast.LevelError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		toast.LevelWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		toast.LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
)

// View renders the inbox.
func (m *Model) View() string {
	if !m.ready {
		return "Loading inbox..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	m.viewport.SetContent(m.renderBody())
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model) renderHeader() string {
	title := fmt.Sprintf("Inbox (%d unread)", m.snapshot.UnreadCount)
	if m.snapshot.Loading {
		title += " (refreshing)"
	}

	var parts []string
	parts = append(parts, headerStyle.Render(title))
	if t := typeCycle[m.typeIndex]; t != "" {
		parts = append(parts, "type:"+t.Label())
	}
	if m.readFilter != domain.ReadFilterAll {
		parts = append(parts, "show:"+m.readFilter)
	}
	if m.searchMode {
		parts = append(parts, searchStyle.Render("/"+m.searchQuery+"▌"))
	} else if m.searchQuery != "" {
		parts = append(parts, searchStyle.Render("/"+m.searchQuery))
	}
	return strings.Join(parts, "  ")
}

func (m *Model) renderBody() string {
	visible := m.visible()
	if len(visible) == 0 {
		return readStyle.Render("Nothing to show")
	}

	now := m.clock()
	lines := make([]string, 0, len(visible))
	for i := range visible {
		line := m.renderRow(visible[i], now)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(n domain.Notification, now time.Time) string {
	marker := "●"
	style := unreadStyle
	if n.IsRead {
		marker = "○"
		style = readStyle
	}

	title := n.Title
	if title == "" {
		title = n.Message
	}
	row := fmt.Sprintf("%s %-12s %-14s %s", marker, n.Type.Label(), domain.RelativeLabel(n.CreatedAt, now), title)
	if m.width > 0 {
		// Truncate by runes, not bytes: the markers are multi-byte.
		if runes := []rune(row); len(runes) > m.width {
			row = string(runes[:m.width])
		}
	}
	return style.Render(row)
}

func (m *Model) renderFooter() string {
	var b strings.Builder
	if m.toasts != nil {
		for _, tst := range m.toasts.Active() {
			line := tst.Title
			if tst.Body != "" {
				line += ": " + tst.Body
			}
			b.WriteString(toastStyles[tst.Level].Render(line))
			b.WriteString("\n")
		}
	}
	b.WriteString(helpStyle.Render("j/k move  / search  u unread  t type  r read  R read all  d delete  f refresh  q quit"))
	return b.String()
}
