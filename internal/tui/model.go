// Package tui provides the interactive inbox over the notification store.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/liftops/liftray/internal/domain"
	"github.com/liftops/liftray/internal/search"
	"github.com/liftops/liftray/internal/store"
	"github.com/liftops/liftray/internal/toast"
)

// refreshEvery is how often the view re-reads the store snapshot, so
// poll-driven changes and relative ages stay current.
const refreshEvery = 5 * time.Second

// StoreClient defines the store surface the inbox consumes.
type StoreClient interface {
	Snapshot() store.Snapshot
	FetchList(ctx context.Context, opts store.FetchOptions) error
	FetchUnread(ctx context.Context)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

// tickMsg re-reads the snapshot.
type tickMsg time.Time

// opDoneMsg reports a completed mutation.
type opDoneMsg struct {
	action string
	err    error
}

// typeCycle is the order the type filter steps through.
var typeCycle = []domain.NotificationType{
	"",
	domain.TypeRequestCreated,
	domain.TypeRequestAssigned,
	domain.TypeRequestStatusChanged,
	domain.TypeReportSubmitted,
	domain.TypeContractExpiring,
	domain.TypeMaintenanceDue,
	domain.TypeSystem,
}

// Model is the Bubble Tea model for the inbox.
type Model struct {
	client   StoreClient
	toasts   *toast.Center
	searcher search.Provider
	clock    func() time.Time

	snapshot store.Snapshot
	viewport viewport.Model
	cursor   int
	width    int
	height   int
	ready    bool

	searchMode  bool
	searchQuery string
	readFilter  string
	typeIndex   int
}

// NewModel creates an inbox model over a store client.
func NewModel(client StoreClient, toasts *toast.Center) *Model {
	return &Model{
		client:     client,
		toasts:     toasts,
		searcher:   search.NewSubstringProvider(),
		clock:      time.Now,
		readFilter: domain.ReadFilterAll,
	}
}

// Init schedules the first snapshot refresh.
func (m *Model) Init() tea.Cmd {
	m.snapshot = m.client.Snapshot()
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		bodyHeight := msg.Height - chromeHeight
		if bodyHeight < 1 {
			bodyHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, bodyHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = bodyHeight
		}
		return m, nil

	case tickMsg:
		m.snapshot = m.client.Snapshot()
		m.clampCursor()
		return m, tickCmd()

	case opDoneMsg:
		m.snapshot = m.client.Snapshot()
		m.clampCursor()
		if msg.err != nil {
			m.toasts.Push(toast.LevelError, msg.action+" failed", msg.err.Error())
		} else {
			m.toasts.Push(toast.LevelSuccess, msg.action, "")
		}
		return m, nil

	case tea.KeyMsg:
		if m.searchMode {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchMode = false
		m.searchQuery = ""
	case tea.KeyEnter:
		m.searchMode = false
	case tea.KeyBackspace:
		if len(m.searchQuery) > 0 {
			runes := []rune(m.searchQuery)
			m.searchQuery = string(runes[:len(runes)-1])
		}
	case tea.KeyRunes:
		m.searchQuery += string(msg.Runes)
	}
	m.clampCursor()
	return m, nil
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g":
		m.cursor = 0
	case "G":
		m.cursor = len(m.visible()) - 1
		m.clampCursor()
	case "/":
		m.searchMode = true
		m.searchQuery = ""
	case "u":
		m.toggleReadFilter()
	case "t":
		m.typeIndex = (m.typeIndex + 1) % len(typeCycle)
		m.clampCursor()
	case "f":
		return m, m.refreshCmd()
	case "r":
		if n, ok := m.selected(); ok && !n.IsRead {
			return m, m.markReadCmd(n.ID)
		}
	case "R":
		return m, m.markAllReadCmd()
	case "d":
		if n, ok := m.selected(); ok {
			return m, m.deleteCmd(n.ID)
		}
	}
	return m, nil
}

func (m *Model) toggleReadFilter() {
	switch m.readFilter {
	case domain.ReadFilterAll:
		m.readFilter = domain.ReadFilterUnread
	case domain.ReadFilterUnread:
		m.readFilter = domain.ReadFilterRead
	default:
		m.readFilter = domain.ReadFilterAll
	}
	m.clampCursor()
}

// visible computes the filtered, searched projection of the full list,
// preserving the store's order.
func (m *Model) visible() []domain.Notification {
	filtered := domain.FilterNotifications(m.snapshot.FullList, domain.Filter{
		Type:       typeCycle[m.typeIndex],
		ReadFilter: m.readFilter,
	})
	return search.Apply(m.searcher, filtered, m.searchQuery)
}

func (m *Model) selected() (domain.Notification, bool) {
	visible := m.visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return domain.Notification{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	max := len(m.visible()) - 1
	if m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) refreshCmd() tea.Cmd {
	// Read the limit on the UI goroutine; the closure runs elsewhere
	// while Update may be rewriting the snapshot.
	limit := m.snapshot.Page.Limit
	return func() tea.Msg {
		ctx := context.Background()
		_ = m.client.FetchList(ctx, store.FetchOptions{Page: 1, Limit: limit})
		m.client.FetchUnread(ctx)
		return tickMsg(m.clock())
	}
}

func (m *Model) markReadCmd(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.client.MarkRead(context.Background(), id)
		return opDoneMsg{action: "Marked read", err: err}
	}
}

func (m *Model) markAllReadCmd() tea.Cmd {
	return func() tea.Msg {
		err := m.client.MarkAllRead(context.Background())
		return opDoneMsg{action: "Marked all read", err: err}
	}
}

func (m *Model) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.client.Delete(context.Background(), id)
		return opDoneMsg{action: "Deleted", err: err}
	}
}
