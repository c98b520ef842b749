package tui

import (
	"context"
	"errors"
	"testing"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftops/liftray/internal/domain"
	"github.com/liftops/liftray/internal/store"
	"github.com/liftops/liftray/internal/toast"
)

type fakeClient struct {
	snapshot store.Snapshot

	markedRead  []string
	markAllErr  error
	markReadErr error
	deleted     []string
	fetched     int
	lastFetch   store.FetchOptions
}

func (f *fakeClient) Snapshot() store.Snapshot { return f.snapshot }

func (f *fakeClient) FetchList(_ context.Context, opts store.FetchOptions) error {
	f.fetched++
	f.lastFetch = opts
	return nil
}

func (f *fakeClient) FetchUnread(_ context.Context) {}

func (f *fakeClient) MarkRead(_ context.Context, id string) error {
	f.markedRead = append(f.markedRead, id)
	return f.markReadErr
}

func (f *fakeClient) MarkAllRead(_ context.Context) error { return f.markAllErr }

func (f *fakeClient) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func inboxFixture() store.Snapshot {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	read := base.Add(-time.Hour)
	return store.Snapshot{
		FullList: []domain.Notification{
			{ID: "n3", Type: domain.TypeRequestCreated, Title: "Stuck cabin", Message: "Elevator A-12", CreatedAt: base},
			{ID: "n2", Type: domain.TypeMaintenanceDue, Title: "Inspection due", Message: "Tower B", CreatedAt: base.Add(-time.Hour)},
			{ID: "n1", Type: domain.TypeContractExpiring, Title: "Contract expiring", Message: "ACME", CreatedAt: base.Add(-2 * time.Hour), IsRead: true, ReadAt: &read},
		},
		UnreadCount: 2,
		Page:        domain.Page{Total: 3, Page: 1, Limit: 20, TotalPages: 1},
	}
}

func newTestModel(t *testing.T, client *fakeClient) *Model {
	t.Helper()
	m := NewModel(client, toast.NewCenter())
	m.clock = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func keyPress(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return cmd
}

func TestModelNavigation(t *testing.T) {
	client := &fakeClient{snapshot: inboxFixture()}
	m := newTestModel(t, client)

	assert.Equal(t, 0, m.cursor)
	keyPress(m, "j")
	keyPress(m, "j")
	assert.Equal(t, 2, m.cursor)

	keyPress(m, "j")
	assert.Equal(t, 2, m.cursor, "cursor clamps at last row")

	keyPress(m, "k")
	assert.Equal(t, 1, m.cursor)

	keyPress(m, "g")
	assert.Equal(t, 0, m.cursor)

	keyPress(m, "G")
	assert.Equal(t, 2, m.cursor)
}

func TestModelReadFilterToggle(t *testing.T) {
	client := &fakeClient{snapshot: inboxFixture()}
	m := newTestModel(t, client)

	keyPress(m, "u")
	visible := m.visible()
	require.Len(t, visible, 2)
	for _, n := range visible {
		assert.False(t, n.IsRead)
	}

	keyPress(m, "u")
	visible = m.visible()
	require.Len(t, visible, 1)
	assert.True(t, visible[0].IsRead)

	keyPress(m, "u")
	assert.Len(t, m.visible(), 3)
}

func TestModelTypeCycle(t *testing.T) {
	client := &fakeClient{snapshot: inboxFixture()}
	m := newTestModel(t, client)

	keyPress(m, "t")
	visible := m.visible()
	require.Len(t, visible, 1)
	assert.Equal(t, domain.TypeRequestCreated, visible[0].Type)
}

func TestModelSearch(t *testing.T) {
	client := &fakeClient{snapshot: inboxFixture()}
	m := newTestModel(t, client)

	keyPress(m, "/")
	assert.True(t, m.searchMode)

	keyPress(m, "contract")
	visible := m.visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "n1", visible[0].ID)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.searchMode)
	assert.Equal(t, "contract", m.searchQuery)

	keyPress(m, "/")
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.searchQuery)
	assert.Len(t, m.visible(), 3)
}

func TestModelMarkRead(t *testing.T) {
	client := &fakeClient{snapshot: inboxFixture()}
	m := newTestModel(t, client)

	cmd := keyPress(m, "r")
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, []string{"n3"}, client.markedRead)

	m.Update(msg)
	toasts := m.toasts.Active()
	require.Len(t, toasts, 1)
	assert.Equal(t, toast.LevelSuccess, toasts[0].Level)
}

func TestModelMarkReadSkipsReadRow(t *testing.T) {
	client := &fakeClient{snapshot: inboxFixture()}
	m := newTestModel(t, client)

	keyPress(m, "G")
	cmd := keyPress(m, "r")
	assert.Nil(t, cmd)
	assert.Empty(t, client.markedRead)
}

func TestModelMutationFailureToast(t *testing.T) {
	client := &fakeClient{snapshot: inboxFixture(), markReadErr: errors.New("boom")}
	m := newTestModel(t, client)

	cmd := keyPress(m, "r")
	require.NotNil(t, cmd)
	m.Update(cmd())

	toasts := m.toasts.Active()
	require.Len(t, toasts, 1)
	assert.Equal(t, toast.LevelError, toasts[0].Level)
	assert.Contains(t, toasts[0].Body, "boom")
}

func TestModelDelete(t *testing.T) {
	client := &fakeClient{snapshot: inboxFixture()}
	m := newTestModel(t, client)

	keyPress(m, "j")
	cmd := keyPress(m, "d")
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, []string{"n2"}, client.deleted)
}

func TestModelForceRefresh(t *testing.T) {
	client := &fakeClient{snapshot: inboxFixture()}
	m := newTestModel(t, client)

	cmd := keyPress(m, "f")
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, 1, client.fetched)
}

func TestModelForceRefreshUsesLimitFromKeypress(t *testing.T) {
	client := &fakeClient{snapshot: inboxFixture()}
	m := newTestModel(t, client)

	cmd := keyPress(m, "f")
	require.NotNil(t, cmd)

	// The snapshot moves on before the command runs; the fetch must
	// keep the limit read at keypress time.
	client.snapshot.Page.Limit = 99
	m.Update(tickMsg(m.clock()))

	cmd()
	assert.Equal(t, 20, client.lastFetch.Limit)
}

func TestModelQuit(t *testing.T) {
	client := &fakeClient{snapshot: inboxFixture()}
	m := newTestModel(t, client)

	cmd := keyPress(m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRenderRowNarrowWidthKeepsRunesIntact(t *testing.T) {
	client := &fakeClient{snapshot: inboxFixture()}
	m := newTestModel(t, client)
	m.Update(tea.WindowSizeMsg{Width: 2, Height: 10})

	row := m.renderRow(m.snapshot.FullList[0], m.clock())
	assert.True(t, utf8.ValidString(row))
	assert.Contains(t, row, "●")
}

func TestViewRendersRows(t *testing.T) {
	client := &fakeClient{snapshot: inboxFixture()}
	m := newTestModel(t, client)

	out := m.View()
	assert.Contains(t, out, "2 unread")
	assert.Contains(t, out, "Stuck cabin")
	assert.Contains(t, out, "Contract expiring")
	assert.Contains(t, out, "q quit")
}
