package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftops/liftray/internal/domain"
)

func tableFixture() []domain.Notification {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	read := base.Add(-time.Hour)
	return []domain.Notification{
		{ID: "n2", Type: domain.TypeRequestCreated, Title: "New request", Message: "Elevator A-12 stuck", CreatedAt: base.Add(-30 * time.Minute)},
		{ID: "n1", Type: domain.TypeContractExpiring, Title: "Contract expiring", Message: "ACME Towers", CreatedAt: base.Add(-2 * time.Hour), IsRead: true, ReadAt: &read},
	}
}

func TestWriteTable(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("renders rows newest first as given", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteTable(&buf, tableFixture(), now))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "TYPE")
		assert.Contains(t, lines[1], "n2")
		assert.Contains(t, lines[1], "●")
		assert.Contains(t, lines[1], "30 minutes ago")
		assert.Contains(t, lines[2], "○")
		assert.Contains(t, lines[2], "contract")
	})

	t.Run("empty list", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteTable(&buf, nil, now))
		assert.Equal(t, "No notifications\n", buf.String())
	})
}

func TestWritePageFooter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePageFooter(&buf, domain.Page{Total: 45, Page: 2, Limit: 20, TotalPages: 3}))
	assert.Equal(t, "Page 2 of 3 (45 total)\n", buf.String())

	buf.Reset()
	require.NoError(t, WritePageFooter(&buf, domain.Page{Total: 5, Page: 1, Limit: 20, TotalPages: 1}))
	assert.Empty(t, buf.String())
}

func TestFormatSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatSummary(&buf, 0))
	assert.Equal(t, "No unread notifications\n", buf.String())

	buf.Reset()
	require.NoError(t, FormatSummary(&buf, 3))
	assert.Equal(t, "Unread notifications: 3\n", buf.String())
}

func TestFormatCounts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatCounts(&buf, tableFixture()))
	assert.Equal(t, "request:1\ncontract:1\n", buf.String())
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(&buf, 1, 2, tableFixture()))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.EqualValues(t, 1, payload["unread"])
	assert.EqualValues(t, 2, payload["total"])
}

func TestWriteJSONList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONList(&buf, tableFixture()))

	var items []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "n2", items[0]["id"])
	assert.Equal(t, "REQUEST_CREATED", items[0]["type"])
	assert.NotContains(t, items[0], "readAt")
	assert.Equal(t, true, items[1]["isRead"])
	assert.Contains(t, items[1], "readAt")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "multi line", truncate("multi\nline", 20))
}
