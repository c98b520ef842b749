package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/liftops/liftray/internal/api"
	"github.com/liftops/liftray/internal/toast"
)

// recordingToastLogger captures the toast surface's logger mirror so
// tests can observe console toasts without scraping stdout.
type recordingToastLogger struct {
	infos  []string
	errors []string
}

func (l *recordingToastLogger) Debug(msg string, args ...any) {}
func (l *recordingToastLogger) Info(msg string, args ...any)  { l.infos = append(l.infos, msg) }
func (l *recordingToastLogger) Warn(msg string, args ...any)  {}
func (l *recordingToastLogger) Error(msg string, args ...any) { l.errors = append(l.errors, msg) }

func withToastRecorder(t *testing.T) *recordingToastLogger {
	t.Helper()
	rec := &recordingToastLogger{}
	toast.SetLogger(rec)
	toast.SetQuiet(true)
	t.Cleanup(func() {
		toast.SetLogger(nil)
		toast.SetQuiet(false)
	})
	return rec
}

func TestMarkReadCmd(t *testing.T) {
	t.Run("success raises a toast", func(t *testing.T) {
		transport := new(api.MockTransport)
		transport.On("MarkRead", mock.Anything, "n1").Return(nil)
		withMockTransport(t, transport)
		rec := withToastRecorder(t)

		cmd, _ := newTestCmd()
		require.NoError(t, markReadCmd.RunE(cmd, []string{"n1"}))

		require.Len(t, rec.infos, 1)
		assert.Equal(t, "Notification n1 marked read", rec.infos[0])
	})

	t.Run("failure raises an error toast and returns the error", func(t *testing.T) {
		transport := new(api.MockTransport)
		transport.On("MarkRead", mock.Anything, "n1").Return(errors.New("boom"))
		withMockTransport(t, transport)
		rec := withToastRecorder(t)

		cmd, _ := newTestCmd()
		err := markReadCmd.RunE(cmd, []string{"n1"})
		require.Error(t, err)
		require.Len(t, rec.errors, 1)
		assert.Contains(t, rec.errors[0], "boom")
	})
}

func TestMarkAllReadCmd(t *testing.T) {
	transport := new(api.MockTransport)
	transport.On("MarkAllRead", mock.Anything).Return(nil)
	withMockTransport(t, transport)
	rec := withToastRecorder(t)

	cmd, _ := newTestCmd()
	require.NoError(t, markAllReadCmd.RunE(cmd, nil))

	require.Len(t, rec.infos, 1)
	assert.Equal(t, "All notifications marked read", rec.infos[0])
}

func TestDeleteCmd(t *testing.T) {
	transport := new(api.MockTransport)
	transport.On("Delete", mock.Anything, "n2").Return(nil)
	withMockTransport(t, transport)
	rec := withToastRecorder(t)

	cmd, _ := newTestCmd()
	require.NoError(t, deleteCmd.RunE(cmd, []string{"n2"}))

	require.Len(t, rec.infos, 1)
	assert.Equal(t, "Notification n2 deleted", rec.infos[0])
}
