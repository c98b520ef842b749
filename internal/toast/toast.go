// Package toast provides the in-app transient message surface.
// Console commands print toasts directly; the TUI renders them from a
// Center. Output is mirrored into the structured logger when one is set.
package toast

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/liftops/liftray/internal/domain"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

// Logger defines the interface for structured logging.
// Declared here so the package stays free of import cycles.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	debugEnabled bool
	quietEnabled bool
	logger       Logger
	mu           sync.RWMutex
)

func init() {
	if val := os.Getenv("LIFTRAY_DEBUG"); val == "true" || val == "1" {
		debugEnabled = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = enabled
}

// SetQuiet suppresses non-error console output.
func SetQuiet(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	quietEnabled = enabled
}

// SetLogger sets the structured logger to mirror console output.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

func currentLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func quiet() bool {
	mu.RLock()
	defer mu.RUnlock()
	return quietEnabled
}

// Success prints a success toast to stdout.
func Success(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := currentLogger(); l != nil {
		l.Info(msg)
	}
	if quiet() {
		return
	}
	fmt.Fprintf(os.Stdout, "%s %s\n", successStyle.Render("✓"), msg)
}

// Error prints an error toast to stderr.
func Error(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := currentLogger(); l != nil {
		l.Error(msg)
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("Error:"), msg)
}

// Warning prints a warning toast to stderr.
func Warning(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := currentLogger(); l != nil {
		l.Warn(msg)
	}
	if quiet() {
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", warningStyle.Render("Warning:"), msg)
}

// Info prints an informational toast to stdout.
func Info(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := currentLogger(); l != nil {
		l.Info(msg)
	}
	if quiet() {
		return
	}
	fmt.Fprintln(os.Stdout, infoStyle.Render(msg))
}

// Notify prints an admitted notification to stdout in the watch-line
// format.
func Notify(n domain.Notification) {
	if l := currentLogger(); l != nil {
		l.Info("notification admitted", "id", n.ID, "type", n.Type.String())
	}
	if quiet() {
		return
	}
	title := n.Title
	if title == "" {
		title = n.Message
	}
	line := fmt.Sprintf("[%s] [%s] %s", n.CreatedAt.Format("2006-01-02 15:04:05"), n.Type.Label(), title)
	fmt.Fprintln(os.Stdout, infoStyle.Render(line))
	if n.Title != "" && n.Message != "" {
		fmt.Fprintf(os.Stdout, "  └─ %s\n", n.Message)
	}
}

// Debug prints a debug message to stderr when debug output is enabled.
func Debug(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := currentLogger(); l != nil {
		l.Debug(msg)
	}
	mu.RLock()
	enabled := debugEnabled
	mu.RUnlock()
	if !enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "debug: %s\n", msg)
}
