/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/liftops/liftray/internal/alert"
	"github.com/liftops/liftray/internal/logging"
	"github.com/liftops/liftray/internal/session"
	"github.com/liftops/liftray/internal/tui"
)

// inboxCmd represents the inbox command
var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "Open the interactive inbox",
	Long: `Open the interactive inbox.

A full-screen view over the synchronized notification caches with
search, filtering, and read/delete actions.`,
	RunE: runInbox,
}

var inboxInterval int

func init() {
	rootCmd.AddCommand(inboxCmd)

	inboxCmd.Flags().IntVar(&inboxInterval, "interval", 0, "Poll interval in seconds (default from config)")
}

func runInbox(cmd *cobra.Command, args []string) error {
	opts := session.Options{
		Logger: logging.GetGlobal(),
		// The inbox renders arrivals itself, so no desktop alerts here.
		Platform: alert.NewNoopPlatform(),
	}
	if inboxInterval > 0 {
		opts.Interval = time.Duration(inboxInterval) * time.Second
	}

	sess, err := session.New(opts)
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	sess.Start(ctx)

	model := tui.NewModel(sess.Store(), sess.Toasts())
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
