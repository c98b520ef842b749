/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/liftops/liftray/internal/alert"
	"github.com/liftops/liftray/internal/domain"
	"github.com/liftops/liftray/internal/logging"
	"github.com/liftops/liftray/internal/session"
	"github.com/liftops/liftray/internal/toast"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Monitor notifications in real-time",
	Long: `Monitor notifications in real-time.

Polls the server on an interval, prints new notifications as they
arrive, and raises desktop alerts unless disabled.

USAGE:
    liftray watch [OPTIONS]

OPTIONS:
    --interval <secs>     Poll interval (default from config, 30s)
    --no-desktop-alerts   Do not raise desktop notifications
    -h, --help            Show this help`,
	RunE: runWatch,
}

var (
	watchInterval  int
	watchNoDesktop bool
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().IntVar(&watchInterval, "interval", 0, "Poll interval in seconds (default from config)")
	watchCmd.Flags().BoolVar(&watchNoDesktop, "no-desktop-alerts", false, "Do not raise desktop notifications")
}

func runWatch(cmd *cobra.Command, args []string) error {
	opts := session.Options{Logger: logging.GetGlobal()}
	if watchNoDesktop {
		opts.Platform = alert.NewNoopPlatform()
	} else {
		opts.Platform = alert.NewDesktopPlatform()
	}
	if watchInterval > 0 {
		opts.Interval = time.Duration(watchInterval) * time.Second
	}

	sess, err := session.New(opts)
	if err != nil {
		return err
	}
	defer sess.Close()

	sess.Store().OnAdmit(func(n domain.Notification) {
		toast.Notify(n)
	})

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	toast.Info("Watching notifications (Ctrl+C to stop)...")
	sess.Start(ctx)

	select {
	case <-ctx.Done():
	case sig := <-sigChan:
		fmt.Fprintf(cmd.OutOrStdout(), "\nReceived signal %v, stopping...\n", sig)
	}
	return nil
}
