/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/liftops/liftray/internal/config"
	"github.com/liftops/liftray/internal/logging"
	"github.com/liftops/liftray/internal/toast"
	"github.com/liftops/liftray/internal/version"
)

var (
	flagDebug bool
	flagQuiet bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "liftray",
	Short: "Terminal inbox for LiftDesk maintenance notifications.",
	Long: `Terminal inbox for LiftDesk maintenance notifications.

Keeps the full list, the unread view, and the unread counter in sync
with the dashboard server, and can watch for new notifications with
desktop alerts.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		if flagDebug {
			config.Set("debug", "true")
		}
		if flagQuiet {
			config.Set("quiet", "true")
		}
		toast.SetDebug(config.GetBool("debug", false))
		toast.SetQuiet(config.GetBool("quiet", false))
		if err := logging.InitGlobal(); err != nil {
			toast.Warning("logging disabled:", err.Error())
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.ShutdownGlobal()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = version.String()

	// Hide the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "Suppress non-error output")
}
