/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/liftops/liftray/internal/toast"
)

// markAllReadCmd represents the mark-all-read command
var markAllReadCmd = &cobra.Command{
	Use:   "mark-all-read",
	Short: "Mark all notifications as read",
	Long:  `Mark every notification as read and zero the unread counter.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, err := newTransport()
		if err != nil {
			return err
		}
		if err := transport.MarkAllRead(cmd.Context()); err != nil {
			toast.Error("mark-all-read failed:", err.Error())
			return err
		}
		toast.Success("All notifications marked read")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(markAllReadCmd)
}
