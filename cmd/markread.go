/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/liftops/liftray/internal/toast"
)

// markReadCmd represents the mark-read command
var markReadCmd = &cobra.Command{
	Use:   "mark-read ID",
	Short: "Mark a notification as read",
	Long:  `Mark a specific notification as read by ID.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, err := newTransport()
		if err != nil {
			return err
		}
		id := args[0]
		if err := transport.MarkRead(cmd.Context(), id); err != nil {
			toast.Error("mark-read failed:", err.Error())
			return err
		}
		toast.Success("Notification", id, "marked read")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(markReadCmd)
}
