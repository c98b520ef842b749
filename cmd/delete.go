/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/liftops/liftray/internal/toast"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a notification",
	Long:  `Delete a specific notification by ID.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, err := newTransport()
		if err != nil {
			return err
		}
		id := args[0]
		if err := transport.Delete(cmd.Context(), id); err != nil {
			toast.Error("delete failed:", err.Error())
			return err
		}
		toast.Success("Notification", id, "deleted")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
