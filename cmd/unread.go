/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/liftops/liftray/internal/format"
)

// unreadCmd represents the unread command
var unreadCmd = &cobra.Command{
	Use:   "unread",
	Short: "List unread notifications",
	Long:  `List the unread-only view the server keeps for the badge dropdown.`,
	RunE:  runUnread,
}

func init() {
	rootCmd.AddCommand(unreadCmd)
}

func runUnread(cmd *cobra.Command, args []string) error {
	transport, err := newTransport()
	if err != nil {
		return err
	}

	result, err := transport.UnreadList(cmd.Context())
	if err != nil {
		return err
	}

	return format.WriteTable(cmd.OutOrStdout(), result.Items, time.Now())
}
