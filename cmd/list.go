/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/liftops/liftray/internal/api"
	"github.com/liftops/liftray/internal/config"
	"github.com/liftops/liftray/internal/domain"
	"github.com/liftops/liftray/internal/format"
	"github.com/liftops/liftray/internal/search"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications",
	Long: `List notifications from the server, newest first.

EXAMPLES:
    liftray list                      # First page
    liftray list --page 2             # Second page
    liftray list --unread             # Unread only
    liftray list --type request       # Filter by type
    liftray list --search "elevator"  # Search title and message`,
	RunE: runList,
}

var (
	listPage   int
	listLimit  int
	listUnread bool
	listType   string
	listSearch string
	listJSON   bool
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVar(&listPage, "page", 1, "Page number")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Page size (default from config)")
	listCmd.Flags().BoolVar(&listUnread, "unread", false, "Show unread notifications only")
	listCmd.Flags().StringVar(&listType, "type", "", "Filter by notification type")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Search in title and message")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	transport, err := newTransport()
	if err != nil {
		return err
	}

	limit := listLimit
	if limit <= 0 {
		limit = config.GetInt("page_limit", 20)
	}
	opts := api.ListOptions{Page: listPage, Limit: limit}
	if listUnread {
		opts.Read = domain.ReadFilterUnread
	}
	if listType != "" {
		t, ok := domain.TypeFromString(listType)
		if !ok {
			return fmt.Errorf("unknown notification type: %s", listType)
		}
		opts.Type = t
	}

	result, err := transport.List(cmd.Context(), opts)
	if err != nil {
		return err
	}

	items := result.Items
	if listSearch != "" {
		items = search.Apply(search.NewSubstringProvider(), items, listSearch)
	}

	out := cmd.OutOrStdout()
	if listJSON {
		return format.WriteJSONList(out, items)
	}
	if err := format.WriteTable(out, items, time.Now()); err != nil {
		return err
	}
	if listSearch == "" {
		return format.WritePageFooter(out, result.Page)
	}
	return nil
}
