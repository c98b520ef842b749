/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/liftops/liftray/internal/api"
	"github.com/liftops/liftray/internal/format"
)

// countCmd represents the count command
var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Show the unread counter",
	Long: `Show the unread counter the dashboard badge displays.

USAGE:
    liftray count [OPTIONS]

OPTIONS:
    --format=<format>    Output format: summary, counts, json (default: summary)

EXAMPLES:
    liftray count                  # Show summary
    liftray count --format=counts  # Show unread counts by type
    liftray count --format=json    # JSON for status-bar integrations`,
	RunE: runCount,
}

var countFormat string

func init() {
	rootCmd.AddCommand(countCmd)

	countCmd.Flags().StringVar(&countFormat, "format", "summary", "Output format: summary, counts, json")
}

func runCount(cmd *cobra.Command, args []string) error {
	transport, err := newTransport()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	switch countFormat {
	case "summary":
		count, err := transport.UnreadCount(ctx)
		if err != nil {
			return err
		}
		return format.FormatSummary(out, count)

	case "counts":
		result, err := transport.UnreadList(ctx)
		if err != nil {
			return err
		}
		return format.FormatCounts(out, result.Items)

	case "json":
		result, err := transport.UnreadList(ctx)
		if err != nil {
			return err
		}
		count := result.Count
		if count < 0 {
			count = len(result.Items)
		}
		page, err := transport.List(ctx, api.ListOptions{Page: 1, Limit: 1})
		if err != nil {
			return err
		}
		return format.FormatJSON(out, count, page.Page.Total, result.Items)

	default:
		return fmt.Errorf("unknown format: %s", countFormat)
	}
}
