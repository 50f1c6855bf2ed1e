package commands

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/doeshing/birthchart/internal/app"
)

const msgHistoryDisabled = "History is disabled. Enable it with: birthchart config set history.enabled true"

// NewHistoryCommand creates the history command with all subcommands
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect past chart invocations",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryClearCommand(container),
		newHistoryExportCommand(container),
	)

	return historyCmd
}

// newHistoryListCommand creates the 'history list' subcommand
func newHistoryListCommand(container *app.Container) *cobra.Command {
	var (
		limit  int
		search string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent invocations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listInvocations(cmd.OutOrStdout(), container, limit, search)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", DefaultHistoryLimit, "Max entries to show")
	cmd.Flags().StringVar(&search, "search", "", "Filter by dob, status or message")
	return cmd
}

// newHistoryClearCommand creates the 'history clear' subcommand
func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear invocation history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.HistoryStore == nil {
				return fmt.Errorf(msgHistoryDisabled)
			}
			if err := container.HistoryStore.Clear(); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			return nil
		},
	}
}

// newHistoryExportCommand creates the 'history export' subcommand
func newHistoryExportCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Export history to JSONL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.HistoryStore == nil {
				return fmt.Errorf(msgHistoryDisabled)
			}
			if err := container.HistoryStore.ExportJSON(args[0]); err != nil {
				return fmt.Errorf("failed to export history to %s: %w", args[0], err)
			}
			return nil
		},
	}
}

// listInvocations lists recent invocation entries
func listInvocations(out io.Writer, container *app.Container, limit int, search string) error {
	store := container.HistoryStore
	if store == nil {
		return fmt.Errorf(msgHistoryDisabled)
	}

	records, err := store.Records(limit, search)
	if err != nil {
		return fmt.Errorf("failed to retrieve history records: %w", err)
	}

	for _, rec := range records {
		fmt.Fprintf(out, "%s (%s) | %s %s | %s",
			rec.Timestamp.Local().Format(TimestampFormat),
			humanize.Time(rec.Timestamp),
			rec.Dob,
			rec.Time,
			rec.Status)
		if rec.Message != "" {
			fmt.Fprintf(out, " | %s", rec.Message)
		}
		fmt.Fprintln(out)
	}

	return nil
}
