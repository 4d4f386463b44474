package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wordfreq/internal/history"
)

const shortIDLength = 8

var errHistoryDisabled = errors.New("run history is disabled (history.enabled = false)")

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect previous analysis runs",
	}

	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	historyCmd.AddCommand(newHistoryPruneCommand(ctx))

	return historyCmd
}

func (c *commandContext) withHistory(fn func(*history.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return errHistoryDisabled
	}
	store, err := history.Open(cfg)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				runs, err := store.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(runs) == 0 {
					fmt.Fprintln(out, "No runs recorded.")
					return nil
				}
				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					rows = append(rows, []string{
						shortID(run.ID),
						run.StartedAt.Local().Format(time.DateTime),
						run.Duration().Round(time.Millisecond).String(),
						strconv.Itoa(run.TopN),
						chapterSources(run.Chapters),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Started", "Duration", "Top", "Chapters"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list (0 for all)")
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show the records of a previous run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				run, err := store.Get(cmd.Context(), strings.TrimSpace(args[0]))
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)

				writeHeading(out, "Run "+run.ID, '=', colorize)
				block := newStatusBlock(colorize)
				block.add("Started", statusInfo, "%s", run.StartedAt.Local().Format(time.DateTime))
				block.add("Duration", statusInfo, "%s", run.Duration().Round(time.Millisecond))
				block.add("Top N", statusInfo, "%d", run.TopN)
				block.add("Stop words", statusInfo, "%d from %s", run.StopWordCount, run.StopWordsPath)
				block.writeTo(out)
				fmt.Fprintln(out)

				for _, ch := range run.Chapters {
					title := fmt.Sprintf("Chapter %d: %s", ch.Chapter, ch.SourcePath)
					writeHeading(out, title, '-', colorize)
					if len(ch.Records) == 0 {
						fmt.Fprintln(out, "No records.")
					} else {
						fmt.Fprintln(out, renderRecords(ch.Records))
					}
					fmt.Fprintf(out, "%d tokens, %d after stop words, %d distinct; exported to %s\n\n",
						ch.TokenCount, ch.FilteredCount, ch.DistinctCount, ch.CSVPath)
				}
				return nil
			})
		},
	}
}

func newHistoryPruneCommand(ctx *commandContext) *cobra.Command {
	var keep int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete all but the most recent runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if keep < 0 {
				return fmt.Errorf("--keep must be zero or greater, got %d", keep)
			}
			return ctx.withHistory(func(store *history.Store) error {
				removed, err := store.Prune(cmd.Context(), keep)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d run(s); kept the newest %d\n", removed, keep)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&keep, "keep", 10, "Number of most recent runs to keep")
	return cmd
}

func shortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}

func chapterSources(chapters []history.Chapter) string {
	names := make([]string, 0, len(chapters))
	for _, ch := range chapters {
		names = append(names, filepath.Base(ch.SourcePath))
	}
	return strings.Join(names, ", ")
}
