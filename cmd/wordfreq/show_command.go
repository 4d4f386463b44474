package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wordfreq/internal/export"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var delimiter string

	cmd := &cobra.Command{
		Use:   "show <csv>",
		Short: "Display an exported chapter record file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			sep := cfg.DelimiterRune()
			if cmd.Flags().Changed("delimiter") {
				runes := []rune(delimiter)
				if len(runes) != 1 {
					return fmt.Errorf("--delimiter must be a single character, got %q", delimiter)
				}
				sep = runes[0]
			}

			recs, err := export.Read(strings.TrimSpace(args[0]), sep)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(recs) == 0 {
				fmt.Fprintln(out, "No records.")
				return nil
			}
			fmt.Fprintln(out, renderRecords(recs))
			return nil
		},
	}

	cmd.Flags().StringVar(&delimiter, "delimiter", "", "Field delimiter (defaults to export.delimiter)")
	return cmd
}
