package main

import (
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"wordfreq/internal/config"
	"wordfreq/internal/logging"
	"wordfreq/internal/runner"
)

const usageLine = "Usage: wordfreq <path_to_chapter1_file> <path_to_chapter2_file>"

// errUsage is returned when the analysis is invoked with the wrong arguments.
var errUsage = errors.New(usageLine)

type analysisFlags struct {
	outputDir string
	stopWords string
	topN      int
	noCharts  bool
	logLevel  string
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var flags analysisFlags

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "wordfreq <path_to_chapter1_file> <path_to_chapter2_file>",
		Short:         "Compare word frequencies across two chapters",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errUsage
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyAnalysisFlags(cmd, cfg, flags); err != nil {
				return err
			}
			return runAnalysis(cmd, cfg, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVar(&flags.outputDir, "output-dir", "", "Directory for record files and charts")
	rootCmd.Flags().StringVar(&flags.stopWords, "stopwords", "", "Stop-word list, one word per line")
	rootCmd.Flags().IntVar(&flags.topN, "top", 0, "Number of top words kept per chapter")
	rootCmd.Flags().BoolVar(&flags.noCharts, "no-charts", false, "Skip rendering the comparison charts")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

// applyAnalysisFlags layers explicitly set flags over the loaded config.
func applyAnalysisFlags(cmd *cobra.Command, cfg *config.Config, flags analysisFlags) error {
	changed := cmd.Flags().Changed
	if changed("output-dir") {
		dir, err := config.ExpandPath(flags.outputDir)
		if err != nil {
			return fmt.Errorf("resolve --output-dir: %w", err)
		}
		cfg.Paths.OutputDir = dir
	}
	if changed("stopwords") {
		path, err := config.ExpandPath(flags.stopWords)
		if err != nil {
			return fmt.Errorf("resolve --stopwords: %w", err)
		}
		cfg.Paths.StopWords = path
	}
	if changed("top") {
		cfg.Analysis.TopN = flags.topN
	}
	if flags.noCharts {
		cfg.Charts.Enabled = false
	}
	if changed("log-level") {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(flags.logLevel))
	}
	return cfg.Validate()
}

func runAnalysis(cmd *cobra.Command, cfg *config.Config, args []string) error {
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	runID := uuid.NewString()
	runLog := logging.RunLogPath(cfg.Paths.LogDir, runID)
	logger, err := logging.NewForRun(cfg, runLog)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logging.CleanupOldLogs(logger, cfg.Logging.RetentionDays, cfg.Paths.LogDir, logging.RunLogPattern, runLog)

	signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	report, err := runner.Run(signalCtx, cfg, runner.Options{ChapterPaths: args, RunID: runID}, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printReport(out, report, cfg.History.Enabled, runLog, shouldColorize(out))
	return nil
}
