package runner

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"gonum.org/v1/plot/vg"

	"wordfreq/internal/analysis"
	"wordfreq/internal/charts"
	"wordfreq/internal/config"
	"wordfreq/internal/export"
	"wordfreq/internal/frequency"
	"wordfreq/internal/history"
	"wordfreq/internal/logging"
	"wordfreq/internal/records"
	"wordfreq/internal/stopwords"
)

// LockFileName is created in the output directory while a run holds it.
const LockFileName = ".wordfreq.lock"

// ErrLocked reports another run writing to the same output directory.
var ErrLocked = errors.New("output directory is locked by another run")

// Options selects the chapters for a run.
type Options struct {
	ChapterPaths []string
	// RunID is generated when empty.
	RunID string
}

// ChapterReport is the outcome of one chapter.
type ChapterReport struct {
	analysis.Result
	CSVPath string
}

// Report summarizes a completed run. Similarity is the cosine similarity of
// the first two chapters' filtered word counts.
type Report struct {
	RunID           string
	StartedAt       time.Time
	FinishedAt      time.Time
	TopN            int
	StopWordsPath   string
	StopWordCount   int
	Chapters        []ChapterReport
	Similarity      float64
	BarChartPath    string
	BubbleChartPath string
	HistoryRecorded bool
}

// Records returns every chapter's records in chapter order.
func (r *Report) Records() [][]records.Record {
	sets := make([][]records.Record, 0, len(r.Chapters))
	for _, ch := range r.Chapters {
		sets = append(sets, ch.Records)
	}
	return sets
}

// LockPath returns the lock file guarding outputDir.
func LockPath(outputDir string) string {
	return filepath.Join(outputDir, LockFileName)
}

// Run executes the analysis described by cfg over opts.ChapterPaths.
func Run(ctx context.Context, cfg *config.Config, opts Options, logger *slog.Logger) (*Report, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if len(opts.ChapterPaths) == 0 {
		return nil, errors.New("at least one chapter is required")
	}
	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	ctx = logging.WithRunID(ctx, runID)
	logger = logging.WithContext(ctx, logging.NewComponentLogger(logger, "runner"))

	report := &Report{
		RunID:         runID,
		StartedAt:     time.Now().UTC(),
		TopN:          cfg.Analysis.TopN,
		StopWordsPath: cfg.Paths.StopWords,
	}

	if err := os.MkdirAll(cfg.Paths.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	lock := flock.New(LockPath(cfg.Paths.OutputDir))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrLocked, cfg.Paths.OutputDir)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Debug("release output lock failed", logging.Error(err))
		}
	}()

	stop, err := stopwords.Load(cfg.Paths.StopWords)
	if err != nil {
		return nil, err
	}
	report.StopWordCount = stop.Len()
	logger.Debug("stop words loaded",
		logging.String("path", cfg.Paths.StopWords),
		logging.Int("count", stop.Len()),
	)

	var chartOpts charts.Options
	if cfg.Charts.Enabled {
		chartOpts, err = chartOptions(cfg)
		if err != nil {
			return nil, err
		}
	}

	chapters, err := analysis.ReadChapters(opts.ChapterPaths)
	if err != nil {
		return nil, err
	}

	analyzer := analysis.NewAnalyzer(stop, cfg.Analysis.TopN, logger).WithWorkers(cfg.Analysis.Workers)
	results, err := analyzer.AnalyzeAll(ctx, chapters)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(results) >= 2 {
		report.Similarity = frequency.Cosine(results[0].Table, results[1].Table)
	}

	delimiter := cfg.DelimiterRune()
	for _, res := range results {
		path := export.Path(cfg.Paths.OutputDir, res.Chapter.ID)
		if err := export.Write(path, res.Records, delimiter); err != nil {
			return nil, fmt.Errorf("export chapter %d: %w", res.Chapter.ID, err)
		}
		report.Chapters = append(report.Chapters, ChapterReport{Result: res, CSVPath: path})
		logger.Info("chapter exported",
			logging.String(logging.FieldEventType, "chapter_exported"),
			logging.Int(logging.FieldChapter, res.Chapter.ID),
			logging.String("csv", path),
			logging.Int("records", len(res.Records)),
		)
	}

	if cfg.Charts.Enabled {
		if err := renderCharts(cfg, report, chartOpts, delimiter); err != nil {
			return nil, err
		}
		logger.Info("charts rendered",
			logging.String(logging.FieldEventType, "charts_rendered"),
			logging.String("bar", report.BarChartPath),
			logging.String("bubble", report.BubbleChartPath),
		)
	}

	report.FinishedAt = time.Now().UTC()

	if cfg.History.Enabled {
		if err := recordHistory(ctx, cfg, report); err != nil {
			logging.WarnWithContext(logger, "run history not recorded", "history_record_failed",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check state_dir permissions or delete the history database"),
				logging.String(logging.FieldImpact, "run is missing from wordfreq history"),
			)
		} else {
			report.HistoryRecorded = true
		}
	}

	logger.Info("run complete",
		logging.String(logging.FieldEventType, "run_complete"),
		logging.Int("chapters", len(report.Chapters)),
		logging.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)),
	)
	return report, nil
}

func chartOptions(cfg *config.Config) (charts.Options, error) {
	palette, err := charts.ParsePalette(cfg.Charts.Colors)
	if err != nil {
		return charts.Options{}, fmt.Errorf("charts.colors: %w", err)
	}
	return charts.Options{
		Width:  vg.Length(cfg.Charts.WidthInches) * vg.Inch,
		Height: vg.Length(cfg.Charts.HeightInches) * vg.Inch,
		DPI:    cfg.Charts.DPI,
		Colors: palette,
		TopN:   cfg.Analysis.TopN,
	}, nil
}

// renderCharts draws both charts from the exported record files.
func renderCharts(cfg *config.Config, report *Report, opts charts.Options, delimiter rune) error {
	sets := make([][]records.Record, 0, len(report.Chapters))
	for _, ch := range report.Chapters {
		recs, err := export.Read(ch.CSVPath, delimiter)
		if err != nil {
			return fmt.Errorf("reload chapter %d: %w", ch.Chapter.ID, err)
		}
		sets = append(sets, recs)
	}
	combined := charts.Combine(sets...)

	report.BarChartPath = cfg.BarChartPath()
	if err := charts.WriteBar(report.BarChartPath, combined, opts); err != nil {
		return err
	}
	report.BubbleChartPath = cfg.BubbleChartPath()
	return charts.WriteBubble(report.BubbleChartPath, combined, opts)
}

func recordHistory(ctx context.Context, cfg *config.Config, report *Report) error {
	store, err := history.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Record(ctx, historyRun(report))
}

func historyRun(report *Report) history.Run {
	run := history.Run{
		ID:            report.RunID,
		StartedAt:     report.StartedAt,
		FinishedAt:    report.FinishedAt,
		TopN:          report.TopN,
		StopWordsPath: report.StopWordsPath,
		StopWordCount: report.StopWordCount,
	}
	for _, ch := range report.Chapters {
		run.Chapters = append(run.Chapters, history.Chapter{
			Chapter:       ch.Chapter.ID,
			SourcePath:    ch.Chapter.Path,
			CSVPath:       ch.CSVPath,
			TokenCount:    ch.TokenCount,
			FilteredCount: ch.FilteredCount,
			DistinctCount: ch.DistinctCount,
			Records:       ch.Records,
		})
	}
	return run
}

// Palette parses the configured chart colors.
func Palette(cfg *config.Config) ([]color.Color, error) {
	opts, err := chartOptions(cfg)
	if err != nil {
		return nil, err
	}
	return opts.Colors, nil
}
