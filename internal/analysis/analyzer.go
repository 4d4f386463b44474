package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"wordfreq/internal/frequency"
	"wordfreq/internal/logging"
	"wordfreq/internal/records"
	"wordfreq/internal/stopwords"
	"wordfreq/internal/tokenize"
)

// Result is the outcome of analyzing one chapter.
type Result struct {
	Chapter       Chapter
	TokenCount    int
	FilteredCount int
	DistinctCount int
	Records       []records.Record
	// Table holds every filtered word, not only the top N.
	Table *frequency.Table
}

// Analyzer applies a shared stop-word set and top-N size to chapters.
type Analyzer struct {
	stopWords *stopwords.Set
	topN      int
	workers   int
	logger    *slog.Logger
}

// NewAnalyzer builds an Analyzer. A nil logger discards output.
func NewAnalyzer(stopWords *stopwords.Set, topN int, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Analyzer{
		stopWords: stopWords,
		topN:      topN,
		workers:   1,
		logger:    logging.NewComponentLogger(logger, "analysis"),
	}
}

// WithWorkers sets how many chapters AnalyzeAll processes at once.
func (a *Analyzer) WithWorkers(n int) *Analyzer {
	if n > 0 {
		a.workers = n
	}
	return a
}

// TopN reports the configured number of records per chapter.
func (a *Analyzer) TopN() int {
	return a.topN
}

// Analyze runs the pipeline over ch. Text without words yields an empty
// record list.
func (a *Analyzer) Analyze(ctx context.Context, ch Chapter) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	ctx = logging.WithChapter(ctx, ch.ID)
	logger := logging.WithContext(ctx, a.logger)
	start := time.Now()

	tokens := tokenize.SplitWords(ch.Text)
	filtered := stopwords.Remove(tokens, a.stopWords)
	table := frequency.Count(filtered)
	top := frequency.TopN(table, a.topN)

	result := Result{
		Chapter:       ch,
		TokenCount:    len(tokens),
		FilteredCount: len(filtered),
		DistinctCount: table.Len(),
		Records:       records.Build(top, ch.ID),
		Table:         table,
	}

	logger.Debug("chapter analyzed",
		logging.String(logging.FieldEventType, "chapter_analyzed"),
		logging.String("path", ch.Path),
		logging.Int("tokens", result.TokenCount),
		logging.Int("kept", result.FilteredCount),
		logging.Int("distinct", result.DistinctCount),
		logging.Int("records", len(result.Records)),
		logging.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

// AnalyzeAll analyzes chapters concurrently and returns results in input
// order. The first failure cancels the remaining chapters.
func (a *Analyzer) AnalyzeAll(ctx context.Context, chapters []Chapter) ([]Result, error) {
	results := make([]Result, len(chapters))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, ch := range chapters {
		g.Go(func() error {
			res, err := a.Analyze(gctx, ch)
			if err != nil {
				return fmt.Errorf("analyze chapter %d: %w", ch.ID, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
