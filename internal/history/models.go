package history

import (
	"time"

	"wordfreq/internal/records"
)

// Run is one completed invocation of the analysis.
type Run struct {
	ID            string
	StartedAt     time.Time
	FinishedAt    time.Time
	TopN          int
	StopWordsPath string
	StopWordCount int
	Chapters      []Chapter
}

// Chapter is the stored outcome of one chapter within a run.
type Chapter struct {
	Chapter       int
	SourcePath    string
	CSVPath       string
	TokenCount    int
	FilteredCount int
	DistinctCount int
	Records       []records.Record
}

// Duration reports how long the run took.
func (r Run) Duration() time.Duration {
	if r.FinishedAt.Before(r.StartedAt) {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
