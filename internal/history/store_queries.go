package history

import (
	"context"
	"database/sql"
	"fmt"

	"wordfreq/internal/records"
)

const runColumns = `id, started_at, finished_at, top_n, stopwords_path, stopword_count`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var (
		run               Run
		started, finished string
	)
	if err := row.Scan(&run.ID, &started, &finished, &run.TopN, &run.StopWordsPath, &run.StopWordCount); err != nil {
		return Run{}, err
	}
	var err error
	if run.StartedAt, err = parseTime(started); err != nil {
		return Run{}, fmt.Errorf("parse started_at for run %s: %w", run.ID, err)
	}
	if run.FinishedAt, err = parseTime(finished); err != nil {
		return Run{}, fmt.Errorf("parse finished_at for run %s: %w", run.ID, err)
	}
	return run, nil
}

// List returns up to limit runs, newest first. Chapter summaries are included
// without their records. A limit of zero or less returns every run.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	ctx = ensureContext(ctx)
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY started_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		chapters, err := s.chapters(ctx, runs[i].ID, false)
		if err != nil {
			return nil, err
		}
		runs[i].Chapters = chapters
	}
	return runs, nil
}

// Get returns the run whose id equals or uniquely starts with id, including
// every chapter's records.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	ctx = ensureContext(ctx)
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrNotFound)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs WHERE id = ? OR substr(id, 1, ?) = ? ORDER BY id LIMIT 2`,
		id, len(id), id,
	)
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	defer rows.Close()

	var matches []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		if run.ID == id {
			matches = []Run{run}
			break
		}
		matches = append(matches, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	case 1:
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousID, id)
	}

	run := matches[0]
	chapters, err := s.chapters(ctx, run.ID, true)
	if err != nil {
		return nil, err
	}
	run.Chapters = chapters
	return &run, nil
}

func (s *Store) chapters(ctx context.Context, runID string, withRecords bool) ([]Chapter, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT chapter, source_path, csv_path, token_count, filtered_count, distinct_count
		 FROM run_chapters WHERE run_id = ? ORDER BY chapter`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("load chapters for run %s: %w", runID, err)
	}
	defer rows.Close()

	var chapters []Chapter
	for rows.Next() {
		var ch Chapter
		if err := rows.Scan(&ch.Chapter, &ch.SourcePath, &ch.CSVPath, &ch.TokenCount, &ch.FilteredCount, &ch.DistinctCount); err != nil {
			return nil, err
		}
		chapters = append(chapters, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if !withRecords {
		return chapters, nil
	}
	for i := range chapters {
		recs, err := s.records(ctx, runID, chapters[i].Chapter)
		if err != nil {
			return nil, err
		}
		chapters[i].Records = recs
	}
	return chapters, nil
}

func (s *Store) records(ctx context.Context, runID string, chapter int) ([]records.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, frequency, length FROM run_records
		 WHERE run_id = ? AND chapter = ? ORDER BY rank`,
		runID, chapter,
	)
	if err != nil {
		return nil, fmt.Errorf("load records for run %s chapter %d: %w", runID, chapter, err)
	}
	defer rows.Close()

	recs := []records.Record{}
	for rows.Next() {
		rec := records.Record{Chapter: chapter}
		if err := rows.Scan(&rec.Word, &rec.Frequency, &rec.Length); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Prune deletes all but the newest keep runs and reports how many were removed.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	ctx = ensureContext(ctx)
	if keep < 0 {
		keep = 0
	}
	var res sql.Result
	err := retryOnBusy(ctx, func() error {
		var execErr error
		res, execErr = s.db.ExecContext(ctx,
			`DELETE FROM runs WHERE id NOT IN (
				SELECT id FROM runs ORDER BY started_at DESC, id DESC LIMIT ?
			)`,
			keep,
		)
		return execErr
	})
	if err != nil {
		return 0, fmt.Errorf("prune runs: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune runs: %w", err)
	}
	return removed, nil
}
