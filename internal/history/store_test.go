package history_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"wordfreq/internal/history"
	"wordfreq/internal/records"
	"wordfreq/internal/testsupport"
)

func sampleRun(id string, started time.Time) history.Run {
	return history.Run{
		ID:            id,
		StartedAt:     started,
		FinishedAt:    started.Add(1500 * time.Millisecond),
		TopN:          10,
		StopWordsPath: "/data/stopwordlist.txt",
		StopWordCount: 3,
		Chapters: []history.Chapter{
			{
				Chapter:       1,
				SourcePath:    "/data/ch1.txt",
				CSVPath:       "/out/chapter1_data.csv",
				TokenCount:    6,
				FilteredCount: 4,
				DistinctCount: 3,
				Records: []records.Record{
					{Word: "cat", Frequency: 2, Length: 3, Chapter: 1},
					{Word: "sat", Frequency: 1, Length: 3, Chapter: 1},
					{Word: "ran", Frequency: 1, Length: 3, Chapter: 1},
				},
			},
			{
				Chapter:    2,
				SourcePath: "/data/ch2.txt",
				CSVPath:    "/out/chapter2_data.csv",
				Records:    []records.Record{},
			},
		},
	}
}

func TestRecordAndGetRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	ctx := context.Background()

	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	run := sampleRun("3f2a9c1e-0000-4000-8000-000000000001", started)
	if err := store.Record(ctx, run); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	got, err := store.Get(ctx, run.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !got.StartedAt.Equal(run.StartedAt) || !got.FinishedAt.Equal(run.FinishedAt) {
		t.Fatalf("timestamps drifted: %+v", got)
	}
	if got.Duration() != 1500*time.Millisecond {
		t.Fatalf("unexpected duration %s", got.Duration())
	}
	got.StartedAt, got.FinishedAt = run.StartedAt, run.FinishedAt
	if !reflect.DeepEqual(*got, run) {
		t.Fatalf("Get = %+v\nwant %+v", *got, run)
	}
}

func TestGetAcceptsUniquePrefix(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, id := range []string{"abc123", "abd456"} {
		if err := store.Record(ctx, sampleRun(id, base)); err != nil {
			t.Fatalf("Record %s failed: %v", id, err)
		}
	}

	got, err := store.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("Get by prefix failed: %v", err)
	}
	if got.ID != "abc123" {
		t.Fatalf("expected abc123, got %s", got.ID)
	}

	if _, err := store.Get(ctx, "ab"); !errors.Is(err, history.ErrAmbiguousID) {
		t.Fatalf("expected ErrAmbiguousID, got %v", err)
	}
	if _, err := store.Get(ctx, "zzz"); !errors.Is(err, history.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListNewestFirstWithoutRecords(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("run-%d", i)
		if err := store.Record(ctx, sampleRun(id, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("Record %s failed: %v", id, err)
		}
	}

	runs, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != "run-2" || runs[1].ID != "run-1" {
		t.Fatalf("unexpected list order: %+v", runs)
	}
	if len(runs[0].Chapters) != 2 {
		t.Fatalf("expected chapter summaries, got %+v", runs[0].Chapters)
	}
	if runs[0].Chapters[0].Records != nil {
		t.Fatalf("List should not load records: %+v", runs[0].Chapters[0].Records)
	}

	all, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List all failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(all))
	}
}

func TestPruneKeepsNewest(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		if err := store.Record(ctx, sampleRun(fmt.Sprintf("run-%d", i), base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	removed, err := store.Prune(ctx, 1)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 3 {
		t.Fatalf("expected 3 runs removed, got %d", removed)
	}
	runs, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "run-3" {
		t.Fatalf("unexpected remaining runs: %+v", runs)
	}
	if _, err := store.Get(ctx, "run-0"); !errors.Is(err, history.ErrNotFound) {
		t.Fatalf("pruned run still present: %v", err)
	}
}

func TestRecordRejectsDuplicateID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	ctx := context.Background()

	run := sampleRun("dup", time.Now())
	if err := store.Record(ctx, run); err != nil {
		t.Fatalf("first Record failed: %v", err)
	}
	if err := store.Record(ctx, run); err == nil {
		t.Fatal("expected duplicate id to fail")
	}
	if err := store.Record(ctx, history.Run{}); err == nil {
		t.Fatal("expected missing id to fail")
	}
}

func TestOpenRejectsSchemaMismatch(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	if store.Path() != cfg.HistoryPath() {
		t.Fatalf("unexpected store path %q", store.Path())
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	db, err := sql.Open("sqlite", cfg.HistoryPath())
	if err != nil {
		t.Fatalf("open raw db: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	db.Close()

	if _, err := history.Open(cfg); !errors.Is(err, history.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}
