package analysis_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"wordfreq/internal/analysis"
	"wordfreq/internal/records"
	"wordfreq/internal/stopwords"
	"wordfreq/internal/testsupport"
	"wordfreq/internal/tokenize"
)

func TestAnalyzeScenarios(t *testing.T) {
	cases := []struct {
		name string
		text string
		stop []string
		topN int
		want []records.Record
	}{
		{
			name: "stop word removed and ties keep first occurrence",
			text: "The cat sat. The cat ran!",
			stop: []string{"the"},
			topN: 10,
			want: []records.Record{
				{Word: "cat", Frequency: 2, Length: 3, Chapter: 1},
				{Word: "sat", Frequency: 1, Length: 3, Chapter: 1},
				{Word: "ran", Frequency: 1, Length: 3, Chapter: 1},
			},
		},
		{
			name: "empty text",
			text: "",
			topN: 10,
			want: []records.Record{},
		},
		{
			name: "hyphenated word is a single token",
			text: "well-known well-known",
			topN: 10,
			want: []records.Record{
				{Word: "well-known", Frequency: 2, Length: 10, Chapter: 1},
			},
		},
		{
			name: "case folded and truncated",
			text: "Apple apple APPLE. Pear pear? Fig!",
			topN: 2,
			want: []records.Record{
				{Word: "apple", Frequency: 3, Length: 5, Chapter: 1},
				{Word: "pear", Frequency: 2, Length: 4, Chapter: 1},
			},
		},
		{
			name: "only stop words",
			text: "The. A! An?",
			stop: []string{"the", "a", "an"},
			topN: 10,
			want: []records.Record{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			analyzer := analysis.NewAnalyzer(stopwords.New(tc.stop...), tc.topN, nil)
			res, err := analyzer.Analyze(context.Background(), analysis.Chapter{ID: 1, Text: tc.text})
			if err != nil {
				t.Fatalf("Analyze returned error: %v", err)
			}
			if !reflect.DeepEqual(res.Records, tc.want) {
				t.Fatalf("records = %+v, want %+v", res.Records, tc.want)
			}
		})
	}
}

func TestAnalyzeInvariants(t *testing.T) {
	text := "It was the best of times, it was the worst of times. It was the age of wisdom! " +
		"It was the age of foolishness? Well-worn paths; naïve hopes; 42 answers."
	stop := stopwords.New("it", "was", "the", "of")
	analyzer := analysis.NewAnalyzer(stop, 3, nil)

	res, err := analyzer.Analyze(context.Background(), analysis.Chapter{ID: 2, Text: text})
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if res.TokenCount != len(tokenize.SplitWords(text)) {
		t.Fatalf("token count %d does not match tokenizer", res.TokenCount)
	}
	if res.FilteredCount > res.TokenCount {
		t.Fatalf("filtered count %d exceeds token count %d", res.FilteredCount, res.TokenCount)
	}
	if len(res.Records) > 3 {
		t.Fatalf("expected at most 3 records, got %d", len(res.Records))
	}
	for i, rec := range res.Records {
		if rec.Word == "" || stop.Contains(rec.Word) {
			t.Fatalf("record %d has invalid word %q", i, rec.Word)
		}
		if rec.Word != strings.ToLower(rec.Word) {
			t.Fatalf("record %d word %q is not lowercase", i, rec.Word)
		}
		if rec.Frequency < 1 || rec.Chapter != 2 {
			t.Fatalf("record %d malformed: %+v", i, rec)
		}
		if i > 0 && res.Records[i-1].Frequency < rec.Frequency {
			t.Fatalf("records not in descending frequency: %+v", res.Records)
		}
	}

	again, err := analyzer.Analyze(context.Background(), analysis.Chapter{ID: 2, Text: text})
	if err != nil {
		t.Fatalf("second Analyze returned error: %v", err)
	}
	if !reflect.DeepEqual(again, res) {
		t.Fatalf("Analyze is not deterministic:\n%+v\n%+v", res, again)
	}
}

func TestAnalyzeAllKeepsInputOrder(t *testing.T) {
	chapters := []analysis.Chapter{
		{ID: 1, Text: "alpha beta alpha"},
		{ID: 2, Text: "gamma gamma delta"},
		{ID: 3, Text: "epsilon"},
	}
	analyzer := analysis.NewAnalyzer(stopwords.New(), 10, nil).WithWorkers(2)

	results, err := analyzer.AnalyzeAll(context.Background(), chapters)
	if err != nil {
		t.Fatalf("AnalyzeAll returned error: %v", err)
	}
	if len(results) != len(chapters) {
		t.Fatalf("expected %d results, got %d", len(chapters), len(results))
	}
	for i, res := range results {
		if res.Chapter.ID != chapters[i].ID {
			t.Fatalf("result %d belongs to chapter %d", i, res.Chapter.ID)
		}
		for _, rec := range res.Records {
			if rec.Chapter != chapters[i].ID {
				t.Fatalf("record %+v tagged with wrong chapter", rec)
			}
		}
	}
	if results[1].Records[0].Word != "gamma" {
		t.Fatalf("unexpected chapter 2 top word %+v", results[1].Records)
	}
}

func TestAnalyzeAllHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	analyzer := analysis.NewAnalyzer(nil, 10, nil)
	_, err := analyzer.AnalyzeAll(ctx, []analysis.Chapter{{ID: 1, Text: "word"}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestReadChapters(t *testing.T) {
	dir := t.TempDir()
	first := testsupport.WriteChapter(t, dir, "one.txt", "First chapter.")
	second := testsupport.WriteChapter(t, dir, "two.txt", "Second chapter.")

	chapters, err := analysis.ReadChapters([]string{first, second})
	if err != nil {
		t.Fatalf("ReadChapters returned error: %v", err)
	}
	if len(chapters) != 2 || chapters[0].ID != 1 || chapters[1].ID != 2 {
		t.Fatalf("unexpected chapters: %+v", chapters)
	}
	if chapters[1].Text != "Second chapter." || chapters[1].Path != second {
		t.Fatalf("unexpected chapter contents: %+v", chapters[1])
	}
}

func TestReadChapterMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")
	_, err := analysis.ReadChapter(missing, 1)
	if !errors.Is(err, analysis.ErrInputNotFound) {
		t.Fatalf("expected ErrInputNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), missing) {
		t.Fatalf("error should name the path: %v", err)
	}

	present := testsupport.WriteChapter(t, t.TempDir(), "ok.txt", "fine")
	if _, err := analysis.ReadChapters([]string{present, missing}); !errors.Is(err, analysis.ErrInputNotFound) {
		t.Fatalf("expected ErrInputNotFound from ReadChapters, got %v", err)
	}
}

func TestReadChapterInvalidEncoding(t *testing.T) {
	dir := t.TempDir()
	latin1 := testsupport.WriteChapter(t, dir, "latin1.txt", "caf\xe9 au lait")

	_, err := analysis.ReadChapter(latin1, 3)
	if !errors.Is(err, analysis.ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}
	if !strings.Contains(err.Error(), latin1) || !strings.Contains(err.Error(), "chapter 3") {
		t.Fatalf("error should name the chapter and path: %v", err)
	}

	valid := testsupport.WriteChapter(t, dir, "utf8.txt", "café au lait")
	if _, err := analysis.ReadChapters([]string{valid, latin1}); !errors.Is(err, analysis.ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding from ReadChapters, got %v", err)
	}
}
