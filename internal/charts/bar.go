package charts

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"wordfreq/internal/records"
)

// BarTitle returns the grouped bar chart title for a top-n of n.
func BarTitle(n int) string {
	return fmt.Sprintf("Top %d Words Frequency in Chapters 1 and 2", n)
}

// WriteBar renders a grouped bar chart of combined to path. Each word gets one
// bar per chapter; a chapter without the word contributes a zero-height bar.
func WriteBar(path string, combined []records.Record, opts Options) error {
	opts = opts.withDefaults()
	words := WordOrder(combined)
	chapters := chapterIDs(combined)

	p := newWordPlot(BarTitle(opts.TopN), words)
	applyFrequencyAxis(p, maxFrequency(combined))

	if len(words) > 0 {
		width := barWidth(opts.Width, len(words), len(chapters))
		for i, chapter := range chapters {
			values := chapterValues(combined, words, chapter)
			bars, err := plotter.NewBarChart(values, width)
			if err != nil {
				return fmt.Errorf("bar chart chapter %d: %w", chapter, err)
			}
			bars.Color = chapterColor(opts.Colors, chapter)
			bars.LineStyle.Width = 0
			bars.Offset = groupOffset(i, len(chapters), width)
			p.Add(bars)
			p.Legend.Add(chapterLabel(chapter), bars)
		}
	}

	return save(p, path, opts)
}

// chapterValues lays out chapter's frequencies along words.
func chapterValues(combined []records.Record, words []string, chapter int) plotter.Values {
	byWord := make(map[string]int, len(words))
	for _, rec := range combined {
		if rec.Chapter == chapter {
			byWord[rec.Word] = rec.Frequency
		}
	}
	values := make(plotter.Values, len(words))
	for i, word := range words {
		values[i] = float64(byWord[word])
	}
	return values
}

// barWidth splits roughly three quarters of the canvas width between every
// bar drawn.
func barWidth(canvas vg.Length, words, chapters int) vg.Length {
	if words == 0 || chapters == 0 {
		return 0
	}
	width := canvas * 0.75 / vg.Length(words*chapters)
	return min(width, vg.Points(24))
}

// groupOffset centers a group of n bars of the given width on its tick.
func groupOffset(i, n int, width vg.Length) vg.Length {
	return (vg.Length(i) - vg.Length(n-1)/2) * width
}
