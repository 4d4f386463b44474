package charts

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"wordfreq/internal/records"
)

// BubbleTitle returns the bubble chart title for a top-n of n.
func BubbleTitle(n int) string {
	return fmt.Sprintf("Top %d Word Frequency - Second Visualization", n)
}

// WriteBubble renders a scatter of word against frequency to path. Points
// are colored by chapter and sized by word length.
func WriteBubble(path string, combined []records.Record, opts Options) error {
	opts = opts.withDefaults()
	words := WordOrder(combined)
	position := make(map[string]float64, len(words))
	for i, word := range words {
		position[word] = float64(i)
	}

	p := newWordPlot(BubbleTitle(opts.TopN), words)
	applyFrequencyAxis(p, maxFrequency(combined))
	sizer := newMarkerSizer(combined)

	for _, chapter := range chapterIDs(combined) {
		var points plotter.XYs
		var radii []vg.Length
		for _, rec := range combined {
			if rec.Chapter != chapter {
				continue
			}
			points = append(points, plotter.XY{X: position[rec.Word], Y: float64(rec.Frequency)})
			radii = append(radii, sizer.radius(rec.Length))
		}

		scatter, err := plotter.NewScatter(points)
		if err != nil {
			return fmt.Errorf("bubble chart chapter %d: %w", chapter, err)
		}
		fill := chapterColor(opts.Colors, chapter)
		scatter.GlyphStyle = draw.GlyphStyle{Color: fill, Radius: sizer.radius(0), Shape: draw.CircleGlyph{}}
		scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			return draw.GlyphStyle{Color: fill, Radius: radii[i], Shape: draw.CircleGlyph{}}
		}
		p.Add(scatter)
		p.Legend.Add(chapterLabel(chapter), scatter)
	}

	return save(p, path, opts)
}

// markerSizer maps word lengths linearly onto marker areas between
// minMarkerArea and maxMarkerArea.
type markerSizer struct {
	shortest int
	longest  int
}

func newMarkerSizer(combined []records.Record) markerSizer {
	if len(combined) == 0 {
		return markerSizer{}
	}
	s := markerSizer{shortest: combined[0].Length, longest: combined[0].Length}
	for _, rec := range combined[1:] {
		s.shortest = min(s.shortest, rec.Length)
		s.longest = max(s.longest, rec.Length)
	}
	return s
}

func (s markerSizer) area(length int) float64 {
	if s.longest == s.shortest {
		return (minMarkerArea + maxMarkerArea) / 2
	}
	length = min(max(length, s.shortest), s.longest)
	ratio := float64(length-s.shortest) / float64(s.longest-s.shortest)
	return minMarkerArea + ratio*(maxMarkerArea-minMarkerArea)
}

// radius converts an area in square points to a circle radius.
func (s markerSizer) radius(length int) vg.Length {
	return vg.Points(math.Sqrt(s.area(length)/math.Pi))
}
