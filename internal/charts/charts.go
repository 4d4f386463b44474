package charts

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"slices"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"wordfreq/internal/fileutil"
	"wordfreq/internal/records"
)

const (
	yTickStep = 10

	// Marker areas in square points for the shortest and longest words.
	minMarkerArea = 20.0
	maxMarkerArea = 200.0
)

// Options controls chart geometry and styling.
type Options struct {
	Width  vg.Length
	Height vg.Length
	DPI    int
	Colors []color.Color
	TopN   int
}

// DefaultOptions returns a 10x6 inch, 300 DPI layout with a blue/red palette.
func DefaultOptions() Options {
	return Options{
		Width:  10 * vg.Inch,
		Height: 6 * vg.Inch,
		DPI:    300,
		Colors: []color.Color{namedColors["blue"], namedColors["red"]},
		TopN:   10,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.DPI <= 0 {
		o.DPI = def.DPI
	}
	if len(o.Colors) == 0 {
		o.Colors = def.Colors
	}
	if o.TopN <= 0 {
		o.TopN = def.TopN
	}
	return o
}

// Combine concatenates the record sets and stable-sorts them by descending
// frequency, so equal frequencies keep chapter-then-rank order.
func Combine(sets ...[]records.Record) []records.Record {
	var combined []records.Record
	for _, set := range sets {
		combined = append(combined, set...)
	}
	slices.SortStableFunc(combined, func(a, b records.Record) int {
		return b.Frequency - a.Frequency
	})
	if combined == nil {
		return []records.Record{}
	}
	return combined
}

// WordOrder lists the distinct words of combined in order of appearance.
func WordOrder(combined []records.Record) []string {
	seen := make(map[string]struct{}, len(combined))
	words := make([]string, 0, len(combined))
	for _, rec := range combined {
		if _, ok := seen[rec.Word]; ok {
			continue
		}
		seen[rec.Word] = struct{}{}
		words = append(words, rec.Word)
	}
	return words
}

// chapterIDs returns the distinct chapter ids of combined in ascending order.
func chapterIDs(combined []records.Record) []int {
	var ids []int
	for _, rec := range combined {
		if !slices.Contains(ids, rec.Chapter) {
			ids = append(ids, rec.Chapter)
		}
	}
	slices.Sort(ids)
	return ids
}

func maxFrequency(combined []records.Record) int {
	highest := 0
	for _, rec := range combined {
		highest = max(highest, rec.Frequency)
	}
	return highest
}

// newWordPlot builds a plot with words on a nominal x axis rotated
// vertically.
func newWordPlot(title string, words []string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Word"
	p.Y.Label.Text = "Frequency"
	p.Legend.Top = true
	if len(words) > 0 {
		p.NominalX(words...)
		p.X.Tick.Label.Rotation = math.Pi / 2
		p.X.Tick.Label.XAlign = text.XRight
		p.X.Tick.Label.YAlign = text.YCenter
	}
	return p
}

// frequencyTicks marks the y axis every ten occurrences from zero up to the
// first multiple of ten at or above highest.
func frequencyTicks(highest int) plot.ConstantTicks {
	top := ((highest + yTickStep - 1) / yTickStep) * yTickStep
	if top < yTickStep {
		top = yTickStep
	}
	ticks := make([]plot.Tick, 0, top/yTickStep+1)
	for v := 0; v <= top; v += yTickStep {
		ticks = append(ticks, plot.Tick{Value: float64(v), Label: strconv.Itoa(v)})
	}
	return plot.ConstantTicks(ticks)
}

func applyFrequencyAxis(p *plot.Plot, highest int) {
	ticks := frequencyTicks(highest)
	p.Y.Tick.Marker = ticks
	p.Y.Min = 0
	p.Y.Max = ticks[len(ticks)-1].Value
}

// save renders p to a PNG at path using the option geometry.
func save(p *plot.Plot, path string, opts Options) error {
	canvas := vgimg.NewWith(
		vgimg.UseWH(opts.Width, opts.Height),
		vgimg.UseDPI(opts.DPI),
	)
	p.Draw(draw.New(canvas))

	err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		_, err := vgimg.PngCanvas{Canvas: canvas}.WriteTo(w)
		return err
	})
	if err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}

func chapterLabel(id int) string {
	return "Chapter " + strconv.Itoa(id)
}
