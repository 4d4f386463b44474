// Package records defines the per-chapter top-word record and builds it from
// frequency entries.
package records

import (
	"unicode/utf8"

	"wordfreq/internal/frequency"
)

// Record is one top word of a chapter.
type Record struct {
	Word      string
	Frequency int
	Length    int
	Chapter   int
}

// Build maps each entry to a Record tagged with chapter. Length is the
// character count of the word. Input order is preserved.
func Build(top []frequency.Entry, chapter int) []Record {
	out := make([]Record, 0, len(top))
	for _, entry := range top {
		out = append(out, Record{
			Word:      entry.Word,
			Frequency: entry.Count,
			Length:    utf8.RuneCountInString(entry.Word),
			Chapter:   chapter,
		})
	}
	return out
}
