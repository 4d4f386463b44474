// Package frequency tallies case-insensitive word counts and selects the most
// frequent words.
//
// A Table remembers the order in which distinct words first appeared. TopN
// sorts by count descending and breaks ties by that first-occurrence order,
// so equal counts come out in the order a reader meets them in the text.
package frequency

import (
	"slices"

	"wordfreq/internal/textcase"
)

// DefaultTopN is the number of words kept when callers have no preference.
const DefaultTopN = 10

// Entry is one word and its occurrence count.
type Entry struct {
	Word  string
	Count int
}

// Table maps lowercase words to their counts. It is read-only once built.
type Table struct {
	counts map[string]int
	order  []string
	total  int
}

// Count lowercases each token and tallies it.
func Count(tokens []string) *Table {
	folder := textcase.NewFolder()
	table := &Table{counts: make(map[string]int)}
	for _, token := range tokens {
		word := folder.Lower(token)
		if _, seen := table.counts[word]; !seen {
			table.order = append(table.order, word)
		}
		table.counts[word]++
		table.total++
	}
	return table
}

// Count returns the occurrences of word, which must already be lowercase.
func (t *Table) Count(word string) int {
	if t == nil {
		return 0
	}
	return t.counts[word]
}

// Len returns the number of distinct words.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Total returns the sum of all counts, which equals the number of tokens
// counted.
func (t *Table) Total() int {
	if t == nil {
		return 0
	}
	return t.total
}

// Entries returns every word and count in first-occurrence order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	entries := make([]Entry, len(t.order))
	for i, word := range t.order {
		entries[i] = Entry{Word: word, Count: t.counts[word]}
	}
	return entries
}

// TopN returns at most n entries ordered by count descending. Ties keep
// first-occurrence order. The table is not modified.
func TopN(t *Table, n int) []Entry {
	if n <= 0 || t.Len() == 0 {
		return []Entry{}
	}
	entries := t.Entries()
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.Count - a.Count
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
