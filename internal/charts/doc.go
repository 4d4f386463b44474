// Package charts renders the chapter comparison visualizations.
//
// Two PNG charts are produced from the combined chapter records: a grouped
// bar chart with one bar per chapter for every word, and a bubble chart
// plotting each word's frequency with a marker sized by word length. Words
// appear on the x axis in the order they first occur in the combined,
// frequency-sorted records.
package charts
