// Package analysis runs the word-frequency pipeline over chapters.
//
// For each chapter the Analyzer splits the raw text into sentences and word
// tokens, drops stop words, counts the remaining words case-insensitively and
// keeps the top N as records tagged with the chapter id. Chapters are
// independent, so AnalyzeAll runs them concurrently against the same
// read-only stop-word set.
package analysis
