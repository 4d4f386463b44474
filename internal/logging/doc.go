// Package logging assembles structured slog loggers and formatting helpers used
// across wordfreq.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes context-aware helpers so pipeline code automatically tags log
// lines with the run ID and chapter it is working on. A run logs to the
// terminal in the configured format and, in parallel, to a JSON file under
// the log directory that is pruned after the configured retention period.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
