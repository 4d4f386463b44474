// Package runner orchestrates one wordfreq invocation end to end.
//
// Run holds an exclusive lock on the output directory, loads the stop-word
// resource once, reads every chapter before writing anything, analyzes the
// chapters, exports one record file per chapter, renders the comparison
// charts from the exported files and records the run in the history
// database.
package runner
