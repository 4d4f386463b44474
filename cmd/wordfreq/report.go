package main

import (
	"fmt"
	"io"
	"path/filepath"

	"wordfreq/internal/runner"
)

func printReport(out io.Writer, report *runner.Report, historyEnabled bool, runLog string, colorize bool) {
	for _, ch := range report.Chapters {
		writeHeading(out, fmt.Sprintf("Chapter %d: %s", ch.Chapter.ID, filepath.Base(ch.Chapter.Path)), '-', colorize)
		if len(ch.Records) == 0 {
			fmt.Fprintln(out, "No words left after stop-word filtering.")
		} else {
			fmt.Fprintln(out, renderRecords(ch.Records))
		}
		fmt.Fprintf(out, "%d tokens, %d after stop words, %d distinct\n\n",
			ch.TokenCount, ch.FilteredCount, ch.DistinctCount)
	}

	writeHeading(out, "Summary", '=', colorize)
	block := newStatusBlock(colorize)
	block.add("Run", statusInfo, "%s", report.RunID)
	block.add("Stop words", statusOK, "%d from %s", report.StopWordCount, report.StopWordsPath)
	for _, ch := range report.Chapters {
		block.add(fmt.Sprintf("Chapter %d", ch.Chapter.ID), statusOK, "%s", ch.CSVPath)
	}
	if len(report.Chapters) >= 2 {
		block.add("Similarity", statusInfo, "%.3f", report.Similarity)
	}
	if report.BarChartPath != "" {
		block.add("Bar chart", statusOK, "%s", report.BarChartPath)
		block.add("Bubble chart", statusOK, "%s", report.BubbleChartPath)
	} else {
		block.add("Charts", statusSkipped, "disabled in config")
	}
	switch {
	case !historyEnabled:
		block.add("History", statusSkipped, "disabled in config")
	case report.HistoryRecorded:
		block.add("History", statusOK, "recorded")
	default:
		block.add("History", statusWarn, "not recorded")
	}
	if runLog != "" {
		block.add("Log", statusInfo, "%s", runLog)
	}
	block.writeTo(out)
}
