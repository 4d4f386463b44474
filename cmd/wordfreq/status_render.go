package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusSkipped
	statusWarn
)

const (
	ansiReset  = "\x1b[0m"
	ansiDim    = "\x1b[2m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

var statusStyles = map[statusKind]struct{ tag, color string }{
	statusInfo:    {"", ""},
	statusOK:      {"OK", ansiGreen},
	statusSkipped: {"SKIP", ansiDim},
	statusWarn:    {"WARN", ansiYellow},
}

// statusBlock collects label/value lines and prints them with the labels
// padded to the widest one in the block.
type statusBlock struct {
	colorize bool
	lines    []statusLine
}

type statusLine struct {
	label   string
	kind    statusKind
	message string
}

func newStatusBlock(colorize bool) *statusBlock {
	return &statusBlock{colorize: colorize}
}

func (b *statusBlock) add(label string, kind statusKind, format string, args ...any) {
	b.lines = append(b.lines, statusLine{label: label, kind: kind, message: fmt.Sprintf(format, args...)})
}

func (b *statusBlock) render() []string {
	width := 0
	for _, line := range b.lines {
		width = max(width, len(line.label)+1)
	}
	out := make([]string, 0, len(b.lines))
	for _, line := range b.lines {
		out = append(out, line.format(width, b.colorize))
	}
	return out
}

func (b *statusBlock) writeTo(w io.Writer) {
	for _, line := range b.render() {
		fmt.Fprintln(w, line)
	}
}

func (l statusLine) format(width int, colorize bool) string {
	style := statusStyles[l.kind]
	value := l.message
	if style.tag != "" {
		value = strings.TrimSpace("[" + style.tag + "] " + value)
	}
	line := fmt.Sprintf("  %-*s %s", width, l.label+":", value)
	if colorize && style.color != "" {
		return style.color + line + ansiReset
	}
	return line
}

// renderHeading underlines title with '=' for summaries and '-' for chapters.
func renderHeading(title string, rule byte, colorize bool) []string {
	title = strings.TrimSpace(title)
	underline := strings.Repeat(string(rule), len([]rune(title)))
	if colorize {
		return []string{ansiBlue + title + ansiReset, ansiBlue + underline + ansiReset}
	}
	return []string{title, underline}
}

func writeHeading(w io.Writer, title string, rule byte, colorize bool) {
	for _, line := range renderHeading(title, rule, colorize) {
		fmt.Fprintln(w, line)
	}
}

func shouldColorize(writer io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
