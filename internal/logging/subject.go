package logging

import "strings"

// FormatSubject builds the "Chapter N" subject used in console output.
func FormatSubject(chapter string) string {
	chapter = strings.TrimSpace(chapter)
	if chapter == "" {
		return ""
	}
	return "Chapter " + chapter
}
