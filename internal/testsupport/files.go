package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes contents to path, creating parent directories.
func WriteFile(t testing.TB, path, contents string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteChapter writes a chapter file under dir and returns its path.
func WriteChapter(t testing.TB, dir, name, text string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	WriteFile(t, path, text)
	return path
}

// WriteStopWords writes one stop word per line to path.
func WriteStopWords(t testing.TB, path string, words ...string) {
	t.Helper()

	contents := strings.Join(words, "\n")
	if len(words) > 0 {
		contents += "\n"
	}
	WriteFile(t, path, contents)
}
