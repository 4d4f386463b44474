// Package stopwords loads the stop-word resource and filters tokens against it.
//
// A Set is immutable once built and safe to share between goroutines, so a
// run loads the resource once and hands the same Set to every chapter.
package stopwords

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"

	"wordfreq/internal/textcase"
)

// ErrResourceMissing reports that the stop-word file could not be found.
// The caller must treat it as fatal; there is no empty-set fallback.
var ErrResourceMissing = errors.New("stop-word resource missing")

// Set is a read-only collection of lowercase stop words.
type Set struct {
	words map[string]struct{}
}

// New builds a Set from the provided words. Blank entries are skipped.
func New(words ...string) *Set {
	folder := textcase.NewFolder()
	set := &Set{words: make(map[string]struct{}, len(words))}
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		set.words[folder.Lower(word)] = struct{}{}
	}
	return set
}

// Parse reads one stop word per line. Surrounding whitespace is stripped and
// blank lines are ignored.
func Parse(r io.Reader) (*Set, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stop words: %w", err)
	}
	return New(words...), nil
}

// Load reads the stop-word file at path.
func Load(path string) (*Set, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrResourceMissing, path)
		}
		return nil, fmt.Errorf("open stop words: %w", err)
	}
	defer file.Close()

	set, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Contains reports whether word is a stop word, ignoring case.
func (s *Set) Contains(word string) bool {
	if s == nil {
		return false
	}
	return s.containsFolded(textcase.Lower(word))
}

func (s *Set) containsFolded(folded string) bool {
	_, ok := s.words[folded]
	return ok
}

// Len returns the number of distinct stop words.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// Words returns the stop words in sorted order.
func (s *Set) Words() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.words))
	for word := range s.words {
		out = append(out, word)
	}
	slices.Sort(out)
	return out
}

// Remove returns the tokens whose lowercase form is not a stop word. The
// original casing of retained tokens is preserved. A nil set removes nothing.
func Remove(tokens []string, set *Set) []string {
	kept := make([]string, 0, len(tokens))
	if set.Len() == 0 {
		return append(kept, tokens...)
	}
	folder := textcase.NewFolder()
	for _, token := range tokens {
		if set.containsFolded(folder.Lower(token)) {
			continue
		}
		kept = append(kept, token)
	}
	return kept
}
