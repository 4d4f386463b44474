package analysis

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"
)

// ErrInputNotFound reports a chapter file that does not exist.
var ErrInputNotFound = errors.New("input file not found")

// ErrInvalidEncoding reports a chapter file whose bytes are not UTF-8.
var ErrInvalidEncoding = errors.New("input is not valid UTF-8")

// Chapter is the raw text of one input file and its 1-based id.
type Chapter struct {
	ID   int
	Path string
	Text string
}

// ReadChapter loads the file at path as chapter id.
func ReadChapter(path string, id int) (Chapter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Chapter{}, fmt.Errorf("read chapter %d: %w: %s", id, ErrInputNotFound, path)
		}
		return Chapter{}, fmt.Errorf("read chapter %d: %w", id, err)
	}
	if !utf8.Valid(data) {
		return Chapter{}, fmt.Errorf("read chapter %d: %w: %s", id, ErrInvalidEncoding, path)
	}
	return Chapter{ID: id, Path: path, Text: string(data)}, nil
}

// ReadChapters loads paths in order as chapters 1..len(paths). Nothing is
// returned unless every file could be read.
func ReadChapters(paths []string) ([]Chapter, error) {
	chapters := make([]Chapter, 0, len(paths))
	for i, path := range paths {
		ch, err := ReadChapter(path, i+1)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, ch)
	}
	return chapters, nil
}
