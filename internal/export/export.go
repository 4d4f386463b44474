// Package export persists chapter records as delimited files and reads them
// back for charting.
//
// Files are named chapter<N>_data.csv, carry the header
// Word,Frequency,Length,Chapter and list rows in the order the records were
// built, which is descending frequency.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"wordfreq/internal/fileutil"
	"wordfreq/internal/records"
)

// ErrMalformed reports a record file that does not follow the export layout.
var ErrMalformed = errors.New("malformed record file")

// Header is the column layout of every record file.
var Header = []string{"Word", "Frequency", "Length", "Chapter"}

// FileName returns the deterministic record file name for chapter.
func FileName(chapter int) string {
	return fmt.Sprintf("chapter%d_data.csv", chapter)
}

// Path joins dir and the record file name for chapter.
func Path(dir string, chapter int) string {
	return filepath.Join(dir, FileName(chapter))
}

// Encode writes the header and one row per record to w.
func Encode(w io.Writer, recs []records.Record, delimiter rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, rec := range recs {
		row := []string{
			rec.Word,
			strconv.Itoa(rec.Frequency),
			strconv.Itoa(rec.Length),
			strconv.Itoa(rec.Chapter),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Decode parses a record stream produced by Encode.
func Decode(r io.Reader, delimiter rune) ([]records.Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if !slices.Equal(header, Header) {
		return nil, fmt.Errorf("%w: unexpected header %q", ErrMalformed, header)
	}

	out := []records.Record{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		line, _ := cr.FieldPos(0)
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, line, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseRow(row []string) (records.Record, error) {
	if row[0] == "" {
		return records.Record{}, errors.New("empty word")
	}
	values := make([]int, 3)
	for i, field := range row[1:] {
		n, err := strconv.Atoi(field)
		if err != nil {
			return records.Record{}, fmt.Errorf("column %s: %w", Header[i+1], err)
		}
		values[i] = n
	}
	return records.Record{
		Word:      row[0],
		Frequency: values[0],
		Length:    values[1],
		Chapter:   values[2],
	}, nil
}

// Write stores recs at path, replacing any previous file atomically.
func Write(path string, recs []records.Record, delimiter rune) error {
	err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Encode(w, recs, delimiter)
	})
	if err != nil {
		return fmt.Errorf("write records %s: %w", path, err)
	}
	return nil
}

// Read loads the records stored at path.
func Read(path string, delimiter rune) ([]records.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}
	defer file.Close()

	recs, err := Decode(file, delimiter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
