package export_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"wordfreq/internal/export"
	"wordfreq/internal/records"
)

func TestFileName(t *testing.T) {
	if got := export.FileName(1); got != "chapter1_data.csv" {
		t.Fatalf("unexpected file name %q", got)
	}
	if got := export.Path("/out", 12); got != filepath.Join("/out", "chapter12_data.csv") {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestEncodeLayout(t *testing.T) {
	recs := []records.Record{
		{Word: "cat", Frequency: 2, Length: 3, Chapter: 1},
		{Word: "well-known", Frequency: 1, Length: 10, Chapter: 1},
	}
	var buf bytes.Buffer
	if err := export.Encode(&buf, recs, ','); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	want := "Word,Frequency,Length,Chapter\ncat,2,3,1\nwell-known,1,10,1\n"
	if buf.String() != want {
		t.Fatalf("Encode output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestEncodeEmptyWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := export.Encode(&buf, nil, ','); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if buf.String() != "Word,Frequency,Length,Chapter\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestWriteThenReadFile(t *testing.T) {
	dir := t.TempDir()
	path := export.Path(dir, 2)
	recs := []records.Record{
		{Word: "semi;colon", Frequency: 4, Length: 10, Chapter: 2},
		{Word: "naïve", Frequency: 3, Length: 5, Chapter: 2},
	}
	if err := export.Write(path, recs, ';'); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	got, err := export.Read(path, ';')
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if !reflect.DeepEqual(got, recs) {
		t.Fatalf("Read = %+v, want %+v", got, recs)
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"wrong header":   "word,count,len,chapter\ncat,1,3,1\n",
		"bad number":     "Word,Frequency,Length,Chapter\ncat,two,3,1\n",
		"missing column": "Word,Frequency,Length,Chapter\ncat,2,3\n",
		"empty word":     "Word,Frequency,Length,Chapter\n,2,0,1\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := export.Decode(strings.NewReader(input), ',')
			if !errors.Is(err, export.ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := export.Read(filepath.Join(t.TempDir(), "chapter9_data.csv"), ',')
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
