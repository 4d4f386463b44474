package records_test

import (
	"reflect"
	"testing"

	"wordfreq/internal/frequency"
	"wordfreq/internal/records"
)

func TestBuild(t *testing.T) {
	top := []frequency.Entry{
		{Word: "well-known", Count: 2},
		{Word: "café", Count: 1},
	}
	got := records.Build(top, 3)
	want := []records.Record{
		{Word: "well-known", Frequency: 2, Length: 10, Chapter: 3},
		{Word: "café", Frequency: 1, Length: 4, Chapter: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Build = %+v, want %+v", got, want)
	}
}

func TestBuildEmpty(t *testing.T) {
	got := records.Build(nil, 1)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
