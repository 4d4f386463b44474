package logging

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestFormatValue(t *testing.T) {
	cases := []struct {
		name  string
		value slog.Value
		want  string
	}{
		{"plain string", slog.StringValue("cat"), "cat"},
		{"string with space", slog.StringValue("two words"), `"two words"`},
		{"empty string", slog.StringValue(""), `""`},
		{"path with equals", slog.StringValue("a=b"), `"a=b"`},
		{"int", slog.IntValue(42), "42"},
		{"similarity", slog.Float64Value(0.4082482904638631), "0.408"},
		{"bool", slog.BoolValue(true), "true"},
		{"run duration", slog.DurationValue(1234567891 * time.Nanosecond), "1.235s"},
		{"chapter duration", slog.DurationValue(3456789 * time.Nanosecond), "3.46ms"},
		{"tiny duration", slog.DurationValue(850 * time.Microsecond), "850µs"},
		{"error", slog.AnyValue(errors.New("stop words missing")), `"stop words missing"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatValue(tc.value); got != tc.want {
				t.Fatalf("formatValue = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAttrStringIsUnquoted(t *testing.T) {
	if got := attrString(slog.StringValue("two words")); got != "two words" {
		t.Fatalf("attrString = %q", got)
	}
	if got := attrString(slog.IntValue(2)); got != "2" {
		t.Fatalf("attrString int = %q", got)
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2026, 3, 1, 9, 5, 7, 123_000_000, time.Local)
	if got := formatTimestamp(ts); got != "09:05:07.123" {
		t.Fatalf("formatTimestamp = %q", got)
	}
	if got := formatTimestamp(time.Time{}); got != "--:--:--.---" {
		t.Fatalf("zero timestamp = %q", got)
	}
}
