package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestNewFanoutHandlerCollapses(t *testing.T) {
	if _, ok := newFanoutHandler(nil, nil).(NoopHandler); !ok {
		t.Fatal("expected NoopHandler when every handler is nil")
	}
	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, nil)
	if h := newFanoutHandler(nil, inner, nil); h != inner {
		t.Fatal("expected single non-nil handler to be returned unwrapped")
	}
}

func TestFanoutHandlerRoutesByLevel(t *testing.T) {
	var console, runFile bytes.Buffer
	consoleHandler := slog.NewJSONHandler(&console, &slog.HandlerOptions{Level: slog.LevelInfo})
	fileHandler := slog.NewJSONHandler(&runFile, &slog.HandlerOptions{Level: slog.LevelDebug})

	h := newFanoutHandler(consoleHandler, fileHandler)
	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected fanout to be enabled for debug when one handler accepts it")
	}

	logger := slog.New(h)
	logger.Debug("token detail")
	if console.Len() != 0 {
		t.Fatal("console handler should not receive debug messages")
	}
	if runFile.Len() == 0 {
		t.Fatal("run file handler should receive debug messages")
	}

	logger.Info("chapter analyzed", slog.Int("chapter", 1))
	if !bytes.Contains(console.Bytes(), []byte(`"chapter":1`)) {
		t.Fatal("expected chapter attribute on console")
	}
}

func TestFanoutHandlerWithAttrsAndGroup(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	h := newFanoutHandler(slog.NewJSONHandler(&buf1, nil), slog.NewJSONHandler(&buf2, nil))
	logger := slog.New(h.WithAttrs([]slog.Attr{slog.String("run_id", "r1")}).WithGroup("counts"))
	logger.Info("totals", slog.Int("tokens", 3))

	for _, buf := range []*bytes.Buffer{&buf1, &buf2} {
		if !bytes.Contains(buf.Bytes(), []byte(`"run_id":"r1"`)) {
			t.Fatalf("expected run_id in %s", buf.String())
		}
		if !bytes.Contains(buf.Bytes(), []byte(`"counts":{"tokens":3}`)) {
			t.Fatalf("expected grouped attr in %s", buf.String())
		}
	}
}

func TestTeeLoggerNilBase(t *testing.T) {
	var buf bytes.Buffer
	logger := TeeLogger(nil, slog.NewJSONHandler(&buf, nil))
	logger.Info("no base")
	if buf.Len() == 0 {
		t.Fatal("expected output in tee buffer")
	}
}
