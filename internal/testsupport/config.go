package testsupport

import (
	"path/filepath"
	"testing"

	"wordfreq/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Charts are rendered small and at low resolution to keep tests fast.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.OutputDir = filepath.Join(base, "out")
	cfgVal.Paths.StopWords = filepath.Join(base, "stopwordlist.txt")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.LogDir = filepath.Join(base, "state", "logs")
	cfgVal.Charts.WidthInches = 3
	cfgVal.Charts.HeightInches = 2
	cfgVal.Charts.DPI = 72

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithStopWords writes words to the configured stop-word resource.
func WithStopWords(words ...string) ConfigOption {
	return func(b *configBuilder) {
		WriteStopWords(b.t, b.cfg.Paths.StopWords, words...)
	}
}

// WithTopN overrides the number of records kept per chapter.
func WithTopN(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Analysis.TopN = n
	}
}

// WithoutCharts disables chart rendering.
func WithoutCharts() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Charts.Enabled = false
	}
}

// WithoutHistory disables the run history database.
func WithoutHistory() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = false
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}
