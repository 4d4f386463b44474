package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.applyEnvironment()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeAnalysis()
	c.normalizeCharts()
	c.normalizeLogging()
	return nil
}

func (c *Config) applyEnvironment() {
	if value, ok := os.LookupEnv("WORDFREQ_OUTPUT_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.OutputDir = strings.TrimSpace(value)
	}
	if value, ok := os.LookupEnv("WORDFREQ_STOPWORDS"); ok && strings.TrimSpace(value) != "" {
		c.Paths.StopWords = strings.TrimSpace(value)
	}
	if value, ok := os.LookupEnv("WORDFREQ_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = strings.TrimSpace(value)
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(strings.TrimSpace(c.Paths.OutputDir)); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StopWords) == "" {
		c.Paths.StopWords = defaultStopWordsPath
	}
	if c.Paths.StopWords, err = expandPath(strings.TrimSpace(c.Paths.StopWords)); err != nil {
		return fmt.Errorf("paths.stopwords: %w", err)
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(strings.TrimSpace(c.Paths.StateDir)); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeAnalysis() {
	if c.Analysis.Workers == 0 {
		c.Analysis.Workers = defaultWorkers
	}
}

func (c *Config) normalizeCharts() {
	c.Charts.BarFile = strings.TrimSpace(c.Charts.BarFile)
	if c.Charts.BarFile == "" {
		c.Charts.BarFile = defaultBarFile
	}
	c.Charts.BubbleFile = strings.TrimSpace(c.Charts.BubbleFile)
	if c.Charts.BubbleFile == "" {
		c.Charts.BubbleFile = defaultBubbleFile
	}
	colors := make([]string, 0, len(c.Charts.Colors))
	for _, value := range c.Charts.Colors {
		normalized := strings.ToLower(strings.TrimSpace(value))
		if normalized == "" {
			continue
		}
		colors = append(colors, normalized)
	}
	if len(colors) == 0 {
		colors = defaultChartColors()
	}
	c.Charts.Colors = colors
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}
