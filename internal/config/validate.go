package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateExport(); err != nil {
		return err
	}
	if err := c.validateCharts(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	if c.Paths.StopWords == "" {
		return errors.New("paths.stopwords must be set")
	}
	if c.History.Enabled && c.Paths.StateDir == "" {
		return errors.New("paths.state_dir must be set when history.enabled is true")
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.TopN < 1 {
		return errors.New("analysis.top_n must be >= 1")
	}
	if c.Analysis.Workers < 1 {
		return errors.New("analysis.workers must be >= 1")
	}
	return nil
}

func (c *Config) validateExport() error {
	if utf8.RuneCountInString(c.Export.Delimiter) != 1 {
		return fmt.Errorf("export.delimiter must be a single character, got %q", c.Export.Delimiter)
	}
	switch r, _ := utf8.DecodeRuneInString(c.Export.Delimiter); r {
	case '"', '\r', '\n', utf8.RuneError:
		return fmt.Errorf("export.delimiter %q is not allowed", c.Export.Delimiter)
	}
	return nil
}

func (c *Config) validateCharts() error {
	if !c.Charts.Enabled {
		return nil
	}
	if c.Charts.WidthInches <= 0 || c.Charts.HeightInches <= 0 {
		return errors.New("charts.width_inches and charts.height_inches must be positive")
	}
	if c.Charts.DPI <= 0 {
		return errors.New("charts.dpi must be positive")
	}
	if len(c.Charts.Colors) == 0 {
		return errors.New("charts.colors must include at least one color")
	}
	if c.Charts.BarFile == c.Charts.BubbleFile {
		return errors.New("charts.bar_file and charts.bubble_file must differ")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
