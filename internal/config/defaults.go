package config

const (
	defaultOutputDir         = "."
	defaultStopWordsPath     = "stopwordlist.txt"
	defaultStateDir          = "~/.local/share/wordfreq"
	defaultLogDir            = "~/.local/share/wordfreq/logs"
	defaultTopN              = 10
	defaultWorkers           = 2
	defaultDelimiter         = ","
	defaultBarFile           = "bar.png"
	defaultBubbleFile        = "bubble.png"
	defaultChartWidthInches  = 10.0
	defaultChartHeightInches = 6.0
	defaultChartDPI          = 300
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultLogRetentionDays  = 30
	historyDBName            = "history.db"
)

func defaultChartColors() []string {
	return []string{"blue", "red"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			StopWords: defaultStopWordsPath,
			StateDir:  defaultStateDir,
			LogDir:    defaultLogDir,
		},
		Analysis: Analysis{
			TopN:    defaultTopN,
			Workers: defaultWorkers,
		},
		Export: Export{
			Delimiter: defaultDelimiter,
		},
		Charts: Charts{
			Enabled:      true,
			BarFile:      defaultBarFile,
			BubbleFile:   defaultBubbleFile,
			WidthInches:  defaultChartWidthInches,
			HeightInches: defaultChartHeightInches,
			DPI:          defaultChartDPI,
			Colors:       defaultChartColors(),
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
