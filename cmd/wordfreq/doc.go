// Package main hosts the wordfreq CLI entrypoint and command graph.
//
// The root command analyzes two chapter files and prints the top words of
// each; subcommands inspect exported record files, browse the run history
// and scaffold configuration. Configuration resolution and logging setup
// live here so the internal packages stay free of terminal concerns.
package main
