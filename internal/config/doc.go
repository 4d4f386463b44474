// Package config loads, normalizes, and validates wordfreq configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// WORDFREQ_STOPWORDS. The Config type centralizes every knob the CLI and the
// run orchestrator need, so output, state, and log directories are discovered
// in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
