// Package logging builds the slog loggers used across voxtool.
//
// Two output formats are supported: a compact console format for
// interactive use and JSON for machine consumption. Loggers write to
// stderr by default so that command results on stdout stay parseable.
package logging
