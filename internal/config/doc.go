// Package config loads, normalizes, and validates voxtool configuration.
//
// Configuration lives in a TOML file at ~/.config/voxtool/config.toml, or
// voxtool.toml in the working directory, or a path given with --config.
// The file is optional: defaults alone form a valid configuration.
package config
