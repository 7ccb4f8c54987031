package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	LogDir        string `toml:"log_dir"`
	ModelCacheDir string `toml:"model_cache_dir"`
}

// Transcription contains settings for the speech-to-text wrapper.
type Transcription struct {
	Model    string `toml:"model"`
	Language string `toml:"language"`
	Python   string `toml:"python"`
}

// Device contains the accelerator selection policy.
//
// UnsupportedComputeCaps lists CUDA compute capability values (major*10+minor)
// that the installed torch build cannot drive yet. OnUnsupported picks what
// happens when one is detected: "fallback" runs on the CPU, "attempt" warns
// and tries the accelerator anyway.
type Device struct {
	UnsupportedComputeCaps []int  `toml:"unsupported_compute_caps"`
	OnUnsupported          string `toml:"on_unsupported"`
	NvidiaSMI              string `toml:"nvidia_smi"`
}

// TTS contains settings for the text-to-speech wrapper.
type TTS struct {
	Binary string `toml:"binary"`
	Voice  string `toml:"voice"`
	Rate   string `toml:"rate"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for voxtool.
type Config struct {
	Paths         Paths         `toml:"paths"`
	Transcription Transcription `toml:"transcription"`
	Device        Device        `toml:"device"`
	TTS           TTS           `toml:"tts"`
	Logging       Logging       `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/voxtool/config.toml")
}

// Load locates, parses, and validates a configuration file. A missing file is
// not an error: defaults are valid on their own. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := locateConfig(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		data, err := os.ReadFile(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// locateConfig picks the effective config file. An explicit path wins even
// when the file does not exist yet; otherwise the default location is tried,
// then voxtool.toml in the working directory.
func locateConfig(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		return expanded, fileExists(expanded), nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if fileExists(defaultPath) {
		return defaultPath, true, nil
	}
	if local, err := filepath.Abs("voxtool.toml"); err == nil && fileExists(local) {
		return local, true, nil
	}
	return defaultPath, false, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// EnsureDirectories creates the directories voxtool writes into.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.LogDir, c.Paths.ModelCacheDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if pathValue == "~" || strings.HasPrefix(pathValue, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		pathValue = filepath.Join(home, strings.TrimPrefix(pathValue, "~"))
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
