package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"voxtool/internal/config"
)

func TestLoadWithoutFileUsesDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantLogDir := filepath.Join(tempHome, ".local", "share", "voxtool", "logs")
	if cfg.Paths.LogDir != wantLogDir {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogDir)
	}
	if cfg.Paths.ModelCacheDir != filepath.Join(tempHome, ".cache", "voxtool", "models") {
		t.Fatalf("unexpected model cache dir: %q", cfg.Paths.ModelCacheDir)
	}
	if cfg.Transcription.Model != "medium" {
		t.Fatalf("unexpected default model: %q", cfg.Transcription.Model)
	}
	if cfg.Transcription.Python != "python3" {
		t.Fatalf("unexpected default python: %q", cfg.Transcription.Python)
	}
	if cfg.Device.OnUnsupported != "fallback" {
		t.Fatalf("unexpected on_unsupported default: %q", cfg.Device.OnUnsupported)
	}
	if len(cfg.Device.UnsupportedComputeCaps) == 0 {
		t.Fatal("expected default unsupported compute caps")
	}
	if cfg.TTS.Voice != "en-US-ChristopherNeural" {
		t.Fatalf("unexpected tts voice: %q", cfg.TTS.Voice)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.LogDir, cfg.Paths.ModelCacheDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be a directory", dir)
		}
	}
}

func TestLoadExplicitMissingPathUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	target := filepath.Join(t.TempDir(), "missing.toml")
	cfg, resolved, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for a missing explicit path")
	}
	if resolved != target {
		t.Fatalf("expected resolved path %q, got %q", target, resolved)
	}
	if cfg.Transcription.Model != "medium" {
		t.Fatalf("expected defaults, got model %q", cfg.Transcription.Model)
	}
}

func TestLoadParsesFileAndNormalizes(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(tempHome, "voxtool.toml")
	content := `
[transcription]
model = " base "
language = "EN"

[device]
unsupported_compute_caps = [99]
on_unsupported = "ATTEMPT"

[logging]
format = "JSON"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected file at %q to be used, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Transcription.Model != "base" {
		t.Fatalf("expected trimmed model, got %q", cfg.Transcription.Model)
	}
	if cfg.Transcription.Language != "en" {
		t.Fatalf("expected lowercased language, got %q", cfg.Transcription.Language)
	}
	if cfg.Device.OnUnsupported != "attempt" {
		t.Fatalf("expected lowercased policy, got %q", cfg.Device.OnUnsupported)
	}
	if len(cfg.Device.UnsupportedComputeCaps) != 1 || cfg.Device.UnsupportedComputeCaps[0] != 99 {
		t.Fatalf("unexpected caps: %v", cfg.Device.UnsupportedComputeCaps)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected json format, got %q", cfg.Logging.Format)
	}
}

func TestLoadRejectsInvalidPolicy(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(tempHome, "voxtool.toml")
	if err := os.WriteFile(path, []byte("[device]\non_unsupported = \"panic\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for bad on_unsupported")
	}
}

func TestLoadRejectsBadTTSRate(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(tempHome, "voxtool.toml")
	if err := os.WriteFile(path, []byte("[tts]\nrate = \"10\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for bad tts rate")
	}
}

func TestPythonEnvOverride(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("VOXTOOL_PYTHON", "/opt/py/bin/python3")

	path := filepath.Join(tempHome, "voxtool.toml")
	if err := os.WriteFile(path, []byte("[transcription]\npython = \"\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Transcription.Python != "/opt/py/bin/python3" {
		t.Fatalf("expected env python, got %q", cfg.Transcription.Python)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	target := filepath.Join(tempHome, ".config", "voxtool", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, resolved, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load of sample config failed: %v", err)
	}
	if !exists || resolved != target {
		t.Fatalf("expected sample config at %q, got %q exists=%v", target, resolved, exists)
	}
	if cfg.Transcription.Model != "medium" {
		t.Fatalf("sample should carry defaults, got model %q", cfg.Transcription.Model)
	}
}
