package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTranscription()
	c.normalizeDevice()
	c.normalizeTTS()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ModelCacheDir) == "" {
		c.Paths.ModelCacheDir = defaultModelCacheDir
	}
	if c.Paths.ModelCacheDir, err = expandPath(c.Paths.ModelCacheDir); err != nil {
		return fmt.Errorf("paths.model_cache_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTranscription() {
	c.Transcription.Model = strings.TrimSpace(c.Transcription.Model)
	if c.Transcription.Model == "" {
		c.Transcription.Model = defaultModel
	}
	c.Transcription.Language = strings.ToLower(strings.TrimSpace(c.Transcription.Language))
	c.Transcription.Python = strings.TrimSpace(c.Transcription.Python)
	if c.Transcription.Python == "" {
		if value, ok := os.LookupEnv("VOXTOOL_PYTHON"); ok {
			c.Transcription.Python = strings.TrimSpace(value)
		}
	}
	if c.Transcription.Python == "" {
		c.Transcription.Python = defaultPython
	}
}

func (c *Config) normalizeDevice() {
	c.Device.OnUnsupported = strings.ToLower(strings.TrimSpace(c.Device.OnUnsupported))
	if c.Device.OnUnsupported == "" {
		c.Device.OnUnsupported = defaultOnUnsupported
	}
	c.Device.NvidiaSMI = strings.TrimSpace(c.Device.NvidiaSMI)
	if c.Device.NvidiaSMI == "" {
		c.Device.NvidiaSMI = defaultNvidiaSMI
	}
	if c.Device.UnsupportedComputeCaps == nil {
		c.Device.UnsupportedComputeCaps = defaultUnsupportedCaps()
	}
}

func (c *Config) normalizeTTS() {
	c.TTS.Binary = strings.TrimSpace(c.TTS.Binary)
	if c.TTS.Binary == "" {
		c.TTS.Binary = defaultTTSBinary
	}
	c.TTS.Voice = strings.TrimSpace(c.TTS.Voice)
	if c.TTS.Voice == "" {
		c.TTS.Voice = defaultTTSVoice
	}
	c.TTS.Rate = strings.TrimSpace(c.TTS.Rate)
	if c.TTS.Rate == "" {
		c.TTS.Rate = defaultTTSRate
	}
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
}
