package config

import (
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDevice(); err != nil {
		return err
	}
	if err := c.validateTTS(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDevice() error {
	switch c.Device.OnUnsupported {
	case "fallback", "attempt":
	default:
		return fmt.Errorf("device.on_unsupported must be \"fallback\" or \"attempt\", got %q", c.Device.OnUnsupported)
	}
	for _, value := range c.Device.UnsupportedComputeCaps {
		if value < 0 {
			return fmt.Errorf("device.unsupported_compute_caps contains negative value %d", value)
		}
	}
	return nil
}

func (c *Config) validateTTS() error {
	rate := c.TTS.Rate
	if rate == "" {
		return nil
	}
	if rate[0] != '+' && rate[0] != '-' {
		return fmt.Errorf("tts.rate must start with + or - (e.g. \"+10%%\"), got %q", rate)
	}
	if rate[len(rate)-1] != '%' {
		return fmt.Errorf("tts.rate must end with %%, got %q", rate)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}
