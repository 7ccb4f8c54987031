package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"voxtool/internal/config"
	"voxtool/internal/device"
	"voxtool/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// newLogger builds the diagnostic logger for a run. Diagnostics always go
// to stderr so stdout stays reserved for command output, and every record
// carries the run id so interleaved runs can be told apart in a shared log.
func (c *commandContext) newLogger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.New(logging.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return nil, err
	}
	return logger.With(logging.String("run_id", uuid.NewString())), nil
}

// newSelector builds the device selector from the configured probe binary
// and unsupported-capability policy.
func (c *commandContext) newSelector(cfg *config.Config, logger *slog.Logger) *device.Selector {
	prober := device.NewNvidiaSMIProber(cfg.Device.NvidiaSMI)
	policy := device.Policy{
		UnsupportedComputeCaps: cfg.Device.UnsupportedComputeCaps,
		OnUnsupported:          cfg.Device.OnUnsupported,
	}
	return device.NewSelector(prober, policy, logger)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
