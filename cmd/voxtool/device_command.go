package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeviceCommand(ctx *commandContext) *cobra.Command {
	var forceCPU bool

	cmd := &cobra.Command{
		Use:   "device",
		Short: "Show which device transcription would run on",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}
			decision := ctx.newSelector(cfg, logger).Select(cmd.Context(), forceCPU)
			return writeJSON(cmd, decision)
		},
	}

	cmd.Flags().BoolVar(&forceCPU, "force-cpu", false, "Skip GPU detection and report the CPU")

	return cmd
}
