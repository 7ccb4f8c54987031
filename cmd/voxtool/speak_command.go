package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"voxtool/internal/config"
	"voxtool/internal/logging"
	"voxtool/internal/tts"
)

func newSpeakCommand(ctx *commandContext) *cobra.Command {
	var textFlag string
	var voiceFlag string
	var rateFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "speak",
		Short: "Render text to a speech audio file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if strings.TrimSpace(textFlag) == "" {
				return fmt.Errorf("--text is required")
			}
			if strings.TrimSpace(outputFlag) == "" {
				return fmt.Errorf("--output is required")
			}
			outputPath, err := config.ExpandPath(outputFlag)
			if err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}

			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			svc := tts.NewService(cfg.TTS)
			logger.Info("synthesizing speech",
				logging.String("voice", firstNonEmpty(voiceFlag, svc.Voice())),
				logging.String("output", outputPath))

			err = svc.Synthesize(cmd.Context(), tts.Request{
				Text:   textFlag,
				Voice:  strings.TrimSpace(voiceFlag),
				Rate:   strings.TrimSpace(rateFlag),
				Output: outputPath,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote speech audio to %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&textFlag, "text", "t", "", "Text to speak")
	cmd.Flags().StringVar(&voiceFlag, "voice", "", "Voice name (defaults to the configured voice)")
	cmd.Flags().StringVar(&rateFlag, "rate", "", "Speech rate adjustment, e.g. +10% (defaults to the configured rate)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Destination audio file")

	return cmd
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
