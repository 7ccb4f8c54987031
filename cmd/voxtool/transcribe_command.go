package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"voxtool/internal/config"
	"voxtool/internal/language"
	"voxtool/internal/logging"
	"voxtool/internal/output"
	"voxtool/internal/transcribe"
)

func newTranscribeCommand(ctx *commandContext) *cobra.Command {
	var inputFlag string
	var audioFlag string
	var outputFlag string
	var modelFlag string
	var languageFlag string
	var forceCPU bool
	var saveTxtFlag string

	cmd := &cobra.Command{
		Use:   "transcribe",
		Short: "Transcribe an audio file to segment JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			input := strings.TrimSpace(inputFlag)
			if input == "" {
				input = strings.TrimSpace(audioFlag)
			}
			if input == "" {
				return fmt.Errorf("--input is required")
			}
			if strings.TrimSpace(outputFlag) == "" {
				return fmt.Errorf("--output is required")
			}

			input, err = config.ExpandPath(input)
			if err != nil {
				return fmt.Errorf("resolve input path: %w", err)
			}
			jsonPath, err := config.ExpandPath(outputFlag)
			if err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}

			model := strings.TrimSpace(modelFlag)
			if model == "" {
				model = cfg.Transcription.Model
			}

			lang, err := resolveLanguage(languageFlag, cfg)
			if err != nil {
				return err
			}

			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			decision := ctx.newSelector(cfg, logger).Select(cmd.Context(), forceCPU)
			logger.Info("device selected",
				logging.String("device", string(decision.Device)),
				logging.String("reason", decision.Reason))

			loader := transcribe.NewWhisperLoader(cfg.Transcription.Python, cfg.Paths.ModelCacheDir, logger)
			invoker := transcribe.NewInvoker(loader, logger)
			result, err := invoker.Run(cmd.Context(), transcribe.Request{
				Input:    input,
				Model:    model,
				Language: lang,
				Device:   decision.Device,
			})
			if err != nil {
				return err
			}

			txtPath := ""
			if strings.TrimSpace(saveTxtFlag) != "" {
				txtPath, err = config.ExpandPath(saveTxtFlag)
				if err != nil {
					return fmt.Errorf("resolve transcript path: %w", err)
				}
			}
			if err := output.WriteFiles(result, jsonPath, txtPath); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %d segments to %s (device: %s)\n", len(result.Segments), jsonPath, result.Device)
			if txtPath != "" {
				fmt.Fprintf(out, "Wrote transcript text to %s\n", txtPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Audio file to transcribe")
	cmd.Flags().StringVar(&audioFlag, "audio", "", "Audio file to transcribe (alias for --input)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Destination for the segment JSON")
	cmd.Flags().StringVarP(&modelFlag, "model", "m", "", "Whisper model size (defaults to the configured model)")
	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Language hint (code or English name)")
	cmd.Flags().BoolVar(&forceCPU, "force-cpu", false, "Skip GPU detection and run on the CPU")
	cmd.Flags().StringVar(&saveTxtFlag, "save-txt", "", "Optional path for the plain-text transcript")

	return cmd
}

// resolveLanguage normalizes the flag hint, falling back to the configured
// default. An unrecognized hint is an error rather than a silent pass-through
// so typos surface before a model download starts.
func resolveLanguage(flagValue string, cfg *config.Config) (string, error) {
	hint := strings.TrimSpace(flagValue)
	if hint == "" {
		hint = cfg.Transcription.Language
	}
	if hint == "" {
		return "", nil
	}
	code, ok := language.Normalize(hint)
	if !ok {
		return "", fmt.Errorf("unrecognized language %q", hint)
	}
	return code, nil
}
