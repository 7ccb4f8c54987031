package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"voxtool/internal/config"
	"voxtool/internal/output"
	"voxtool/internal/transcribe"
)

// newBridgeCommand builds the machine-facing transcription mode. Bridge mode
// always exits zero and always prints exactly one JSON document on stdout;
// callers detect failure by the presence of an "error" key, never by exit
// status.
func newBridgeCommand(ctx *commandContext) *cobra.Command {
	var modelFlag string
	var languageFlag string
	var forceCPU bool

	cmd := &cobra.Command{
		Use:   "bridge <audio-file>",
		Short: "Transcribe for a calling process: one JSON document on stdout, exit 0",
		Args:  cobra.ExactArgs(1),
		// Config loading happens inside runBridge so that a broken config
		// surfaces through the error document instead of a nonzero exit.
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runBridge(ctx, cmd, args[0], modelFlag, languageFlag, forceCPU)
			if err != nil {
				return output.WriteBridge(cmd.OutOrStdout(), output.BridgeError{Error: err.Error()})
			}
			return output.WriteBridge(cmd.OutOrStdout(), output.NewBridgePayload(result))
		},
	}

	cmd.Flags().StringVarP(&modelFlag, "model", "m", "base", "Whisper model size")
	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Language hint (code or English name)")
	cmd.Flags().BoolVar(&forceCPU, "force-cpu", false, "Skip GPU detection and run on the CPU")

	return cmd
}

func runBridge(ctx *commandContext, cmd *cobra.Command, input, model, languageHint string, forceCPU bool) (transcribe.Result, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return transcribe.Result{}, fmt.Errorf("load configuration: %w", err)
	}

	input, err = config.ExpandPath(input)
	if err != nil {
		return transcribe.Result{}, fmt.Errorf("resolve input path: %w", err)
	}

	lang, err := resolveLanguage(languageHint, cfg)
	if err != nil {
		return transcribe.Result{}, err
	}

	logger, err := ctx.newLogger(cfg)
	if err != nil {
		return transcribe.Result{}, fmt.Errorf("setup logging: %w", err)
	}

	decision := ctx.newSelector(cfg, logger).Select(cmd.Context(), forceCPU)

	loader := transcribe.NewWhisperLoader(cfg.Transcription.Python, cfg.Paths.ModelCacheDir, logger)
	invoker := transcribe.NewInvoker(loader, logger)
	return invoker.Run(cmd.Context(), transcribe.Request{
		Input:    input,
		Model:    strings.TrimSpace(model),
		Language: lang,
		Device:   decision.Device,
	})
}
