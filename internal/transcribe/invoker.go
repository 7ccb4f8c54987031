package transcribe

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"voxtool/internal/device"
	"voxtool/internal/logging"
)

// Request describes a single transcription run.
type Request struct {
	Input    string
	Model    string
	Language string
	Device   device.Choice
}

// Segment is a normalized, trimmed span of recognized speech.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Result is the normalized outcome of a transcription run. Device records
// the device inference actually ran on, which differs from the requested
// one when loading demoted to the CPU.
type Result struct {
	FullText string
	Segments []Segment
	Language string
	Device   device.Choice
}

// Invoker drives a Loader through the load/retry/transcribe sequence.
type Invoker struct {
	loader Loader
	logger *slog.Logger
}

// NewInvoker builds an invoker. A nil logger disables diagnostics.
func NewInvoker(loader Loader, logger *slog.Logger) *Invoker {
	return &Invoker{
		loader: loader,
		logger: logging.WithComponent(logger, "transcribe"),
	}
}

// Run transcribes req.Input. Loading is retried exactly once, on the CPU,
// when the accelerated load fails; inference failures are terminal.
func (i *Invoker) Run(ctx context.Context, req Request) (Result, error) {
	if _, err := os.Stat(req.Input); err != nil {
		return Result{}, Wrap(ErrInputNotFound, "stat input", req.Input, err)
	}

	dev := req.Device
	if dev == "" {
		dev = device.CPU
	}

	i.logger.Info("loading model",
		logging.String("model", req.Model),
		logging.String("device", string(dev)))
	model, err := i.loader.Load(ctx, req.Model, dev)
	if err != nil && dev == device.CUDA {
		i.logger.Warn("model load failed on cuda; retrying on cpu", logging.Error(err))
		dev = device.CPU
		model, err = i.loader.Load(ctx, req.Model, dev)
	}
	if err != nil {
		return Result{}, Wrap(ErrModelLoad, "load model", req.Model, err)
	}
	defer model.Close()

	i.logger.Info("transcribing", logging.String("input", req.Input))
	raw, err := model.Transcribe(ctx, req.Input, req.Language)
	if err != nil {
		return Result{}, Wrap(ErrInference, "transcribe", req.Input, err)
	}

	result := normalize(raw, dev)
	i.logger.Info("transcription complete",
		logging.Int("segments", len(result.Segments)),
		logging.String("language", result.Language),
		logging.String("device", string(dev)))
	return result, nil
}

func normalize(raw RawResult, dev device.Choice) Result {
	segments := make([]Segment, 0, len(raw.Segments))
	for _, seg := range raw.Segments {
		segments = append(segments, Segment{
			Start: seg.Start,
			End:   seg.End,
			Text:  strings.TrimSpace(seg.Text),
		})
	}

	full := strings.TrimSpace(raw.Text)
	if full == "" {
		parts := make([]string, 0, len(segments))
		for _, seg := range segments {
			if seg.Text != "" {
				parts = append(parts, seg.Text)
			}
		}
		full = strings.Join(parts, " ")
	}

	return Result{
		FullText: full,
		Segments: segments,
		Language: raw.Language,
		Device:   dev,
	}
}
