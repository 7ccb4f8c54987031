package transcribe

import (
	"context"

	"voxtool/internal/device"
)

// RawSegment is a segment exactly as the underlying model produced it,
// untrimmed text included.
type RawSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// RawResult is the unnormalized output of a model invocation.
type RawResult struct {
	Text     string       `json:"text"`
	Segments []RawSegment `json:"segments"`
	Language string       `json:"language"`
}

// Model is a loaded speech-to-text model. Close must be called on every
// path once Load succeeds; it releases the model process and its handles.
// The language hint may be empty for autodetection.
type Model interface {
	Transcribe(ctx context.Context, input, language string) (RawResult, error)
	Close() error
}

// Loader loads a named model onto a device.
type Loader interface {
	Load(ctx context.Context, model string, dev device.Choice) (Model, error)
}
