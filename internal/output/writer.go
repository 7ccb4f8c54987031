package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"voxtool/internal/transcribe"
)

// ErrSerialize marks failures while writing transcript outputs.
var ErrSerialize = errors.New("serialization failed")

// WriteFiles writes the segment JSON and, when txtPath is non-empty, the
// plain-text transcript. The two writes are independent: a failure of one
// does not prevent the other, and all failures are reported together.
func WriteFiles(result transcribe.Result, jsonPath, txtPath string) error {
	var failures []error

	if err := WriteSegments(jsonPath, result.Segments); err != nil {
		failures = append(failures, err)
	}
	if txtPath != "" {
		if err := WriteText(txtPath, result.FullText); err != nil {
			failures = append(failures, err)
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("%w: %w", ErrSerialize, errors.Join(failures...))
	}
	return nil
}

// WriteSegments writes segments as a pretty-printed JSON array of
// {start, end, text} objects in chronological order.
func WriteSegments(path string, segments []transcribe.Segment) error {
	if segments == nil {
		segments = []transcribe.Segment{}
	}
	data, err := json.MarshalIndent(segments, "", "  ")
	if err != nil {
		return fmt.Errorf("encode segments: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteText writes the trimmed full-text transcript as UTF-8 with no
// trailing structure.
func WriteText(path, text string) error {
	if err := os.WriteFile(path, []byte(strings.TrimSpace(text)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// BridgePayload is the single JSON document bridge mode prints on stdout.
type BridgePayload struct {
	Text     string               `json:"text"`
	Segments []transcribe.Segment `json:"segments"`
	Language string               `json:"language"`
}

// BridgeError is the bridge-mode failure document. Bridge mode always exits
// zero; this payload is the only failure signal.
type BridgeError struct {
	Error string `json:"error"`
}

// NewBridgePayload converts a transcription result to the bridge document.
func NewBridgePayload(result transcribe.Result) BridgePayload {
	segments := result.Segments
	if segments == nil {
		segments = []transcribe.Segment{}
	}
	return BridgePayload{
		Text:     result.FullText,
		Segments: segments,
		Language: result.Language,
	}
}

// WriteBridge encodes v as a single compact JSON document followed by a
// newline.
func WriteBridge(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
