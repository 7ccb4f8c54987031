package transcribe

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classifying transcription failures. CLI exit handling
// and the retry policy in Invoker.Run both dispatch on these markers.
var (
	// ErrInputNotFound means the input media file does not exist. Never retried.
	ErrInputNotFound = errors.New("input not found")
	// ErrModelLoad means model loading failed after exhausting the one
	// permitted CPU retry.
	ErrModelLoad = errors.New("model load failed")
	// ErrInference means the loaded model failed to transcribe. Never retried.
	ErrInference = errors.New("inference failed")
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker for later classification.
func Wrap(marker error, operation, message string, err error) error {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	detail := strings.Join(parts, ": ")
	if detail == "" {
		detail = "transcription failure"
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}
