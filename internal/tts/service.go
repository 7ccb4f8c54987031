package tts

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"voxtool/internal/config"
)

// Service wraps the edge-tts command line tool for speech synthesis.
type Service struct {
	binary        string
	voice         string
	rate          string
	commandRunner func(ctx context.Context, name string, args ...string) error
}

// NewService creates a synthesis service from the text-to-speech
// configuration.
func NewService(cfg config.TTS) *Service {
	return &Service{
		binary: cfg.Binary,
		voice:  cfg.Voice,
		rate:   cfg.Rate,
	}
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	s.commandRunner = runner
}

// Voice returns the configured voice name for logging.
func (s *Service) Voice() string {
	return s.voice
}

// Request describes a single synthesis job. Voice and Rate override the
// configured defaults when non-empty.
type Request struct {
	Text   string
	Voice  string
	Rate   string
	Output string
}

// Synthesize renders the request text to the output audio file.
func (s *Service) Synthesize(ctx context.Context, req Request) error {
	if strings.TrimSpace(req.Text) == "" {
		return fmt.Errorf("synthesize: text required")
	}
	if req.Output == "" {
		return fmt.Errorf("synthesize: output path required")
	}
	if dir := filepath.Dir(req.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("synthesize: ensure output dir: %w", err)
		}
	}

	args := s.buildArgs(req)
	if err := s.run(ctx, s.binary, args...); err != nil {
		return fmt.Errorf("edge-tts: %w", err)
	}
	return nil
}

func (s *Service) buildArgs(req Request) []string {
	voice := req.Voice
	if voice == "" {
		voice = s.voice
	}
	rate := req.Rate
	if rate == "" {
		rate = s.rate
	}
	return []string{
		"--text", req.Text,
		"--voice", voice,
		"--rate=" + rate,
		"--write-media", req.Output,
	}
}

// run executes a command, using the custom runner if set.
func (s *Service) run(ctx context.Context, name string, args ...string) error {
	if s.commandRunner != nil {
		return s.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}
