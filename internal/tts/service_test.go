package tts_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voxtool/internal/config"
	"voxtool/internal/tts"
)

func newTestService(t *testing.T) (*tts.Service, *[][]string) {
	t.Helper()
	svc := tts.NewService(config.TTS{
		Binary: "edge-tts",
		Voice:  "en-US-ChristopherNeural",
		Rate:   "+0%",
	})
	var calls [][]string
	svc.WithCommandRunner(func(_ context.Context, name string, args ...string) error {
		calls = append(calls, append([]string{name}, args...))
		return nil
	})
	return svc, &calls
}

func TestSynthesizeBuildsArgs(t *testing.T) {
	svc, calls := newTestService(t)
	output := filepath.Join(t.TempDir(), "speech.mp3")

	err := svc.Synthesize(context.Background(), tts.Request{Text: "hello there", Output: output})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(*calls) != 1 {
		t.Fatalf("expected one command invocation, got %d", len(*calls))
	}
	got := (*calls)[0]
	want := []string{"edge-tts", "--text", "hello there", "--voice", "en-US-ChristopherNeural", "--rate=+0%", "--write-media", output}
	if strings.Join(got, "\x00") != strings.Join(want, "\x00") {
		t.Fatalf("args = %v, want %v", got, want)
	}
}

func TestSynthesizeOverrides(t *testing.T) {
	svc, calls := newTestService(t)
	output := filepath.Join(t.TempDir(), "speech.mp3")

	err := svc.Synthesize(context.Background(), tts.Request{
		Text:   "schnell bitte",
		Voice:  "de-DE-ConradNeural",
		Rate:   "+25%",
		Output: output,
	})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	got := strings.Join((*calls)[0], " ")
	if !strings.Contains(got, "--voice de-DE-ConradNeural") || !strings.Contains(got, "--rate=+25%") {
		t.Fatalf("overrides not applied: %s", got)
	}
}

func TestSynthesizeValidation(t *testing.T) {
	svc, calls := newTestService(t)

	if err := svc.Synthesize(context.Background(), tts.Request{Text: "  ", Output: "out.mp3"}); err == nil {
		t.Fatal("expected error for empty text")
	}
	if err := svc.Synthesize(context.Background(), tts.Request{Text: "hello"}); err == nil {
		t.Fatal("expected error for missing output path")
	}
	if len(*calls) != 0 {
		t.Fatalf("no command should run on validation failure, got %d", len(*calls))
	}
}

func TestSynthesizeCreatesOutputDir(t *testing.T) {
	svc, _ := newTestService(t)
	output := filepath.Join(t.TempDir(), "nested", "dir", "speech.mp3")

	if err := svc.Synthesize(context.Background(), tts.Request{Text: "hello", Output: output}); err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if _, err := os.Stat(filepath.Dir(output)); err != nil {
		t.Fatalf("output dir not created: %v", err)
	}
}

func TestSynthesizeWrapsCommandFailure(t *testing.T) {
	svc, _ := newTestService(t)
	svc.WithCommandRunner(func(_ context.Context, _ string, _ ...string) error {
		return errors.New("no network")
	})
	err := svc.Synthesize(context.Background(), tts.Request{Text: "hello", Output: filepath.Join(t.TempDir(), "out.mp3")})
	if err == nil || !strings.Contains(err.Error(), "edge-tts") {
		t.Fatalf("expected wrapped edge-tts error, got %v", err)
	}
}
