package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newBufferLogger(t *testing.T, format string) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelDebug)
	var handler slog.Handler
	switch format {
	case "json":
		handler = newJSONHandler(buf, levelVar)
	default:
		handler = newConsoleHandler(buf, levelVar)
	}
	return slog.New(handler), buf
}

func TestConsoleHandlerRendersComponentPrefix(t *testing.T) {
	logger, buf := newBufferLogger(t, "console")
	WithComponent(logger, "transcribe").Info("model loaded", String("model", "base"))

	line := buf.String()
	if !strings.Contains(line, "INFO transcribe: model loaded") {
		t.Fatalf("unexpected console line: %q", line)
	}
	if !strings.Contains(line, "model=base") {
		t.Fatalf("expected model attr in line: %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should be a prefix, not an attr: %q", line)
	}
}

func TestConsoleHandlerQuotesValuesWithSpaces(t *testing.T) {
	logger, buf := newBufferLogger(t, "console")
	logger.Warn("probe failed", String("gpu", "NVIDIA RTX 4090"))

	if !strings.Contains(buf.String(), `gpu="NVIDIA RTX 4090"`) {
		t.Fatalf("expected quoted attr value, got %q", buf.String())
	}
}

func TestJSONHandlerRenamesKeys(t *testing.T) {
	logger, buf := newBufferLogger(t, "json")
	logger.Info("hello")

	line := buf.String()
	for _, key := range []string{`"ts":`, `"level":"info"`, `"msg":"hello"`} {
		if !strings.Contains(line, key) {
			t.Fatalf("expected %s in json line: %q", key, line)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	if got := parseLevel("nonsense"); got != slog.LevelInfo {
		t.Fatalf("expected info, got %v", got)
	}
	if got := parseLevel("debug"); got != slog.LevelDebug {
		t.Fatalf("expected debug, got %v", got)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("should not panic", Error(nil))
}
