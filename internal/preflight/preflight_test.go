package preflight_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voxtool/internal/config"
	"voxtool/internal/preflight"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()

	result := preflight.CheckDirectoryAccess("Work", dir)
	if !result.Passed {
		t.Fatalf("expected writable temp dir to pass: %+v", result)
	}

	missing := preflight.CheckDirectoryAccess("Work", filepath.Join(dir, "nope"))
	if !missing.Passed || !missing.Optional {
		t.Fatalf("missing dir should pass as optional (created on first run): %+v", missing)
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	notDir := preflight.CheckDirectoryAccess("Work", file)
	if notDir.Passed {
		t.Fatalf("regular file should fail the directory check: %+v", notDir)
	}
	if !strings.Contains(notDir.Detail, "not a directory") {
		t.Fatalf("unexpected detail: %q", notDir.Detail)
	}

	empty := preflight.CheckDirectoryAccess("Work", "")
	if empty.Passed {
		t.Fatalf("empty path should not pass: %+v", empty)
	}
}

func TestRunAllCoversDirsAndBinaries(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	results := preflight.RunAll(cfg)
	names := map[string]bool{}
	for _, r := range results {
		names[r.Name] = true
	}
	for _, want := range []string{"Log directory", "Model cache directory", "Python", "nvidia-smi", "edge-tts"} {
		if !names[want] {
			t.Fatalf("expected check %q in results %+v", want, results)
		}
	}

	if preflight.RunAll(nil) != nil {
		t.Fatal("nil config should produce no results")
	}
}
