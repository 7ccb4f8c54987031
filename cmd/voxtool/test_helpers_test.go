package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeStubInterpreter creates an executable standing in for the Python
// interpreter. It speaks the helper line protocol regardless of the script
// path it receives.
func writeStubInterpreter(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stub-python")
	script := "#!/bin/sh\n" + body
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub interpreter: %v", err)
	}
	return path
}

func writeStubSynthesizer(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stub-edge-tts")
	script := `#!/bin/sh
out=""
while [ $# -gt 0 ]; do
  if [ "$1" = "--write-media" ]; then out="$2"; fi
  shift
done
: > "$out"
`
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub synthesizer: %v", err)
	}
	return path
}

// writeCLIConfig writes a config file with every path isolated to a temp
// directory and the probe binary pointed at a nonexistent path so device
// selection always lands on the CPU.
func writeCLIConfig(t *testing.T, python, ttsBinary string) string {
	t.Helper()
	base := t.TempDir()
	if python == "" {
		python = filepath.Join(base, "no-such-python")
	}
	if ttsBinary == "" {
		ttsBinary = filepath.Join(base, "no-such-edge-tts")
	}
	content := fmt.Sprintf(`[paths]
log_dir = %q
model_cache_dir = %q

[transcription]
model = "medium"
python = %q

[device]
nvidia_smi = %q

[tts]
binary = %q

[logging]
format = "console"
level = "error"
`,
		filepath.Join(base, "logs"),
		filepath.Join(base, "models"),
		python,
		filepath.Join(base, "no-such-nvidia-smi"),
		ttsBinary,
	)
	path := filepath.Join(base, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeInputFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.wav")
	if err := os.WriteFile(path, []byte("not really audio"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}
