package transcribe

import (
	"bufio"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"voxtool/internal/device"
	"voxtool/internal/logging"
)

//go:embed assets/whisper_runner.py
var runnerScript []byte

// WhisperLoader runs openai-whisper through an embedded Python helper.
// The helper loads the model once, reports readiness, and then serves one
// transcription request per line over its stdin/stdout pipes.
type WhisperLoader struct {
	// Python is the interpreter used to run the helper.
	Python string
	// CacheDir is where whisper downloads model weights. Guarded with a
	// file lock so concurrent runs do not race the same download.
	CacheDir string

	logger *slog.Logger
}

// NewWhisperLoader builds a loader. A nil logger disables diagnostics.
func NewWhisperLoader(python, cacheDir string, logger *slog.Logger) *WhisperLoader {
	if strings.TrimSpace(python) == "" {
		python = "python3"
	}
	return &WhisperLoader{
		Python:   python,
		CacheDir: cacheDir,
		logger:   logging.WithComponent(logger, "whisper"),
	}
}

type helperEvent struct {
	Event  string `json:"event"`
	Error  string `json:"error"`
	Stage  string `json:"stage"`
	Device string `json:"device"`
}

type helperRequest struct {
	Input    string `json:"input"`
	Language string `json:"language,omitempty"`
}

type helperResponse struct {
	Text     string       `json:"text"`
	Segments []RawSegment `json:"segments"`
	Language string       `json:"language"`
	Error    string       `json:"error"`
}

// Load starts the helper process and waits for the model to come up on the
// requested device. Helper diagnostics pass through to stderr.
func (l *WhisperLoader) Load(ctx context.Context, model string, dev device.Choice) (Model, error) {
	scriptPath, err := writeRunnerScript()
	if err != nil {
		return nil, err
	}

	unlock, err := l.lockCache()
	if err != nil {
		os.Remove(scriptPath)
		return nil, err
	}
	defer unlock()

	args := []string{"-u", scriptPath, "--model", model, "--device", string(dev)}
	if l.CacheDir != "" {
		args = append(args, "--model-dir", l.CacheDir)
	}

	cmd := exec.CommandContext(ctx, l.Python, args...) //nolint:gosec
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		os.Remove(scriptPath)
		return nil, fmt.Errorf("helper stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		os.Remove(scriptPath)
		return nil, fmt.Errorf("helper stdout: %w", err)
	}

	if err := cmd.Start(); err != nil {
		os.Remove(scriptPath)
		return nil, fmt.Errorf("start %s: %w", l.Python, err)
	}

	m := &whisperModel{
		cmd:        cmd,
		stdin:      stdin,
		reader:     bufio.NewReaderSize(stdout, 1<<20),
		scriptPath: scriptPath,
	}

	event, err := m.readEvent()
	if err != nil {
		m.Close()
		return nil, fmt.Errorf("helper startup: %w", err)
	}
	if event.Error != "" {
		m.Close()
		return nil, fmt.Errorf("load %q on %s: %s", model, dev, event.Error)
	}
	if event.Event != "ready" {
		m.Close()
		return nil, fmt.Errorf("helper startup: unexpected event %q", event.Event)
	}

	l.logger.Debug("helper ready",
		logging.String("model", model),
		logging.String("device", string(dev)))
	return m, nil
}

// lockCache serializes model downloads across processes. Model weights are
// fetched into CacheDir on first use; two runs pulling the same file at
// once corrupt it.
func (l *WhisperLoader) lockCache() (func(), error) {
	if strings.TrimSpace(l.CacheDir) == "" {
		return func() {}, nil
	}
	if err := os.MkdirAll(l.CacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure model cache dir: %w", err)
	}
	lock := flock.New(filepath.Join(l.CacheDir, ".download.lock"))
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("lock model cache: %w", err)
	}
	return func() {
		if err := lock.Unlock(); err != nil {
			l.logger.Warn("unlock model cache failed", logging.Error(err))
		}
	}, nil
}

func writeRunnerScript() (string, error) {
	file, err := os.CreateTemp("", "voxtool-whisper-*.py")
	if err != nil {
		return "", fmt.Errorf("write helper script: %w", err)
	}
	if _, err := file.Write(runnerScript); err != nil {
		file.Close()
		os.Remove(file.Name())
		return "", fmt.Errorf("write helper script: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return "", fmt.Errorf("write helper script: %w", err)
	}
	return file.Name(), nil
}

type whisperModel struct {
	cmd        *exec.Cmd
	stdin      io.WriteCloser
	reader     *bufio.Reader
	scriptPath string
	closed     bool
}

func (m *whisperModel) readEvent() (helperEvent, error) {
	line, err := m.readLine()
	if err != nil {
		return helperEvent{}, err
	}
	var event helperEvent
	if err := json.Unmarshal(line, &event); err != nil {
		return helperEvent{}, fmt.Errorf("parse helper event: %w", err)
	}
	return event, nil
}

func (m *whisperModel) readLine() ([]byte, error) {
	line, err := m.reader.ReadBytes('\n')
	if len(line) == 0 && err != nil {
		return nil, fmt.Errorf("helper exited: %w", err)
	}
	return line, nil
}

// Transcribe sends one request line and reads one response line.
func (m *whisperModel) Transcribe(ctx context.Context, input, language string) (RawResult, error) {
	request, err := json.Marshal(helperRequest{Input: input, Language: language})
	if err != nil {
		return RawResult{}, fmt.Errorf("encode request: %w", err)
	}
	request = append(request, '\n')
	if _, err := m.stdin.Write(request); err != nil {
		return RawResult{}, fmt.Errorf("send request: %w", err)
	}

	line, err := m.readLine()
	if err != nil {
		return RawResult{}, err
	}
	var response helperResponse
	if err := json.Unmarshal(line, &response); err != nil {
		return RawResult{}, fmt.Errorf("parse helper response: %w", err)
	}
	if response.Error != "" {
		return RawResult{}, fmt.Errorf("whisper: %s", response.Error)
	}
	return RawResult{
		Text:     response.Text,
		Segments: response.Segments,
		Language: response.Language,
	}, nil
}

// Close shuts the helper down and removes the temp script. Safe to call
// more than once.
func (m *whisperModel) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	_ = m.stdin.Close()
	err := m.cmd.Wait()
	os.Remove(m.scriptPath)
	if err != nil && m.cmd.ProcessState != nil && m.cmd.ProcessState.Exited() {
		// Helper exit codes are already surfaced through handshake or
		// response errors; a nonzero exit after stdin close is expected
		// for load failures.
		return nil
	}
	return err
}
