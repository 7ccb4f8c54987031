package device

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Prober reports the first available accelerator. A (nil, nil) return means
// no accelerator is present; errors mean probing itself failed.
type Prober interface {
	Probe(ctx context.Context) (*GPUInfo, error)
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(ctx context.Context) (*GPUInfo, error)

func (f ProberFunc) Probe(ctx context.Context) (*GPUInfo, error) { return f(ctx) }

// NvidiaSMIProber detects NVIDIA GPUs by querying nvidia-smi.
type NvidiaSMIProber struct {
	Binary string
	// runCommand can be overridden in tests.
	runCommand func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewNvidiaSMIProber returns a prober that shells out to the given binary
// ("nvidia-smi" when empty).
func NewNvidiaSMIProber(binary string) *NvidiaSMIProber {
	if strings.TrimSpace(binary) == "" {
		binary = "nvidia-smi"
	}
	return &NvidiaSMIProber{Binary: binary}
}

// Probe runs `nvidia-smi --query-gpu=name,compute_cap` and parses the first
// reported device. A missing binary means no accelerator; any other failure
// is a probe error for the selector to absorb.
func (p *NvidiaSMIProber) Probe(ctx context.Context) (*GPUInfo, error) {
	if p.runCommand == nil {
		if _, err := exec.LookPath(p.Binary); err != nil {
			return nil, nil
		}
	}
	output, err := p.run(ctx, p.Binary, "--query-gpu=name,compute_cap", "--format=csv,noheader")
	if err != nil {
		return nil, fmt.Errorf("nvidia-smi: %w", err)
	}
	return parseSMIOutput(string(output))
}

func (p *NvidiaSMIProber) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if p.runCommand != nil {
		return p.runCommand(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(output)))
	}
	return output, nil
}

// parseSMIOutput parses csv,noheader output such as
// "NVIDIA GeForce RTX 4090, 8.9". Only the first GPU is considered.
func parseSMIOutput(output string) (*GPUInfo, error) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		idx := strings.LastIndex(line, ",")
		if idx < 0 {
			return nil, fmt.Errorf("parse nvidia-smi output: unexpected line %q", line)
		}
		name := strings.TrimSpace(line[:idx])
		capText := strings.TrimSpace(line[idx+1:])
		computeCap, err := parseComputeCap(capText)
		if err != nil {
			return nil, fmt.Errorf("parse nvidia-smi output: %w", err)
		}
		return &GPUInfo{Name: name, ComputeCap: computeCap}, nil
	}
	return nil, nil
}

// parseComputeCap converts "8.9" to 89 and "12.0" to 120.
func parseComputeCap(text string) (int, error) {
	major, minor, found := strings.Cut(text, ".")
	if !found {
		minor = "0"
	}
	majorValue, err := strconv.Atoi(strings.TrimSpace(major))
	if err != nil {
		return 0, fmt.Errorf("compute capability %q: %w", text, err)
	}
	minorValue, err := strconv.Atoi(strings.TrimSpace(minor))
	if err != nil {
		return 0, fmt.Errorf("compute capability %q: %w", text, err)
	}
	if majorValue < 0 || minorValue < 0 || minorValue > 9 {
		return 0, fmt.Errorf("compute capability %q out of range", text)
	}
	return majorValue*10 + minorValue, nil
}
