// Package deps reports availability of the external tools voxtool wraps.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"voxtool/internal/config"
)

// Requirement defines an external binary voxtool relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements returns the binaries a given configuration depends on.
func Requirements(cfg *config.Config) []Requirement {
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	return []Requirement{
		{
			Name:        "Python",
			Command:     cfg.Transcription.Python,
			Description: "runs the whisper transcription helper",
		},
		{
			Name:        "nvidia-smi",
			Command:     cfg.Device.NvidiaSMI,
			Description: "probes for CUDA-capable GPUs (CPU is used when absent)",
			Optional:    true,
		},
		{
			Name:        "edge-tts",
			Command:     cfg.TTS.Binary,
			Description: "text-to-speech synthesis for `voxtool speak`",
			Optional:    true,
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		command := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     command,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if command == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		path, err := exec.LookPath(command)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", command)
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Detail = path
		results = append(results, status)
	}
	return results
}
