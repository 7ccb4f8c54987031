package device

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"voxtool/internal/logging"
)

// Policy configures how the selector treats accelerators that the installed
// torch build cannot drive.
type Policy struct {
	// UnsupportedComputeCaps lists capability values (major*10+minor) that
	// map to the fallback device.
	UnsupportedComputeCaps []int
	// OnUnsupported is "fallback" (use the CPU) or "attempt" (warn and try
	// the accelerator anyway).
	OnUnsupported string
}

// PolicyAttempt makes the selector try an unsupported accelerator anyway.
const PolicyAttempt = "attempt"

// Selector chooses the execution device for a run. Probe failures never
// abort the run: every error path degrades to the CPU.
type Selector struct {
	prober Prober
	policy Policy
	logger *slog.Logger
}

// NewSelector builds a selector. A nil logger disables diagnostics.
func NewSelector(prober Prober, policy Policy, logger *slog.Logger) *Selector {
	return &Selector{
		prober: prober,
		policy: policy,
		logger: logging.WithComponent(logger, "device"),
	}
}

// Select decides the device for this run. forceCPU short-circuits probing.
func (s *Selector) Select(ctx context.Context, forceCPU bool) Decision {
	if forceCPU {
		return Decision{Device: CPU, Reason: "cpu forced by flag"}
	}
	if s.prober == nil {
		return Decision{Device: CPU, Reason: "no prober configured"}
	}

	gpu, err := s.prober.Probe(ctx)
	if err != nil {
		s.logger.Warn("gpu probe failed; falling back to cpu", logging.Error(err))
		return Decision{Device: CPU, Reason: "probe failed"}
	}
	if gpu == nil {
		return Decision{Device: CPU, Reason: "no accelerator detected"}
	}

	if slices.Contains(s.policy.UnsupportedComputeCaps, gpu.ComputeCap) {
		reason := fmt.Sprintf("%s (sm_%d) not supported by installed torch build", gpu.Name, gpu.ComputeCap)
		if s.policy.OnUnsupported == PolicyAttempt {
			s.logger.Warn("unsupported gpu detected; attempting cuda anyway",
				logging.String("gpu", gpu.Name),
				logging.Int("compute_cap", gpu.ComputeCap))
			return Decision{Device: CUDA, GPU: gpu, Reason: reason + "; attempting cuda"}
		}
		s.logger.Warn("unsupported gpu detected; falling back to cpu",
			logging.String("gpu", gpu.Name),
			logging.Int("compute_cap", gpu.ComputeCap))
		return Decision{Device: CPU, GPU: gpu, Reason: reason}
	}

	return Decision{Device: CUDA, GPU: gpu, Reason: fmt.Sprintf("%s (sm_%d) supported", gpu.Name, gpu.ComputeCap)}
}
