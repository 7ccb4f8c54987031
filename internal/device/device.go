package device

// Choice identifies the execution device passed to the transcription helper.
type Choice string

const (
	// CPU is the fallback device; every run can complete on it.
	CPU Choice = "cpu"
	// CUDA is the accelerated device, used when a supported GPU is present.
	CUDA Choice = "cuda"
)

// GPUInfo describes a probed accelerator.
type GPUInfo struct {
	Name string `json:"name"`
	// ComputeCap is the CUDA compute capability encoded as major*10+minor
	// (8.9 -> 89).
	ComputeCap int `json:"compute_cap"`
}

// Decision is the outcome of device selection.
type Decision struct {
	Device Choice   `json:"device"`
	GPU    *GPUInfo `json:"gpu,omitempty"`
	Reason string   `json:"reason"`
}
