// Package device selects the execution device for model inference.
//
// Selection degrades gracefully: a forced-CPU flag, an absent accelerator,
// an unsupported compute capability, or a failed probe all resolve to the
// CPU fallback. Probing errors are logged and absorbed; device detection
// can never abort a run.
package device
