// Package transcribe turns media files into timestamped transcript
// segments by driving an external whisper process.
//
// The Invoker owns the retry policy: a model load that fails on the
// accelerated device is retried exactly once on the CPU, and inference
// failures are terminal. Results come back with trimmed segment text in
// chronological order, together with the device inference actually ran on.
package transcribe
