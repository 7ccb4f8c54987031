// Package output serializes transcription results: pretty-printed JSON
// segment files, optional plain-text transcripts, and the compact
// stdout document used by bridge mode.
package output
