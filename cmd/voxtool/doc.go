// Command voxtool wraps a local whisper installation and the edge-tts
// service behind one CLI: transcription to segment JSON, a machine-facing
// bridge mode, and speech synthesis.
package main
