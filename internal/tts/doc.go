// Package tts shells out to the edge-tts command line tool to render text
// to speech audio files.
package tts
