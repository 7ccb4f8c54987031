package config

const (
	defaultLogDir        = "~/.local/share/voxtool/logs"
	defaultModelCacheDir = "~/.cache/voxtool/models"
	defaultModel         = "medium"
	defaultPython        = "python3"
	defaultNvidiaSMI     = "nvidia-smi"
	defaultOnUnsupported = "fallback"
	defaultTTSBinary     = "edge-tts"
	defaultTTSVoice      = "en-US-ChristopherNeural"
	defaultTTSRate       = "+0%"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// defaultUnsupportedCaps lists compute capabilities newer than what stable
// torch wheels ship kernels for (sm_120/sm_121 Blackwell consumer parts).
func defaultUnsupportedCaps() []int {
	return []int{120, 121}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:        defaultLogDir,
			ModelCacheDir: defaultModelCacheDir,
		},
		Transcription: Transcription{
			Model:  defaultModel,
			Python: defaultPython,
		},
		Device: Device{
			UnsupportedComputeCaps: defaultUnsupportedCaps(),
			OnUnsupported:          defaultOnUnsupported,
			NvidiaSMI:              defaultNvidiaSMI,
		},
		TTS: TTS{
			Binary: defaultTTSBinary,
			Voice:  defaultTTSVoice,
			Rate:   defaultTTSRate,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
