// Package language normalizes user-supplied language hints to the ISO 639-1
// codes whisper expects.
package language

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Normalize converts a BCP 47 tag, a bare code, or an English language name
// ("pt-BR", "eng", "german") to its ISO 639-1 two-letter code. The second
// return value reports whether the input was recognized.
func Normalize(hint string) (string, bool) {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return "", false
	}

	if tag, err := language.Parse(hint); err == nil {
		if code := baseISO2(tag); code != "" {
			return code, true
		}
	}

	// Fall back to matching full English names ("german" -> de).
	lower := strings.ToLower(hint)
	for _, tag := range displayCandidates {
		if strings.ToLower(display.English.Languages().Name(tag)) == lower {
			if code := baseISO2(tag); code != "" {
				return code, true
			}
		}
	}
	return "", false
}

// DisplayName returns the English name for an ISO 639-1 code, or the input
// unchanged when it cannot be resolved.
func DisplayName(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}

func baseISO2(tag language.Tag) string {
	base, conf := tag.Base()
	if conf == language.No {
		return ""
	}
	code := base.String()
	if len(code) != 2 {
		return ""
	}
	return code
}

// displayCandidates covers the languages whisper models handle well; the
// name fallback only needs common inputs, not the full BCP 47 registry.
var displayCandidates = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.German,
	language.Italian,
	language.Portuguese,
	language.Japanese,
	language.Korean,
	language.Chinese,
	language.Russian,
	language.Arabic,
	language.Hindi,
	language.Dutch,
	language.Polish,
	language.Swedish,
	language.Danish,
	language.Norwegian,
	language.Finnish,
	language.Turkish,
	language.Ukrainian,
}
