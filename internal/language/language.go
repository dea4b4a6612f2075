package language

import (
	"fmt"
	"strings"

	xlang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Full word forms that language.Parse does not recognise.
var byWord = map[string]string{
	"english":    "en",
	"spanish":    "es",
	"french":     "fr",
	"german":     "de",
	"italian":    "it",
	"portuguese": "pt",
	"japanese":   "ja",
	"korean":     "ko",
	"chinese":    "zh",
	"russian":    "ru",
	"arabic":     "ar",
	"hindi":      "hi",
	"dutch":      "nl",
	"polish":     "pl",
	"swedish":    "sv",
	"danish":     "da",
	"norwegian":  "no",
	"finnish":    "fi",
	"ukrainian":  "uk",
	"turkish":    "tr",
}

// Normalize converts a language hint to the two-letter code the
// transcription service expects. Empty and "auto" hints pass through, as do
// values that cannot be resolved; the service reports those itself.
func Normalize(hint string) string {
	s := strings.ToLower(strings.TrimSpace(hint))
	if s == "" || s == "auto" {
		return s
	}
	if code, ok := byWord[s]; ok {
		return code
	}
	tag, err := xlang.Parse(s)
	if err != nil {
		return s
	}
	base, conf := tag.Base()
	if conf == xlang.No {
		return s
	}
	return base.String()
}

// DisplayName renders a detected language code with its English name,
// e.g. "English (en)". Unknown codes pass through unchanged.
func DisplayName(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	tag, err := xlang.Parse(code)
	if err != nil {
		return code
	}
	name := display.English.Tags().Name(tag)
	if name == "" || strings.EqualFold(name, code) {
		return code
	}
	return fmt.Sprintf("%s (%s)", name, code)
}
