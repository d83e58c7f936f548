package traducteur

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// DetectFunc classifies raw text into a canonical language code, returning
// LangUnknown when classification fails. Implementations must be
// deterministic: the same text always yields the same code.
type DetectFunc func(text string) string

// Detect is the default detector, backed by whatlanggo's trigram models.
// It returns LangUnknown for empty text, for scripts the models cannot
// separate reliably, and for languages without an ISO 639-1 code.
func Detect(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return LangUnknown
	}

	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return LangUnknown
	}

	code := info.Lang.Iso6391()
	if code == "" {
		return LangUnknown
	}
	return NormalizeLang(code)
}
