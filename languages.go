package traducteur

import "strings"

// LanguageNames maps canonical language codes to human-readable names used in
// reply embeds and provider prompts.
var LanguageNames = map[string]string{
	"en": "English",
	"fr": "Français",
	"es": "Español",
	"de": "Deutsch",
	"it": "Italiano",
	"pt": "Português",
	"nl": "Nederlands",
	"pl": "Polski",
	"ru": "Русский",
	"uk": "Українська",
	"tr": "Türkçe",
	"ar": "العربية",
	"he": "עברית",
	"hi": "हिन्दी",
	"zh": "中文",
	"ja": "日本語",
	"ko": "한국어",
	"vi": "Tiếng Việt",
}

// LanguageFlags maps canonical language codes to flag glyphs for display.
var LanguageFlags = map[string]string{
	"en": "🇬🇧",
	"fr": "🇫🇷",
	"es": "🇪🇸",
	"de": "🇩🇪",
	"it": "🇮🇹",
	"pt": "🇵🇹",
	"nl": "🇳🇱",
	"pl": "🇵🇱",
	"ru": "🇷🇺",
	"uk": "🇺🇦",
	"tr": "🇹🇷",
	"ar": "🇸🇦",
	"he": "🇮🇱",
	"hi": "🇮🇳",
	"zh": "🇨🇳",
	"ja": "🇯🇵",
	"ko": "🇰🇷",
	"vi": "🇻🇳",
}

// DefaultTargetLanguages is the target set used when none is configured.
var DefaultTargetLanguages = []string{"en", "fr", "es"}

// langAliases canonicalizes regional and legacy variants. Codes absent from
// the table pass through lower-cased unchanged.
var langAliases = map[string]string{
	"zh-cn": "zh", // simplified Chinese
	"zh-tw": "zh", // traditional Chinese
	"pt-br": "pt", // Brazilian Portuguese
	"iw":    "he", // deprecated Hebrew code
	"in":    "id", // deprecated Indonesian code
	"ji":    "yi", // deprecated Yiddish code
}

// NormalizeLang maps a detected or user-supplied language code onto its
// canonical form. Normalization is idempotent.
func NormalizeLang(lang string) string {
	lower := strings.ToLower(strings.TrimSpace(lang))
	if canonical, ok := langAliases[lower]; ok {
		return canonical
	}
	return lower
}

// LanguageName returns the display name for a canonical code, falling back to
// the upper-cased code itself for languages outside the table.
func LanguageName(lang string) string {
	if name, ok := LanguageNames[lang]; ok {
		return name
	}
	return strings.ToUpper(lang)
}

// LanguageFlag returns the flag glyph for a canonical code, or a globe when
// the language has no flag entry.
func LanguageFlag(lang string) string {
	if flag, ok := LanguageFlags[lang]; ok {
		return flag
	}
	return "🌐"
}
