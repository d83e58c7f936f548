package traducteur

import "testing"

func TestDetect_Empty(t *testing.T) {
	if got := Detect(""); got != LangUnknown {
		t.Errorf("Detect(\"\") = %q, want %q", got, LangUnknown)
	}
	if got := Detect("   \n\t  "); got != LangUnknown {
		t.Errorf("Detect(whitespace) = %q, want %q", got, LangUnknown)
	}
}

func TestDetect_KnownLanguages(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Bonjour tout le monde, comment allez-vous aujourd'hui ? J'espère que vous passez une très bonne journée.", "fr"},
		{"Здравствуйте, как у вас дела сегодня? Надеюсь, что всё хорошо.", "ru"},
		{"こんにちは、今日はお元気ですか。良い一日をお過ごしください。", "ja"},
	}

	for _, tt := range tests {
		if got := Detect(tt.text); got != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestDetect_Deterministic(t *testing.T) {
	text := "Guten Morgen zusammen, ich hoffe ihr habt alle einen wunderschönen Tag."
	first := Detect(text)
	for i := 0; i < 10; i++ {
		if got := Detect(text); got != first {
			t.Fatalf("Detect is not deterministic: %q then %q", first, got)
		}
	}
}

func TestNormalizeLang(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"zh-CN", "zh"},
		{"zh-tw", "zh"},
		{"pt-BR", "pt"},
		{"iw", "he"},
		{"EN", "en"},
		{"fr", "fr"},
		{"  es  ", "es"},
		{"xx", "xx"}, // unknown codes pass through lower-cased
	}

	for _, tt := range tests {
		if got := NormalizeLang(tt.in); got != tt.want {
			t.Errorf("NormalizeLang(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeLang_Idempotent(t *testing.T) {
	codes := []string{"zh-cn", "pt-br", "iw", "en", "fr", "xx"}
	for _, code := range codes {
		once := NormalizeLang(code)
		twice := NormalizeLang(once)
		if once != twice {
			t.Errorf("NormalizeLang not idempotent for %q: %q then %q", code, once, twice)
		}
	}
}

func TestLanguageNameAndFlag_Fallbacks(t *testing.T) {
	if got := LanguageName("fr"); got != "Français" {
		t.Errorf("LanguageName(fr) = %q", got)
	}
	if got := LanguageName("xx"); got != "XX" {
		t.Errorf("LanguageName(xx) = %q, want upper-cased code", got)
	}
	if got := LanguageFlag("fr"); got != "🇫🇷" {
		t.Errorf("LanguageFlag(fr) = %q", got)
	}
	if got := LanguageFlag("xx"); got != "🌐" {
		t.Errorf("LanguageFlag(xx) = %q, want globe fallback", got)
	}
}
