package traducteur

import (
	"strings"
	"unicode"
)

// skipPrefixes marks content the bot must never translate: commands, links,
// Discord mention/channel/emoji tokens and code blocks.
var skipPrefixes = []string{
	"!",
	"/",
	"http://",
	"https://",
	"<@",
	"<#",
	"<:",
	"```",
}

// Filter decides whether an inbound message is eligible for translation.
// It is a pure predicate with no side effects.
type Filter struct {
	cfg FilterConfig
}

// NewFilter creates a message filter with the given bounds. Zero or negative
// bounds fall back to the defaults.
func NewFilter(cfg FilterConfig) *Filter {
	def := DefaultFilterConfig()
	if cfg.MinLength <= 0 {
		cfg.MinLength = def.MinLength
	}
	if cfg.MaxLength <= 0 {
		cfg.MaxLength = def.MaxLength
	}
	return &Filter{cfg: cfg}
}

// Eligible reports whether the message should enter the translation pipeline.
// All rules must pass: human author, trimmed length within bounds, no
// command/URL/token/code prefix, and at least one alphabetic rune.
func (f *Filter) Eligible(msg Message) bool {
	if msg.AuthorBot {
		return false
	}

	text := strings.TrimSpace(msg.Content)
	length := len([]rune(text))
	if length < f.cfg.MinLength || length > f.cfg.MaxLength {
		return false
	}

	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(text, prefix) {
			return false
		}
	}

	return containsLetter(text)
}

// containsLetter reports whether the text has at least one alphabetic rune,
// rejecting pure emoji, punctuation or numeric content.
func containsLetter(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
