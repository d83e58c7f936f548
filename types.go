package traducteur

// LangUnknown is returned by Detect when the text cannot be classified.
const LangUnknown = "unknown"

// MaxReplyLength caps each translated entry before presentation. Longer
// translations are cut to MaxReplyLength with a trailing ellipsis.
const MaxReplyLength = 1000

// Message is an inbound chat message as seen by the pipeline. The Discord
// layer converts gateway events into this value; tests construct it directly.
type Message struct {
	AuthorID  string // platform user id of the author
	AuthorBot bool   // true for bot/automated accounts
	Content   string // raw message text
}

// Translation is one translated rendition of a message.
type Translation struct {
	Lang string // canonical target language code
	Flag string // flag glyph for display
	Name string // human-readable language name
	Text string // translated text, truncated to MaxReplyLength
}

// Reply is the structured multi-language result handed to the presentation
// layer. Entries follow the configured target-language order and contain only
// the languages that actually produced a translation.
type Reply struct {
	SourceLang string
	Entries    []Translation
}

// FilterConfig holds the eligibility bounds for the message filter.
type FilterConfig struct {
	MinLength int // minimum trimmed length
	MaxLength int // maximum trimmed length
}

// DefaultFilterConfig returns the filter bounds used when none are given.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{MinLength: 15, MaxLength: 1500}
}
