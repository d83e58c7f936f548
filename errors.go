package traducteur

import "fmt"

// TranslationError is the base error type for pipeline failures.
type TranslationError struct {
	Message string
	Cause   error
}

func (e *TranslationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TranslationError) Unwrap() error {
	return e.Cause
}

// ProviderError indicates a single translation backend failure (network
// error, quota error, unsupported pair, malformed response).
type ProviderError struct {
	Provider  string // backend name, e.g. "mymemory"
	Message   string
	Cause     error
	Retryable bool // whether the same backend may succeed on retry
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("provider %s: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// ChainExhaustedError indicates that every backend in the fallback chain
// failed for one language pair. The language is then simply omitted from the
// reply; it never aborts sibling languages.
type ChainExhaustedError struct {
	SourceLang string
	TargetLang string
	Last       error // error from the final backend attempted
}

func (e *ChainExhaustedError) Error() string {
	if e.Last != nil {
		return fmt.Sprintf("translation unavailable (%s → %s): %v", e.SourceLang, e.TargetLang, e.Last)
	}
	return fmt.Sprintf("translation unavailable (%s → %s)", e.SourceLang, e.TargetLang)
}

func (e *ChainExhaustedError) Unwrap() error {
	return e.Last
}

// CacheError indicates a cache backend failure. The in-memory cache never
// produces one; the Redis cache surfaces connection problems through it.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}
