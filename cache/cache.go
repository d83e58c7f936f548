// Package cache provides translation caching implementations.
package cache

// TranslationCache is the interface for translation caching.
type TranslationCache interface {
	// Get retrieves a cached translation. Returns empty string and false if
	// the key is absent or its entry has expired.
	Get(key string) (string, bool)

	// Set stores a translation in the cache, overwriting any live value for
	// the same key.
	Set(key string, value string) error
}
