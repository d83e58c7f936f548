package traducteur

import (
	"sync/atomic"
	"time"
)

// Stats holds the process-wide pipeline counters. A single value is
// constructed at startup and shared by reference; the keep-alive endpoint
// reads it concurrently without locks, which the atomic counters tolerate.
type Stats struct {
	started time.Time

	translations    atomic.Int64
	cacheHits       atomic.Int64
	rateLimitBlocks atomic.Int64
	errors          atomic.Int64
	apiCalls        atomic.Int64
}

// NewStats creates a fresh counter set with uptime starting now.
func NewStats() *Stats {
	return &Stats{started: time.Now()}
}

// AddTranslations records n delivered per-language translations.
func (s *Stats) AddTranslations(n int) { s.translations.Add(int64(n)) }

// AddCacheHit records one translation served from the cache.
func (s *Stats) AddCacheHit() { s.cacheHits.Add(1) }

// AddRateLimitBlock records one silently dropped rate-limited message.
func (s *Stats) AddRateLimitBlock() { s.rateLimitBlocks.Add(1) }

// AddError records one exhausted backend chain or failed delivery.
func (s *Stats) AddError() { s.errors.Add(1) }

// AddAPICall records one translation served by a backend, whichever backend
// in the chain produced it.
func (s *Stats) AddAPICall() { s.apiCalls.Add(1) }

// Snapshot is a point-in-time, read-only view of the counters.
type Snapshot struct {
	Translations    int64
	CacheHits       int64
	RateLimitBlocks int64
	Errors          int64
	APICalls        int64
	Uptime          time.Duration
}

// Snapshot returns the current counter values. Values read while other
// goroutines increment may be mutually inconsistent by a few events, which is
// acceptable for reporting.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Translations:    s.translations.Load(),
		CacheHits:       s.cacheHits.Load(),
		RateLimitBlocks: s.rateLimitBlocks.Load(),
		Errors:          s.errors.Load(),
		APICalls:        s.apiCalls.Load(),
		Uptime:          time.Since(s.started),
	}
}

// CacheHitRate returns the fraction of lookups served from cache, in percent.
// The denominator is floored at one to avoid dividing by zero on a cold start.
func (snap Snapshot) CacheHitRate() float64 {
	total := snap.CacheHits + snap.APICalls
	if total < 1 {
		total = 1
	}
	return float64(snap.CacheHits) / float64(total) * 100
}
