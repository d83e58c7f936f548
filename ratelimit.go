package traducteur

import (
	"sync"
	"time"
)

// DenyReason explains why a rate-limit check rejected a user. It is
// informational only; callers currently drop blocked messages silently.
type DenyReason string

const (
	// DenyNone means the check passed.
	DenyNone DenyReason = ""
	// DenyCooldown means the user translated too recently.
	DenyCooldown DenyReason = "cooldown"
	// DenyHourlyQuota means the user exhausted the rolling hourly quota.
	DenyHourlyQuota DenyReason = "hourly_quota"
)

// RateLimitConfig configures the per-user rate limiter.
type RateLimitConfig struct {
	Cooldown   time.Duration // minimum gap between accepted translations
	Window     time.Duration // rolling quota window (default: 1 hour)
	MaxPerHour int           // accepted translations per window
}

// DefaultRateLimitConfig returns the stock limits: 30s cooldown, 30 per hour.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Cooldown:   30 * time.Second,
		Window:     time.Hour,
		MaxPerHour: 30,
	}
}

// userState tracks one user's accepted translations.
type userState struct {
	last    time.Time   // timestamp of the most recent accepted translation
	history []time.Time // accepted translations within the rolling window
}

// UserRateLimiter gates translations per user with a cooldown and a rolling
// hourly quota. Check never records usage; Commit does, and must only be
// called after the reply was actually delivered.
type UserRateLimiter struct {
	mu    sync.Mutex
	cfg   RateLimitConfig
	users map[string]*userState
	now   func() time.Time // injectable for tests
}

// NewUserRateLimiter creates a rate limiter. Zero config fields fall back to
// the defaults.
func NewUserRateLimiter(cfg RateLimitConfig) *UserRateLimiter {
	def := DefaultRateLimitConfig()
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = def.Cooldown
	}
	if cfg.Window <= 0 {
		cfg.Window = def.Window
	}
	if cfg.MaxPerHour <= 0 {
		cfg.MaxPerHour = def.MaxPerHour
	}
	return &UserRateLimiter{
		cfg:   cfg,
		users: make(map[string]*userState),
		now:   time.Now,
	}
}

// Check reports whether the user may translate right now. Expired quota
// entries are pruned lazily here; no usage is recorded.
func (l *UserRateLimiter) Check(userID string) (bool, DenyReason) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.users[userID]
	if !ok {
		return true, DenyNone
	}

	now := l.now()
	if now.Sub(state.last) < l.cfg.Cooldown {
		return false, DenyCooldown
	}

	state.history = pruneBefore(state.history, now.Add(-l.cfg.Window))
	if len(state.history) >= l.cfg.MaxPerHour {
		return false, DenyHourlyQuota
	}
	return true, DenyNone
}

// Commit records one accepted translation for the user.
func (l *UserRateLimiter) Commit(userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.users[userID]
	if !ok {
		state = &userState{}
		l.users[userID] = state
	}

	now := l.now()
	state.last = now
	state.history = append(state.history, now)
}

// Sweep drops users with no accepted translation in the last window plus
// cooldown, bounding the per-user map across long uptimes. Returns the number
// of users removed.
func (l *UserRateLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-(l.cfg.Window + l.cfg.Cooldown))
	removed := 0
	for id, state := range l.users {
		if state.last.Before(cutoff) {
			delete(l.users, id)
			removed++
		}
	}
	return removed
}

// Users returns the number of tracked users.
func (l *UserRateLimiter) Users() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.users)
}

// pruneBefore drops timestamps at or before the cutoff, keeping order.
func pruneBefore(history []time.Time, cutoff time.Time) []time.Time {
	kept := history[:0]
	for _, ts := range history {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	return kept
}
