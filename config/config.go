// Package config loads the bot configuration from environment variables,
// read once at startup. A .env file in the working directory is honoured.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full bot configuration.
type Config struct {
	Discord   DiscordConfig
	RateLimit RateLimitConfig
	Filter    FilterConfig
	Cache     CacheConfig
	Backends  BackendConfig
	Web       WebConfig
	Log       LogConfig
}

// DiscordConfig covers the gateway connection and command registration.
type DiscordConfig struct {
	Token        string   // bot token; the only required setting
	SyncCommands bool     // register slash commands at startup
	Targets      []string // target language codes, presentation order
}

// RateLimitConfig covers the per-user gates.
type RateLimitConfig struct {
	Cooldown   time.Duration
	MaxPerHour int
}

// FilterConfig covers message eligibility bounds.
type FilterConfig struct {
	MinLength int
	MaxLength int
}

// CacheConfig covers the translation cache.
type CacheConfig struct {
	MaxSize    int
	TTLSeconds int
	RedisURL   string // when set, use Redis instead of the in-memory cache
}

// BackendConfig covers the translation provider chain.
type BackendConfig struct {
	MyMemoryEmail string // raises the MyMemory free quota when set
	OpenAIKey     string // enables the OpenAI fallback backend when set
	OpenAIModel   string
	UpstreamRPM   int // per-backend request throttle, requests per minute
}

// WebConfig covers the keep-alive HTTP endpoint.
type WebConfig struct {
	Port string
}

// LogConfig covers logger setup.
type LogConfig struct {
	Level  string
	Format string // "json" or "text"
}

// Load reads the configuration from the environment, applying the documented
// defaults. It fails only on a missing Discord token, the one startup error
// worth dying for.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	token := getEnv("DISCORD_TOKEN", "")
	if token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is not set")
	}

	cfg := &Config{
		Discord: DiscordConfig{
			Token:        token,
			SyncCommands: getBoolEnv("SYNC_COMMANDS", true),
			Targets:      getListEnv("TARGET_LANGUAGES", []string{"en", "fr", "es"}),
		},
		RateLimit: RateLimitConfig{
			Cooldown:   time.Duration(getIntEnv("COOLDOWN_SECONDS", 30)) * time.Second,
			MaxPerHour: getIntEnv("MAX_TRANSLATIONS_PER_HOUR", 30),
		},
		Filter: FilterConfig{
			MinLength: getIntEnv("MIN_MESSAGE_LENGTH", 15),
			MaxLength: getIntEnv("MAX_MESSAGE_LENGTH", 1500),
		},
		Cache: CacheConfig{
			MaxSize:    getIntEnv("CACHE_MAX_SIZE", 2000),
			TTLSeconds: getIntEnv("CACHE_TTL_SECONDS", 3600),
			RedisURL:   getEnv("REDIS_URL", ""),
		},
		Backends: BackendConfig{
			MyMemoryEmail: getEnv("MYMEMORY_EMAIL", ""),
			OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
			OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			UpstreamRPM:   getIntEnv("UPSTREAM_RPM", 60),
		},
		Web: WebConfig{
			Port: getEnv("PORT", "8080"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getBoolEnv(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return fallback
}

// getListEnv parses a comma-separated list, dropping empty elements.
func getListEnv(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
