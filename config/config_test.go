package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing DISCORD_TOKEN")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Discord.Token != "test-token" {
		t.Errorf("Token = %q", cfg.Discord.Token)
	}
	if !cfg.Discord.SyncCommands {
		t.Error("SyncCommands should default to true")
	}
	if !reflect.DeepEqual(cfg.Discord.Targets, []string{"en", "fr", "es"}) {
		t.Errorf("Targets = %v", cfg.Discord.Targets)
	}
	if cfg.RateLimit.Cooldown != 30*time.Second {
		t.Errorf("Cooldown = %v", cfg.RateLimit.Cooldown)
	}
	if cfg.RateLimit.MaxPerHour != 30 {
		t.Errorf("MaxPerHour = %d", cfg.RateLimit.MaxPerHour)
	}
	if cfg.Filter.MinLength != 15 || cfg.Filter.MaxLength != 1500 {
		t.Errorf("Filter bounds = %d/%d", cfg.Filter.MinLength, cfg.Filter.MaxLength)
	}
	if cfg.Cache.MaxSize != 2000 || cfg.Cache.TTLSeconds != 3600 {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Backends.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %q", cfg.Backends.OpenAIModel)
	}
	if cfg.Web.Port != "8080" {
		t.Errorf("Port = %q", cfg.Web.Port)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("TARGET_LANGUAGES", "de, it ,,pt")
	t.Setenv("COOLDOWN_SECONDS", "5")
	t.Setenv("SYNC_COMMANDS", "false")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if !reflect.DeepEqual(cfg.Discord.Targets, []string{"de", "it", "pt"}) {
		t.Errorf("Targets = %v", cfg.Discord.Targets)
	}
	if cfg.RateLimit.Cooldown != 5*time.Second {
		t.Errorf("Cooldown = %v", cfg.RateLimit.Cooldown)
	}
	if cfg.Discord.SyncCommands {
		t.Error("SyncCommands should be false")
	}
	if cfg.Cache.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("RedisURL = %q", cfg.Cache.RedisURL)
	}
}

func TestGetIntEnv_Malformed(t *testing.T) {
	t.Setenv("BAD_INT", "not-a-number")
	if got := getIntEnv("BAD_INT", 42); got != 42 {
		t.Errorf("getIntEnv = %d, want fallback 42", got)
	}
}

func TestGetBoolEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"YES", true},
		{"on", true},
		{"0", false},
		{"false", false},
		{"off", false},
		{"garbage", true}, // fallback
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("BOOL_TEST", tt.value)
			if got := getBoolEnv("BOOL_TEST", true); got != tt.want {
				t.Errorf("getBoolEnv(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
