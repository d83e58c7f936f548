// Command traducteur runs the Discord translation bot.
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Glanita/traducteur"
	"github.com/Glanita/traducteur/cache"
	"github.com/Glanita/traducteur/config"
	"github.com/Glanita/traducteur/discord"
	"github.com/Glanita/traducteur/provider"
	"github.com/Glanita/traducteur/web"
	"github.com/sirupsen/logrus"
)

// sweepInterval paces the rate-limiter cleanup of long-idle users.
const sweepInterval = 15 * time.Minute

func main() {
	logger := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("loading configuration: %v", err)
	}

	setupLogger(logger, cfg.Log)
	logger.Infof("starting %s %s", traducteur.Name, traducteur.FullVersion())

	translationCache, closeCache, err := buildCache(cfg.Cache, logger)
	if err != nil {
		logger.Fatalf("initializing cache: %v", err)
	}
	defer closeCache()

	pipe := traducteur.NewPipeline(buildChain(cfg.Backends, logger),
		traducteur.WithCache(translationCache),
		traducteur.WithFilter(traducteur.FilterConfig{
			MinLength: cfg.Filter.MinLength,
			MaxLength: cfg.Filter.MaxLength,
		}),
		traducteur.WithRateLimiter(traducteur.NewUserRateLimiter(traducteur.RateLimitConfig{
			Cooldown:   cfg.RateLimit.Cooldown,
			MaxPerHour: cfg.RateLimit.MaxPerHour,
		})),
		traducteur.WithTargets(cfg.Discord.Targets),
		traducteur.WithLogger(logger),
	)

	server := web.NewServer(cfg.Web.Port, pipe.Stats(), logger)
	go func() {
		if err := server.Start(); err != nil {
			logger.Errorf("keep-alive server: %v", err)
		}
	}()
	defer server.Shutdown()
	logger.Infof("keep-alive endpoint on :%s", cfg.Web.Port)

	bot, err := discord.New(cfg.Discord.Token, pipe, logger, cfg.Discord.SyncCommands)
	if err != nil {
		logger.Fatalf("creating Discord session: %v", err)
	}
	if err := bot.Open(); err != nil {
		logger.Fatalf("connecting to Discord: %v", err)
	}
	defer bot.Close()

	// Long uptimes accumulate rate-limit state for users who never return.
	sweeper := time.NewTicker(sweepInterval)
	defer sweeper.Stop()
	go func() {
		for range sweeper.C {
			if removed := pipe.Limiter().Sweep(); removed > 0 {
				logger.Debugf("rate limiter sweep removed %d idle users", removed)
			}
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down")
}

func setupLogger(logger *logrus.Logger, cfg config.LogConfig) {
	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}

// buildCache selects Redis when configured, falling back to the bounded
// in-memory LRU.
func buildCache(cfg config.CacheConfig, logger *logrus.Logger) (traducteur.TranslationCache, func(), error) {
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			URL: cfg.RedisURL,
			TTL: cfg.TTLSeconds,
		})
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using Redis translation cache")
		return redisCache, func() { _ = redisCache.Close() }, nil
	}
	return cache.NewLRUCache(cfg.MaxSize, cfg.TTLSeconds), func() {}, nil
}

// buildChain assembles the backend fallback chain: MyMemory first, the Google
// mobile endpoint second, OpenAI last when a key is configured. The HTTP
// backends get a circuit breaker and an upstream throttle; OpenAI gets
// retries for transient API errors.
func buildChain(cfg config.BackendConfig, logger *logrus.Logger) traducteur.Provider {
	throttle := provider.ThrottleConfig{RequestsPerMinute: cfg.UpstreamRPM}

	backends := []traducteur.Provider{
		provider.NewThrottledProvider(
			provider.NewBreakerProvider(
				provider.NewMyMemoryProvider(provider.MyMemoryConfig{Email: cfg.MyMemoryEmail}),
				provider.BreakerConfig{}),
			throttle),
		provider.NewThrottledProvider(
			provider.NewBreakerProvider(
				provider.NewGoogleProvider(provider.GoogleConfig{}),
				provider.BreakerConfig{}),
			throttle),
	}

	if cfg.OpenAIKey != "" {
		backends = append(backends, traducteur.NewRetryableProvider(
			provider.NewOpenAIProvider(provider.OpenAIConfig{
				APIKey: cfg.OpenAIKey,
				Model:  cfg.OpenAIModel,
			}),
			traducteur.DefaultRetryConfig()))
		logger.Info("OpenAI fallback backend enabled")
	}

	return provider.NewChain(logger, backends...)
}
