package traducteur

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Provider is the interface for translation backends. The provider package
// implements concrete backends and the fallback chain behind it.
type Provider interface {
	// Name identifies the backend in logs and errors.
	Name() string

	// Translate produces one translation for the given language pair. Calls
	// may block on network I/O; implementations honour ctx cancellation.
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// TranslationCache is the pipeline's view of the cache package.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// Pipeline drives the end-to-end flow for one inbound message: filter,
// rate-limit check, language detection, per-target cache-then-chain
// translation, and post-delivery commit. One Pipeline value is shared by all
// message goroutines; its collaborators synchronise internally.
type Pipeline struct {
	provider Provider
	cache    TranslationCache
	filter   *Filter
	limiter  *UserRateLimiter
	stats    *Stats
	detect   DetectFunc
	targets  []string
	log      *logrus.Logger
}

// PipelineOption is a functional option for configuring the Pipeline.
type PipelineOption func(*Pipeline)

// WithCache sets the translation cache. Without one, every translation goes
// to the backend chain.
func WithCache(cache TranslationCache) PipelineOption {
	return func(p *Pipeline) {
		p.cache = cache
	}
}

// WithFilter sets the message filter bounds.
func WithFilter(cfg FilterConfig) PipelineOption {
	return func(p *Pipeline) {
		p.filter = NewFilter(cfg)
	}
}

// WithRateLimiter sets the per-user rate limiter.
func WithRateLimiter(limiter *UserRateLimiter) PipelineOption {
	return func(p *Pipeline) {
		p.limiter = limiter
	}
}

// WithStats sets the shared counter set.
func WithStats(stats *Stats) PipelineOption {
	return func(p *Pipeline) {
		p.stats = stats
	}
}

// WithDetector overrides the language detector.
func WithDetector(detect DetectFunc) PipelineOption {
	return func(p *Pipeline) {
		p.detect = detect
	}
}

// WithTargets sets the configured target languages, in presentation order.
// Codes are normalized on the way in.
func WithTargets(targets []string) PipelineOption {
	return func(p *Pipeline) {
		normalized := make([]string, 0, len(targets))
		for _, lang := range targets {
			normalized = append(normalized, NormalizeLang(lang))
		}
		p.targets = normalized
	}
}

// WithLogger sets the pipeline logger.
func WithLogger(log *logrus.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.log = log
	}
}

// NewPipeline creates a pipeline over the given backend (usually a
// provider.Chain). Defaults: stock filter bounds, stock rate limits, fresh
// stats, whatlanggo detection, en/fr/es targets, silent logger.
func NewPipeline(backend Provider, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		provider: backend,
		filter:   NewFilter(DefaultFilterConfig()),
		limiter:  NewUserRateLimiter(DefaultRateLimitConfig()),
		stats:    NewStats(),
		detect:   Detect,
		targets:  DefaultTargetLanguages,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.log == nil {
		p.log = logrus.New()
		p.log.SetOutput(io.Discard)
	}

	return p
}

// Stats returns the pipeline's counter set for reporting.
func (p *Pipeline) Stats() *Stats {
	return p.stats
}

// Limiter returns the per-user rate limiter, e.g. for periodic sweeps.
func (p *Pipeline) Limiter() *UserRateLimiter {
	return p.limiter
}

// Targets returns the configured target languages in presentation order.
func (p *Pipeline) Targets() []string {
	return p.targets
}

// Process runs one message through the pipeline. It returns nil when the
// message produces no reply: filtered out, rate limited, undetectable
// language, or every target language failed. All drops are silent by design;
// in particular rate-limited users get no cooldown notice.
//
// Process never commits the rate limiter. The caller must deliver the reply
// first and then call Confirm, so users are not penalised for backend or
// delivery failures.
func (p *Pipeline) Process(ctx context.Context, msg Message) *Reply {
	if !p.filter.Eligible(msg) {
		return nil
	}

	if allowed, reason := p.limiter.Check(msg.AuthorID); !allowed {
		p.stats.AddRateLimitBlock()
		p.log.WithFields(logrus.Fields{
			"user":   msg.AuthorID,
			"reason": string(reason),
		}).Debug("rate limited")
		return nil
	}

	text := strings.TrimSpace(msg.Content)
	source := NormalizeLang(p.detect(text))
	if source == LangUnknown {
		p.log.WithField("user", msg.AuthorID).Debug("language detection failed")
		return nil
	}

	targets := p.targetSet(source)
	if len(targets) == 0 {
		return nil
	}

	// Per-target fan-out. A failed language is omitted, never fatal to its
	// siblings; partial results are acceptable.
	results := make([]string, len(targets))
	failed := make([]error, len(targets))

	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target string) {
			defer wg.Done()
			results[i], failed[i] = p.translateOne(ctx, text, source, target)
		}(i, target)
	}
	wg.Wait()

	entries := make([]Translation, 0, len(targets))
	for i, target := range targets {
		if err := failed[i]; err != nil {
			p.stats.AddError()
			var exhausted *ChainExhaustedError
			if !errors.As(err, &exhausted) {
				p.log.WithField("target", target).Warnf("translation failed: %v", err)
			}
			continue
		}
		entries = append(entries, Translation{
			Lang: target,
			Flag: LanguageFlag(target),
			Name: LanguageName(target),
			Text: truncate(results[i], MaxReplyLength),
		})
	}

	if len(entries) == 0 {
		return nil
	}

	return &Reply{SourceLang: source, Entries: entries}
}

// Confirm records a successfully delivered reply: commits the user's rate
// limit and counts the delivered per-language translations.
func (p *Pipeline) Confirm(userID string, delivered int) {
	p.limiter.Commit(userID)
	p.stats.AddTranslations(delivered)
}

// targetSet returns the languages to translate into. A source inside the
// configured set is excluded from it; a source outside the set (say German
// input into an en/fr/es bot) translates into every configured target.
func (p *Pipeline) targetSet(source string) []string {
	configured := false
	for _, lang := range p.targets {
		if lang == source {
			configured = true
			break
		}
	}
	if !configured {
		return p.targets
	}

	targets := make([]string, 0, len(p.targets)-1)
	for _, lang := range p.targets {
		if lang != source {
			targets = append(targets, lang)
		}
	}
	return targets
}

// translateOne serves one language pair from the cache or, on a miss, from
// the backend chain, storing chain results back into the cache.
func (p *Pipeline) translateOne(ctx context.Context, text, source, target string) (string, error) {
	key := CacheKey(HashText(text), source, target)

	if p.cache != nil {
		if cached, ok := p.cache.Get(key); ok {
			p.stats.AddCacheHit()
			return cached, nil
		}
	}

	translated, err := p.provider.Translate(ctx, text, source, target)
	if err != nil {
		return "", err
	}

	p.stats.AddAPICall()
	if p.cache != nil {
		if err := p.cache.Set(key, translated); err != nil {
			p.log.Warnf("cache store failed: %v", err)
		}
	}
	return translated, nil
}

// truncate cuts text to at most limit runes, marking the cut with an
// ellipsis.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-3]) + "..."
}
