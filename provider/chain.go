package provider

import (
	"context"
	"io"

	"github.com/Glanita/traducteur"
	"github.com/sirupsen/logrus"
)

// Chain tries backends in a fixed priority order. Each attempt is
// independent: a failure is logged and the chain falls through to the next
// backend; when every backend fails the chain returns a ChainExhaustedError.
// Adding a provider never touches the fall-through logic.
type Chain struct {
	providers []Provider
	log       *logrus.Logger
}

// NewChain creates a fallback chain over the given providers, tried in
// argument order. A nil logger silences chain logging.
func NewChain(log *logrus.Logger, providers ...Provider) *Chain {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Chain{providers: providers, log: log}
}

// Name returns the backend name used in logs and errors.
func (c *Chain) Name() string {
	return "chain"
}

// Len returns the number of backends in the chain.
func (c *Chain) Len() int {
	return len(c.providers)
}

// Translate tries each backend until one succeeds. Intermediate failures log
// at warning level; exhausting the whole chain logs at error level.
func (c *Chain) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	var lastErr error

	for _, p := range c.providers {
		translated, err := p.Translate(ctx, text, sourceLang, targetLang)
		if err == nil {
			return translated, nil
		}
		lastErr = err
		c.log.WithFields(logrus.Fields{
			"provider": p.Name(),
			"source":   sourceLang,
			"target":   targetLang,
		}).Warnf("backend failed: %v", err)
	}

	c.log.WithFields(logrus.Fields{
		"source": sourceLang,
		"target": targetLang,
	}).Error("all translation backends exhausted")

	return "", &traducteur.ChainExhaustedError{
		SourceLang: sourceLang,
		TargetLang: targetLang,
		Last:       lastErr,
	}
}

// Verify Chain implements Provider
var _ Provider = (*Chain)(nil)
