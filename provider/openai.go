package provider

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"context"

	"github.com/Glanita/traducteur"
	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider using OpenAI chat completions. It is an
// optional last-resort backend, enabled only when an API key is configured.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key
	Model       string  // model to use (default: "gpt-4o-mini")
	Temperature float32 // generation temperature (default: 0.3)
	BaseURL     string  // custom base URL (optional)
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Name returns the backend name used in logs and errors.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Translate translates one text using a chat completion.
func (p *OpenAIProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	systemPrompt := buildTranslationPrompt(sourceLang, targetLang)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: p.temperature,
	})
	if err != nil {
		return "", &traducteur.ProviderError{
			Provider:  p.Name(),
			Message:   "chat completion failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return "", &traducteur.ProviderError{Provider: p.Name(), Message: "no choices in response", Retryable: true}
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", &traducteur.ProviderError{Provider: p.Name(), Message: "empty translation"}
	}

	return translated, nil
}

// buildTranslationPrompt instructs the model to act as a bare translation
// engine so no framing text leaks into the reply.
func buildTranslationPrompt(sourceLang, targetLang string) string {
	var b strings.Builder
	b.WriteString("You are a translation engine. Translate the user's message from ")
	b.WriteString(traducteur.LanguageName(sourceLang))
	b.WriteString(" to ")
	b.WriteString(traducteur.LanguageName(targetLang))
	b.WriteString(". Preserve tone and meaning. Output only the translation, with no quotes or commentary.")
	return b.String()
}

// isRetryableError classifies OpenAI API failures.
func isRetryableError(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return false
}

// Verify OpenAIProvider implements Provider
var _ Provider = (*OpenAIProvider)(nil)
