package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Glanita/traducteur"
	"github.com/PuerkitoBio/goquery"
)

const defaultGoogleBaseURL = "https://translate.google.com"

// GoogleProvider translates via Google Translate's mobile web endpoint. It is
// the general-purpose fallback: broad language coverage, no credential, but
// an HTML response that has to be scraped rather than a stable API.
type GoogleProvider struct {
	httpClient *http.Client
	baseURL    string
}

// GoogleConfig holds configuration for the Google provider.
type GoogleConfig struct {
	BaseURL string        // endpoint base URL (default: translate.google.com)
	Timeout time.Duration // per-request timeout (default: 10s)
}

// NewGoogleProvider creates a Google mobile-endpoint provider.
func NewGoogleProvider(cfg GoogleConfig) *GoogleProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGoogleBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GoogleProvider{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// Name returns the backend name used in logs and errors.
func (p *GoogleProvider) Name() string {
	return "google"
}

// Translate requests one translation and scrapes it out of the result page.
func (p *GoogleProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	params := url.Values{}
	params.Set("sl", sourceLang)
	params.Set("tl", targetLang)
	params.Set("q", text)

	endpoint := p.baseURL + "/m?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", &traducteur.ProviderError{Provider: p.Name(), Message: "building request", Cause: err}
	}
	req.Header.Set("User-Agent", traducteur.UserAgent())

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", &traducteur.ProviderError{Provider: p.Name(), Message: "request failed", Cause: err, Retryable: true}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &traducteur.ProviderError{
			Provider:  p.Name(),
			Message:   fmt.Sprintf("unexpected status %d", resp.StatusCode),
			Retryable: resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500,
		}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", &traducteur.ProviderError{Provider: p.Name(), Message: "parsing response", Cause: err}
	}

	result := doc.Find("div.result-container")
	if result.Length() == 0 {
		return "", &traducteur.ProviderError{Provider: p.Name(), Message: "no result container in response"}
	}

	translated := strings.TrimSpace(result.First().Text())
	if translated == "" {
		return "", &traducteur.ProviderError{Provider: p.Name(), Message: "empty translation"}
	}

	return translated, nil
}

// Verify GoogleProvider implements Provider
var _ Provider = (*GoogleProvider)(nil)
