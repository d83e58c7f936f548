package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Glanita/traducteur"
)

const defaultMyMemoryBaseURL = "https://api.mymemory.translated.net"

// MyMemoryProvider translates via the MyMemory community translation memory.
// It is the primary backend: free, no credential, but with a daily word quota
// that the chain falls through on.
type MyMemoryProvider struct {
	httpClient *http.Client
	baseURL    string
	email      string
}

// MyMemoryConfig holds configuration for the MyMemory provider.
type MyMemoryConfig struct {
	BaseURL string        // API base URL (default: the public endpoint)
	Email   string        // contact email; raises the free quota when set
	Timeout time.Duration // per-request timeout (default: 10s)
}

// NewMyMemoryProvider creates a MyMemory provider.
func NewMyMemoryProvider(cfg MyMemoryConfig) *MyMemoryProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultMyMemoryBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &MyMemoryProvider{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		email:      cfg.Email,
	}
}

// Name returns the backend name used in logs and errors.
func (p *MyMemoryProvider) Name() string {
	return "mymemory"
}

// myMemoryResponse mirrors the /get response body.
type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus  looseStatus `json:"responseStatus"`
	ResponseDetails string      `json:"responseDetails"`
}

// looseStatus decodes responseStatus, which the API serves as a number on
// success but as a quoted string on some error paths.
type looseStatus int

func (s *looseStatus) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*s = 0
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	*s = looseStatus(n)
	return nil
}

// Translate requests one translation for the given language pair.
func (p *MyMemoryProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", sourceLang+"|"+targetLang)
	if p.email != "" {
		params.Set("de", p.email)
	}

	endpoint := p.baseURL + "/get?" + params.Encode()
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

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &traducteur.ProviderError{Provider: p.Name(), Message: "reading response", Cause: err, Retryable: true}
	}

	var parsed myMemoryResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &traducteur.ProviderError{Provider: p.Name(), Message: "malformed response", Cause: err}
	}

	if parsed.ResponseStatus != 0 && parsed.ResponseStatus != http.StatusOK {
		return "", &traducteur.ProviderError{
			Provider:  p.Name(),
			Message:   fmt.Sprintf("api status %d: %s", int(parsed.ResponseStatus), parsed.ResponseDetails),
			Retryable: int(parsed.ResponseStatus) == http.StatusTooManyRequests,
		}
	}

	translated := strings.TrimSpace(html.UnescapeString(parsed.ResponseData.TranslatedText))
	if translated == "" {
		return "", &traducteur.ProviderError{Provider: p.Name(), Message: "empty translation"}
	}
	// Quota exhaustion arrives inside the payload, not as an HTTP error.
	if strings.Contains(strings.ToUpper(translated), "MYMEMORY WARNING") {
		return "", &traducteur.ProviderError{Provider: p.Name(), Message: "quota exceeded"}
	}

	return translated, nil
}

// Verify MyMemoryProvider implements Provider
var _ Provider = (*MyMemoryProvider)(nil)
