package provider

import (
	"context"
	"fmt"
	"sync"
)

// MockProvider is a deterministic in-memory backend for tests. Translations
// can be seeded per text; unseeded texts come back bracketed with the target
// language so assertions can tell languages apart.
type MockProvider struct {
	mu           sync.Mutex
	Translations map[string]string // seeded source text → translation
	Err          error             // when set, every call fails with it
	callCount    int
}

// NewMockProvider creates an empty mock provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{Translations: make(map[string]string)}
}

// Name returns the backend name used in logs and errors.
func (m *MockProvider) Name() string {
	return "mock"
}

// Translate returns the seeded or synthesised translation.
func (m *MockProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callCount++
	if m.Err != nil {
		return "", m.Err
	}
	if translated, ok := m.Translations[text]; ok {
		return translated, nil
	}
	return fmt.Sprintf("[%s] %s", targetLang, text), nil
}

// CallCount returns how many times Translate was invoked.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and any forced error.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.Err = nil
}

// Verify MockProvider implements Provider
var _ Provider = (*MockProvider)(nil)
