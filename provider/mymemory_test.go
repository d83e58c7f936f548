package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Glanita/traducteur"
)

func newMyMemoryServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *MyMemoryProvider) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, NewMyMemoryProvider(MyMemoryConfig{BaseURL: server.URL})
}

func TestMyMemoryProvider_Success(t *testing.T) {
	var gotQuery, gotPair string
	_, p := newMyMemoryServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotPair = r.URL.Query().Get("langpair")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"responseData":{"translatedText":"Hello everyone"},"responseStatus":200}`))
	})

	translated, err := p.Translate(context.Background(), "Bonjour tout le monde", "fr", "en")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if translated != "Hello everyone" {
		t.Errorf("translated = %q, want %q", translated, "Hello everyone")
	}
	if gotQuery != "Bonjour tout le monde" {
		t.Errorf("sent q = %q", gotQuery)
	}
	if gotPair != "fr|en" {
		t.Errorf("sent langpair = %q, want fr|en", gotPair)
	}
}

func TestMyMemoryProvider_UnescapesEntities(t *testing.T) {
	_, p := newMyMemoryServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"responseData":{"translatedText":"Tom &amp; Jerry"},"responseStatus":200}`))
	})

	translated, err := p.Translate(context.Background(), "Tom et Jerry ensemble", "fr", "en")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if translated != "Tom & Jerry" {
		t.Errorf("translated = %q, want HTML entities unescaped", translated)
	}
}

func TestMyMemoryProvider_StringStatus(t *testing.T) {
	// The API serves responseStatus as a quoted string on some error paths.
	_, p := newMyMemoryServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"responseData":{"translatedText":""},"responseStatus":"403","responseDetails":"INVALID LANGUAGE PAIR"}`))
	})

	_, err := p.Translate(context.Background(), "Bonjour tout le monde", "fr", "xx")
	var providerErr *traducteur.ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if providerErr.Retryable {
		t.Error("invalid pair should not be retryable")
	}
}

func TestMyMemoryProvider_QuotaWarningInPayload(t *testing.T) {
	_, p := newMyMemoryServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"responseData":{"translatedText":"MYMEMORY WARNING: YOU USED ALL AVAILABLE FREE TRANSLATIONS FOR TODAY"},"responseStatus":200}`))
	})

	if _, err := p.Translate(context.Background(), "Bonjour tout le monde", "fr", "en"); err == nil {
		t.Fatal("quota warning payload should fail the backend")
	}
}

func TestMyMemoryProvider_HTTPError(t *testing.T) {
	_, p := newMyMemoryServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := p.Translate(context.Background(), "Bonjour tout le monde", "fr", "en")
	var providerErr *traducteur.ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if !providerErr.Retryable {
		t.Error("5xx should be retryable")
	}
}

func TestMyMemoryProvider_MalformedBody(t *testing.T) {
	_, p := newMyMemoryServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	})

	if _, err := p.Translate(context.Background(), "Bonjour tout le monde", "fr", "en"); err == nil {
		t.Fatal("malformed body should fail the backend")
	}
}

func TestMyMemoryProvider_EmptyTranslation(t *testing.T) {
	_, p := newMyMemoryServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"responseData":{"translatedText":"   "},"responseStatus":200}`))
	})

	if _, err := p.Translate(context.Background(), "Bonjour tout le monde", "fr", "en"); err == nil {
		t.Fatal("blank translation should fail the backend")
	}
}

func TestLooseStatus_Unmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want looseStatus
	}{
		{`200`, 200},
		{`"200"`, 200},
		{`"429"`, 429},
		{`null`, 0},
	}

	for _, tt := range tests {
		var s looseStatus
		if err := s.UnmarshalJSON([]byte(tt.in)); err != nil {
			t.Errorf("UnmarshalJSON(%s) failed: %v", tt.in, err)
			continue
		}
		if s != tt.want {
			t.Errorf("UnmarshalJSON(%s) = %d, want %d", tt.in, s, tt.want)
		}
	}
}
