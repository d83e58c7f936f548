package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Glanita/traducteur"
	"github.com/sirupsen/logrus"
)

func newTestServer(t *testing.T) (*Server, *traducteur.Stats) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	stats := traducteur.NewStats()
	return NewServer("0", stats, log), stats
}

func TestHandleAlive(t *testing.T) {
	srv, stats := newTestServer(t)
	stats.AddTranslations(7)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "traducteur alive | ") {
		t.Errorf("body = %q, want keep-alive prefix", body)
	}
	if !strings.Contains(body, "translations: 7") {
		t.Errorf("body = %q, want translation count", body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv, stats := newTestServer(t)
	stats.AddTranslations(3)
	stats.AddCacheHit()
	stats.AddError()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"traducteur_translations_total 3",
		"traducteur_cache_hits_total 1",
		"traducteur_errors_total 1",
		"traducteur_rate_limit_blocks_total 0",
		"traducteur_api_calls_total 0",
		"traducteur_uptime_seconds",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
