package web

import (
	"github.com/Glanita/traducteur"
	"github.com/prometheus/client_golang/prometheus"
)

// statsCollector exposes the pipeline counters as Prometheus metrics without
// double-counting: the Stats value stays the single source of truth and each
// scrape reads a fresh snapshot.
type statsCollector struct {
	stats *traducteur.Stats

	translations    *prometheus.Desc
	cacheHits       *prometheus.Desc
	rateLimitBlocks *prometheus.Desc
	errors          *prometheus.Desc
	apiCalls        *prometheus.Desc
	uptime          *prometheus.Desc
}

func newStatsCollector(stats *traducteur.Stats) *statsCollector {
	return &statsCollector{
		stats: stats,
		translations: prometheus.NewDesc("traducteur_translations_total",
			"Delivered per-language translations.", nil, nil),
		cacheHits: prometheus.NewDesc("traducteur_cache_hits_total",
			"Translations served from the cache.", nil, nil),
		rateLimitBlocks: prometheus.NewDesc("traducteur_rate_limit_blocks_total",
			"Messages dropped by the per-user rate limiter.", nil, nil),
		errors: prometheus.NewDesc("traducteur_errors_total",
			"Exhausted backend chains and failed deliveries.", nil, nil),
		apiCalls: prometheus.NewDesc("traducteur_api_calls_total",
			"Translations served by a backend.", nil, nil),
		uptime: prometheus.NewDesc("traducteur_uptime_seconds",
			"Seconds since process start.", nil, nil),
	}
}

func (c *statsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.translations
	ch <- c.cacheHits
	ch <- c.rateLimitBlocks
	ch <- c.errors
	ch <- c.apiCalls
	ch <- c.uptime
}

func (c *statsCollector) Collect(ch chan<- prometheus.Metric) {
	snap := c.stats.Snapshot()
	ch <- prometheus.MustNewConstMetric(c.translations, prometheus.CounterValue, float64(snap.Translations))
	ch <- prometheus.MustNewConstMetric(c.cacheHits, prometheus.CounterValue, float64(snap.CacheHits))
	ch <- prometheus.MustNewConstMetric(c.rateLimitBlocks, prometheus.CounterValue, float64(snap.RateLimitBlocks))
	ch <- prometheus.MustNewConstMetric(c.errors, prometheus.CounterValue, float64(snap.Errors))
	ch <- prometheus.MustNewConstMetric(c.apiCalls, prometheus.CounterValue, float64(snap.APICalls))
	ch <- prometheus.MustNewConstMetric(c.uptime, prometheus.GaugeValue, snap.Uptime.Seconds())
}
