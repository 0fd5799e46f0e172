package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Self-metrics for the exporter process itself, served at
// /internal/metrics. These describe the exporter, never the monitored
// targets; target metrics only ever come from the published file.
var (
	scrapesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "monexport",
		Name:      "scrapes_total",
		Help:      "Number of requests served for the published metrics file.",
	})

	scrapeErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "monexport",
		Name:      "scrape_errors_total",
		Help:      "Number of scrape requests that failed because the file was unreadable.",
	})

	publishedFileAge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "monexport",
		Name:      "published_file_age_seconds",
		Help:      "Age of the published metrics file at the last successful scrape.",
	})
)
