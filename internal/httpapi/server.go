// Package httpapi serves the published metrics file to scrape agents
// that cannot read the node's filesystem. It is strictly read-only:
// the monitor run owns the file, this server only hands it out.
package httpapi

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Server struct {
	Logger      *zap.Logger
	MetricsPath string // the file the monitor publishes
}

func NewServer(l *zap.Logger, metricsPath string) *Server {
	return &Server{Logger: l, MetricsPath: metricsPath}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/metrics", s.handleMetrics)
	r.Handle("/internal/metrics", promhttp.Handler())

	return r
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	scrapesTotal.Inc()

	f, err := os.Open(s.MetricsPath)
	if err != nil {
		scrapeErrorsTotal.Inc()
		s.Logger.Warn("metrics_file_unavailable",
			zap.String("path", s.MetricsPath),
			zap.Error(err),
		)
		http.Error(w, "metrics not published yet", http.StatusServiceUnavailable)
		return
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil {
		publishedFileAge.Set(time.Since(info.ModTime()).Seconds())
	}

	w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
	if _, err := io.Copy(w, f); err != nil {
		s.Logger.Warn("metrics_copy_failed", zap.Error(err))
	}
}
