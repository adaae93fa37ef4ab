// Package server assembles the request pipeline around the book routes.
package server

import (
	"context"
	"net/http"
	"time"

	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
	"bookcatalog/internal/httpx"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	router    chi.Router
	rateLimit *httpx.RateLimitMiddleware
}

// New builds the HTTP pipeline. Stages run in this order for every request:
// request id, access log, metrics, error fallback, security headers, CORS,
// rate limit (when enabled), body size limit, then route dispatch with the
// route-not-found fallback for anything no route matches.
func New(cfg *config.Config, store book.Store, reg *prometheus.Registry) *Server {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	s := &Server{router: chi.NewRouter()}
	r := s.router

	metrics := httpx.NewMetrics(reg)
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "books_catalog_records",
		Help: "Number of books currently held in the catalog.",
	}, func() float64 {
		n, err := store.Len(context.Background())
		if err != nil {
			return 0
		}
		return float64(n)
	}))

	r.Use(
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		metrics.Middleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
	)
	if cfg.RateLimitRPS > 0 {
		s.rateLimit = httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
		r.Use(s.rateLimit.Middleware)
	}
	r.Use(httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes))

	r.NotFound(httpx.RouteNotFound)
	r.MethodNotAllowed(httpx.RouteNotFound)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if _, err := store.Len(ctx); err != nil {
			http.Error(w, "store not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	bookHandler := book.NewHTTPHandler(book.NewService(store), book.NewResolver(store))
	bookHandler.Routes(r)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Close releases background resources held by the pipeline.
func (s *Server) Close() {
	if s.rateLimit != nil {
		s.rateLimit.Stop()
	}
}
