package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/avolkov/mxverify/internal/verifier"
)

// Checker is the part of the validation engine the API depends on.
type Checker interface {
	CheckAll(ctx context.Context, addresses []string) []verifier.Result
}

// NewRouter creates a chi.Mux with all routes, middleware, and handlers
// configured.
func NewRouter(checker Checker, log zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(CorrelationIDMiddleware)
	r.Use(LoggingMiddleware(log))
	r.Use(RecoverMiddleware(log))

	r.Get("/healthz", HealthzHandler())
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/check", CheckHandler(checker))

	return r
}
