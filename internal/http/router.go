// Package http wires the public router: middleware chain, health and metrics
// endpoints, and the checkout surface.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkouthandler "labdesk/internal/checkout/handler"
	"labdesk/internal/ratelimit"
	"labdesk/pkg/platform/middleware/metadata"
	"labdesk/pkg/platform/middleware/requestid"
	"labdesk/pkg/platform/middleware/requesttime"
)

// NewRouter assembles the full middleware chain and mounts all endpoints.
// The rate limiter applies to the checkout surface only, not to health or
// metrics probes.
func NewRouter(handler *checkouthandler.Handler, limiter *ratelimit.Middleware) http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(limiter.Limit)
		handler.Register(r)
	})

	return r
}
