package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"loadguard/internal/platform/middleware"
)

// NewRouter wires all public endpoints with middleware. The verify endpoints
// sit behind the bearer-token gate when a validator is configured; health and
// metrics stay open.
func NewRouter(h *Handler, validator middleware.TokenValidator, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)

	r.Get("/healthz", h.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if validator != nil {
			r.Use(middleware.RequireAuth(validator, logger))
		}
		r.Post("/verify", h.handleVerify)
		r.Post("/verify/batch", h.handleVerifyBatch)
	})

	return r
}
