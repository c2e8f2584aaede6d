package ratelimit

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"labdesk/pkg/platform/httputil"
	"labdesk/pkg/requestcontext"
)

var (
	checksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "labdesk_ratelimit_checks_total",
		Help: "Total rate limit checks by outcome (allowed, limited, error)",
	}, []string{"outcome"})
)

// Middleware enforces the request limit per client IP on the wrapped handler.
type Middleware struct {
	limiter *Service
	logger  *slog.Logger
}

// NewMiddleware creates the rate limiting middleware. A nil limiter disables
// limiting entirely (no Redis configured).
func NewMiddleware(limiter *Service, logger *slog.Logger) *Middleware {
	return &Middleware{limiter: limiter, logger: logger}
}

// Limit wraps next with the fixed-window check. Store errors fail open: the
// request proceeds and the error is logged.
func (m *Middleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		key := requestcontext.ClientIP(ctx)
		if key == "" {
			key = r.RemoteAddr
		}

		result, err := m.limiter.Allow(ctx, key)
		if err != nil {
			checksTotal.WithLabelValues("error").Inc()
			if m.logger != nil {
				m.logger.ErrorContext(ctx, "rate limit check failed", "error", err)
			}
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			checksTotal.WithLabelValues("limited").Inc()
			httputil.WriteJSON(w, http.StatusTooManyRequests, httputil.ErrorResponse{
				Code:    "rate_limited",
				Message: "too many checkout requests, retry after the window resets",
			})
			return
		}

		checksTotal.WithLabelValues("allowed").Inc()
		next.ServeHTTP(w, r)
	})
}
