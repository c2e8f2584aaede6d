// Package requestid assigns a correlation ID to each request. Incoming
// X-Request-ID headers are honored so IDs survive proxy hops; otherwise a
// fresh UUID is generated.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"labdesk/pkg/requestcontext"
)

// Header is the request/response header carrying the correlation ID.
const Header = "X-Request-ID"

// Middleware injects the correlation ID into the context and echoes it on the
// response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
