package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/propwise/manager-api/internal/services"
	"github.com/propwise/manager-api/internal/utils"
)

// RateLimitMiddleware applies the per-IP and global request budgets to
// every route it wraps. Counter state lives in the store, so the limit
// holds across replicas.
func RateLimitMiddleware(limiter services.RateLimiterService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := limiter.CheckRequestRateLimit(r.Context(), ClientIP(r)); err != nil {
				utils.RespondError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP prefers the first X-Forwarded-For hop, falling back to the
// connection's remote address.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first, _, ok := strings.Cut(fwd, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(fwd)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
