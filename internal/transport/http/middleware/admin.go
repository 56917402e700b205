package middleware

import (
	"net/http"

	"workforce/internal/admingate"
	"workforce/internal/requestctx"
	"workforce/internal/transport/http/api"
)

const adminTokenHeader = "X-Admin-Token"

// RequireAdmin guards administrative writes behind the injected gate. The
// gate sees only the token; it knows nothing about the request.
func RequireAdmin(gate admingate.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := requestctx.GetRequestID(r.Context())
			if gate == nil {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "administrative access is not configured", requestID)
				return
			}
			if err := gate.Authorize(r.Header.Get(adminTokenHeader)); err != nil {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "admin token required", requestID)
				return
			}
			next.ServeHTTP(w, r.WithContext(requestctx.WithAdmin(r.Context())))
		})
	}
}
