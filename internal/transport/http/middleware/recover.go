package middleware

import (
	"log/slog"
	"net/http"

	"workforce/internal/requestctx"
	"workforce/internal/transport/http/api"
)

func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				requestID := requestctx.GetRequestID(r.Context())
				slog.Error("panic recovered", "requestId", requestID, "panic", recovered)
				api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", requestID)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
