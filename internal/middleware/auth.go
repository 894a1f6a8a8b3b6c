package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"roomledger/internal/domain"
	"roomledger/internal/httputil"
)

// APIKeyAuth validates the X-API-Key header against the configured key using
// a constant-time compare. The health endpoint stays open for probes. An
// empty configured key disables auth entirely (local development).
func APIKeyAuth(apiKey string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" || r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				logger.Warn("rejected request with invalid api key",
					"path", r.URL.Path,
					"method", r.Method,
				)
				authErr := &domain.UnauthorizedError{Message: "invalid api key"}
				httputil.RespondError(w, authErr.StatusCode(), authErr.Error())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
