package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	h "cloux/internal/delivery/http/helpers"
	"cloux/internal/domain"
)

// RequireAdmin returns a wrapper that checks the Bearer credential against the admin secret.
// If the credential is missing, malformed or wrong, it responds with 401 and does not call next.
func RequireAdmin(verifier domain.SecretVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.MsgUnauthorized)
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if err := verifier.Verify(token); err != nil {
				logger.WarnContext(r.Context(), "admin access denied",
					"path", r.URL.Path,
					"request_id", GetRequestID(r.Context()),
				)
				h.WriteJSONError(w, http.StatusUnauthorized, h.MsgUnauthorized)
				return
			}
			next(w, r)
		}
	}
}
