package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	h "cloux/internal/delivery/http/helpers"
)

// Recoverer recovers from panics, logs them and answers 500.
func Recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.String("request_id", GetRequestID(r.Context())),
						slog.Any("panic", rvr),
						slog.String("stack", string(debug.Stack())),
					)
					h.WriteJSONError(w, http.StatusInternalServerError, h.MsgInternalError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
