package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/petsparadise/petsparadise/internal/auth"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

// SessionAuthConfig holds configuration for the session auth middleware.
type SessionAuthConfig struct {
	Logger *slog.Logger
	Secret []byte
}

// SessionAuth returns a middleware guarding administrator-only routes.
// It reads the session cookie, verifies the token signature and expiry,
// and injects the admin identity into the request context. Verification
// is stateless: no database lookup, safe to apply to every admin route
// independently. A rejected request never reaches the wrapped handler.
func SessionAuth(cfg SessionAuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "missing_token"),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthError(w, "AUTH_REQUIRED", "Authentication required")
				return
			}

			identity, err := auth.VerifyToken(cookie.Value, cfg.Secret)
			if err != nil {
				reason := "invalid_token"
				if errors.Is(err, auth.ErrTokenExpired) {
					reason = "expired_token"
				}
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", reason),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthError(w, "INVALID_TOKEN", "Invalid or expired token")
				return
			}

			ctx := auth.ContextWithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeAuthError writes a 401 response with a JSON body.
func writeAuthError(w http.ResponseWriter, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": message,
		"code":  code,
	})
}
