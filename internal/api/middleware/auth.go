package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dentaltrack/backend/internal/domain/entities"
)

// SessionChecker reports the active session, or nil when logged out
type SessionChecker interface {
	Current(ctx context.Context) (*entities.Session, error)
}

// AuthMiddleware gates /api/* on the presence of the persisted session
// marker. Login and health stay open so a logged-out client can get in.
// This mirrors a demo gate, not a security boundary.
func AuthMiddleware(sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isOpenPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			session, err := sessions.Current(r.Context())
			if err != nil {
				respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to check session"})
				return
			}
			if session == nil {
				respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "login required"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isOpenPath(path string) bool {
	if path == "/health" || path == "/api/auth/login" {
		return true
	}
	return !strings.HasPrefix(path, "/api/")
}

func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}
