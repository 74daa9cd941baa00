package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
)

// RequireBearer returns middleware that rejects requests lacking a
// Bearer-shaped Authorization header before they reach a protected route.
// It checks presence and shape only — token validity is deferred to the
// identity extraction inside each handler, so this gate is a coarse
// pre-filter rather than a security boundary on its own.
func RequireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			writeJSONError(w, http.StatusUnauthorized, "missing authentication token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"error": msg, "success": false})
}
