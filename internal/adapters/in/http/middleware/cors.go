// internal/adapters/in/http/middleware/cors.go
package middleware

import (
	"net/http"
	"os"
	"strings"
)

// CORS allows the admin frontend origin. FLYADMIN_ALLOWED_ORIGIN overrides
// the default for local development.
func CORS(next http.Handler) http.Handler {
	origin := strings.TrimSpace(os.Getenv("FLYADMIN_ALLOWED_ORIGIN"))
	if origin == "" {
		origin = "*"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
		w.Header().Set("Access-Control-Max-Age", "600")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
