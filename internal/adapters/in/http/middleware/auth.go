// internal/adapters/in/http/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"

	usecase "flyadmin/internal/application/usecase"
)

// TokenVerifier is satisfied by *auth.Client; middleware tests substitute a
// fake.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// AdminAuthMiddleware verifies the bearer ID token, runs the admin gate,
// and injects uid/email into the request context. Every admin endpoint
// sits behind it.
type AdminAuthMiddleware struct {
	Verifier TokenVerifier
	Gate     *usecase.AdminGate
}

func (m *AdminAuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.Verifier == nil || m.Gate == nil {
			http.Error(w, "auth middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			http.Error(w, "unauthorized: missing bearer token", http.StatusUnauthorized)
			return
		}
		idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if idToken == "" {
			http.Error(w, "unauthorized: empty bearer token", http.StatusUnauthorized)
			return
		}

		token, err := m.Verifier.VerifyIDToken(r.Context(), idToken)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		uid := strings.TrimSpace(token.UID)
		if uid == "" {
			http.Error(w, "invalid uid in token", http.StatusUnauthorized)
			return
		}

		d := m.Gate.Check(r.Context(), uid)
		if !d.Admitted {
			log.Printf("[auth] uid=%s denied reason=%s", uid, d.Reason)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error":   "forbidden",
				"reason":  string(d.Reason),
				"message": d.Message,
			})
			return
		}

		email := ""
		if raw, ok := token.Claims["email"]; ok {
			email, _ = raw.(string)
		}
		ctx := usecase.WithIdentity(r.Context(), uid, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
