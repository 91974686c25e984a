// internal/application/usecase/admin_context.go
package usecase

import (
	"context"
	"strings"
)

// context keys for the authenticated operator identity
type ctxIdentityKey string

const (
	ctxKeyUID   ctxIdentityKey = "uid"
	ctxKeyEmail ctxIdentityKey = "email"
)

// WithIdentity injects the verified operator identity. Middleware calls this
// after token verification and the admin gate have both passed.
func WithIdentity(ctx context.Context, uid, email string) context.Context {
	if uid = strings.TrimSpace(uid); uid != "" {
		ctx = context.WithValue(ctx, ctxKeyUID, uid)
	}
	if email = strings.TrimSpace(email); email != "" {
		ctx = context.WithValue(ctx, ctxKeyEmail, email)
	}
	return ctx
}

func UIDFromContext(ctx context.Context) string {
	s, _ := ctx.Value(ctxKeyUID).(string)
	return strings.TrimSpace(s)
}

func EmailFromContext(ctx context.Context) string {
	s, _ := ctx.Value(ctxKeyEmail).(string)
	return strings.TrimSpace(s)
}
