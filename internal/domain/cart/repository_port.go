// internal/domain/cart/repository_port.go
package cart

import "context"

type Repository interface {
	// Get reads a user's full cart. An absent cart is an empty slice.
	Get(ctx context.Context, userID string) ([]Item, error)
	Clear(ctx context.Context, userID string) error
}
