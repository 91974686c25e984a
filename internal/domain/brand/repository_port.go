// internal/domain/brand/repository_port.go
package brand

import (
	"context"

	common "flyadmin/internal/domain/common"
)

type Repository interface {
	Watch(ctx context.Context) (*common.Subscription[[]Brand], error)
	GetByID(ctx context.Context, id string) (Brand, error)
	Create(ctx context.Context, b Brand) (string, error)
	Update(ctx context.Context, id string, b Brand) error
	Delete(ctx context.Context, id string) error
}
