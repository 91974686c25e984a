// internal/domain/category/repository_port.go
package category

import (
	"context"

	common "flyadmin/internal/domain/common"
)

type Repository interface {
	Watch(ctx context.Context) (*common.Subscription[[]Category], error)
	GetByID(ctx context.Context, id string) (Category, error)
	Create(ctx context.Context, c Category) (string, error)
	Update(ctx context.Context, id string, c Category) error
	Delete(ctx context.Context, id string) error
}
