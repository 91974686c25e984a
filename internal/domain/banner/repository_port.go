// internal/domain/banner/repository_port.go
package banner

import (
	"context"

	common "flyadmin/internal/domain/common"
)

type Repository interface {
	Watch(ctx context.Context) (*common.Subscription[[]Banner], error)
	GetByID(ctx context.Context, id string) (Banner, error)
	Create(ctx context.Context, b Banner) (string, error)
	Update(ctx context.Context, id string, b Banner) error
	Delete(ctx context.Context, id string) error
}
