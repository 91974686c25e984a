// internal/domain/order/repository_port.go
package order

import (
	"context"

	common "flyadmin/internal/domain/common"
)

// Repository is the data access port for orders. UpdateStatus is a
// single-field patch; every other mutation is a full-record overwrite.
type Repository interface {
	Watch(ctx context.Context) (*common.Subscription[[]Order], error)
	GetByID(ctx context.Context, id string) (Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error

	SearchByEmail(ctx context.Context, email string) ([]Order, error)
	ListByStatus(ctx context.Context, status Status) ([]Order, error)

	// TotalRevenue sums pricing.total over all non-cancelled orders.
	TotalRevenue(ctx context.Context) (float64, error)
}
