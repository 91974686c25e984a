// internal/domain/product/repository_port.go
package product

import (
	"context"

	common "flyadmin/internal/domain/common"
)

// Repository is the data access port for the products collection.
//
// Watch opens an independent live subscription delivering the full decoded
// collection on every remote change; the caller owns the handle and must
// Close it. Create maintains the category index; Update moves the index
// entry when categoryId changed (read-before-write, best effort); Delete
// cascades to the product's variants and both index buckets.
type Repository interface {
	Watch(ctx context.Context) (*common.Subscription[[]Product], error)
	GetByID(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, p Product) (string, error)
	Update(ctx context.Context, id string, p Product) error
	Delete(ctx context.Context, id string) error
}

// VariantRepository is the data access port for product variants and the
// product→variant index.
type VariantRepository interface {
	WatchByProduct(ctx context.Context, productID string) (*common.Subscription[[]ProductVariant], error)
	GetByID(ctx context.Context, id string) (ProductVariant, error)
	Create(ctx context.Context, v ProductVariant) (string, error)
	Update(ctx context.Context, id string, v ProductVariant) error
	Delete(ctx context.Context, id, productID string) error
}
