// internal/domain/inventory/repository_port.go
package inventory

import "context"

type Repository interface {
	Append(ctx context.Context, l Log) (string, error)
	ListByVariant(ctx context.Context, variantID string) ([]Log, error)
}
