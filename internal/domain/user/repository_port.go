// internal/domain/user/repository_port.go
package user

import (
	"context"

	common "flyadmin/internal/domain/common"
)

// Repository is the data access port for user records.
//
// Watch observes the current users collection; WatchLegacy observes the
// legacy admin-account collection mapped into User records. The merged view
// (one record per id, current collection winning) is produced by the query
// layer, not here.
type Repository interface {
	Watch(ctx context.Context) (*common.Subscription[[]User], error)
	WatchLegacy(ctx context.Context) (*common.Subscription[[]User], error)
	GetByID(ctx context.Context, id string) (User, error)
	UpdateRole(ctx context.Context, id string, role Role) error
	Delete(ctx context.Context, id string) error

	// SearchByEmail is a case-sensitive prefix range query on the indexed
	// email field.
	SearchByEmail(ctx context.Context, emailPrefix string) ([]User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
}
