// internal/application/usecase/user_usecase_test.go
package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	common "flyadmin/internal/domain/common"
	userdom "flyadmin/internal/domain/user"
)

type fakeUserRepo struct {
	roles   map[string]userdom.Role
	deleted []string
}

func (f *fakeUserRepo) Watch(ctx context.Context) (*common.Subscription[[]userdom.User], error) {
	return common.NewSubscription[[]userdom.User](), nil
}

func (f *fakeUserRepo) WatchLegacy(ctx context.Context) (*common.Subscription[[]userdom.User], error) {
	return common.NewSubscription[[]userdom.User](), nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (userdom.User, error) {
	role, ok := f.roles[id]
	if !ok {
		return userdom.User{}, userdom.ErrNotFound
	}
	return userdom.User{ID: id, Role: role}, nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id string, role userdom.Role) error {
	f.roles[id] = role
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeUserRepo) SearchByEmail(ctx context.Context, prefix string) ([]userdom.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) ListByRole(ctx context.Context, role userdom.Role) ([]userdom.User, error) {
	return nil, nil
}

func TestUserSetRole(t *testing.T) {
	repo := &fakeUserRepo{roles: map[string]userdom.Role{"u2": userdom.RoleUser}}
	u := NewUserUsecase(repo)
	ctx := WithIdentity(context.Background(), "u1", "ops@example.com")

	require.NoError(t, u.SetRole(ctx, "u2", "admin"))
	assert.Equal(t, userdom.RoleAdmin, repo.roles["u2"])

	err := u.SetRole(ctx, "u2", "overlord")
	assert.ErrorIs(t, err, userdom.ErrInvalidRole)
}

func TestUserCannotDemoteSelf(t *testing.T) {
	repo := &fakeUserRepo{roles: map[string]userdom.Role{"u1": userdom.RoleAdmin}}
	u := NewUserUsecase(repo)
	ctx := WithIdentity(context.Background(), "u1", "ops@example.com")

	err := u.SetRole(ctx, "u1", "user")
	assert.ErrorIs(t, err, userdom.ErrSelfDemotion)
	assert.Equal(t, userdom.RoleAdmin, repo.roles["u1"])

	// Re-granting admin to yourself is harmless.
	assert.NoError(t, u.SetRole(ctx, "u1", "admin"))
}

func TestUserCannotDeleteSelf(t *testing.T) {
	repo := &fakeUserRepo{roles: map[string]userdom.Role{}}
	u := NewUserUsecase(repo)
	ctx := WithIdentity(context.Background(), "u1", "ops@example.com")

	err := u.Delete(ctx, "u1")
	assert.ErrorIs(t, err, userdom.ErrSelfDeletion)
	assert.Empty(t, repo.deleted)

	require.NoError(t, u.Delete(ctx, "u2"))
	assert.Equal(t, []string{"u2"}, repo.deleted)
}
