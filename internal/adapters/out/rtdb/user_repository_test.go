// internal/adapters/out/rtdb/user_repository_test.go
package rtdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userdom "flyadmin/internal/domain/user"
)

func newUserRepo(m *memStore) *UserRepositoryRTDB {
	return &UserRepositoryRTDB{store: m, stream: m}
}

func seedUser(t *testing.T, m *memStore, id, email string, role userdom.Role) {
	t.Helper()
	require.NoError(t, m.Set(context.Background(), userPath(id), map[string]any{
		"email":     email,
		"role":      string(role),
		"createdAt": 1700000000,
	}))
}

func TestUserSearchByEmailPrefix(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	repo := newUserRepo(m)

	seedUser(t, m, "u1", "alice@example.com", userdom.RoleUser)
	seedUser(t, m, "u2", "alicia@example.com", userdom.RoleUser)
	seedUser(t, m, "u3", "bob@example.com", userdom.RoleAdmin)

	got, err := repo.SearchByEmail(ctx, "ali")
	require.NoError(t, err)
	require.Len(t, got, 2)

	emails := []string{got[0].Email, got[1].Email}
	assert.Contains(t, emails, "alice@example.com")
	assert.Contains(t, emails, "alicia@example.com")
}

func TestUserListByRole(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	repo := newUserRepo(m)

	seedUser(t, m, "u1", "alice@example.com", userdom.RoleUser)
	seedUser(t, m, "u2", "bob@example.com", userdom.RoleAdmin)

	admins, err := repo.ListByRole(ctx, userdom.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "u2", admins[0].ID)
}

func TestUserUpdateRoleIsAPatch(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	repo := newUserRepo(m)

	seedUser(t, m, "u1", "alice@example.com", userdom.RoleUser)
	require.NoError(t, repo.UpdateRole(ctx, "u1", userdom.RoleAdmin))

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, userdom.RoleAdmin, got.Role)
	// A patch must not clobber sibling fields.
	assert.Equal(t, "alice@example.com", got.Email)

	err = repo.UpdateRole(ctx, "u1", userdom.Role("superuser"))
	assert.ErrorIs(t, err, userdom.ErrInvalidRole)
}

func TestUserRoleDefaultsOnDecode(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	repo := newUserRepo(m)

	require.NoError(t, m.Set(ctx, userPath("u1"), map[string]any{"email": "old@example.com"}))

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, userdom.RoleUser, got.Role)
}

func TestLegacyAdminsMapToUsers(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	repo := newUserRepo(m)

	require.NoError(t, m.Set(ctx, adminPath("u9"), map[string]any{
		"email":     "root@example.com",
		"isAdmin":   true,
		"createdAt": 1600000000,
	}))

	sub, err := repo.WatchLegacy(ctx)
	require.NoError(t, err)
	defer sub.Close()

	snap := waitSnapshot(t, sub.Updates())
	require.Len(t, snap, 1)
	assert.Equal(t, "u9", snap[0].ID)
	assert.Equal(t, userdom.RoleAdmin, snap[0].Role)
	assert.Equal(t, int64(1600000000), snap[0].CreatedAt)
}
