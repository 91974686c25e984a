// internal/adapters/out/rtdb/user_repository_rtdb.go
package rtdb

import (
	"context"
	"encoding/json"
	"strings"

	common "flyadmin/internal/domain/common"
	userdom "flyadmin/internal/domain/user"
)

// emailRangeSuffix is the last code point in the Firebase key ordering,
// closing a startAt prefix into a prefix range.
const emailRangeSuffix = "\uf8ff"

type UserRepositoryRTDB struct {
	store  Store
	stream Streamer
}

func NewUserRepositoryRTDB(c *Client) *UserRepositoryRTDB {
	return &UserRepositoryRTDB{store: c, stream: c}
}

var _ userdom.Repository = (*UserRepositoryRTDB)(nil)

func decodeUser(key string, raw json.RawMessage) (userdom.User, bool) {
	u, ok := decodeRecord(key, raw, func(u *userdom.User, id string) { u.ID = id })
	if !ok {
		return userdom.User{}, false
	}
	if u.Role == "" {
		u.Role = userdom.RoleUser
	}
	return u, true
}

// legacyAdminAccount is the shape of the legacy Admins node.
type legacyAdminAccount struct {
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
	CreatedAt int64  `json:"createdAt"`
}

func decodeLegacyUser(key string, raw json.RawMessage) (userdom.User, bool) {
	var rec legacyAdminAccount
	if err := json.Unmarshal(raw, &rec); err != nil {
		return userdom.User{}, false
	}
	role := userdom.RoleUser
	if rec.IsAdmin {
		role = userdom.RoleAdmin
	}
	return userdom.User{
		ID:        key,
		Email:     rec.Email,
		Role:      role,
		CreatedAt: rec.CreatedAt,
	}, true
}

func (r *UserRepositoryRTDB) Watch(ctx context.Context) (*common.Subscription[[]userdom.User], error) {
	return watchCollection(ctx, r.store, r.stream, pathUsers, decodeUser)
}

// WatchLegacy observes the legacy Admins collection mapped into User
// records. Merging with the current collection happens in the query layer,
// where the current collection wins per id.
func (r *UserRepositoryRTDB) WatchLegacy(ctx context.Context) (*common.Subscription[[]userdom.User], error) {
	return watchCollection(ctx, r.store, r.stream, pathAdmins, decodeLegacyUser)
}

func (r *UserRepositoryRTDB) GetByID(ctx context.Context, id string) (userdom.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return userdom.User{}, userdom.ErrNotFound
	}
	var raw json.RawMessage
	if err := r.store.Get(ctx, userPath(id), &raw); err != nil {
		return userdom.User{}, err
	}
	u, ok := decodeChild(id, raw, decodeUser)
	if !ok {
		return userdom.User{}, userdom.ErrNotFound
	}
	return u, nil
}

// UpdateRole patches only the role field.
func (r *UserRepositoryRTDB) UpdateRole(ctx context.Context, id string, role userdom.Role) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return userdom.ErrInvalidID
	}
	if _, err := userdom.ParseRole(string(role)); err != nil {
		return err
	}
	return r.store.Patch(ctx, userPath(id), map[string]any{"role": string(role)})
}

func (r *UserRepositoryRTDB) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return userdom.ErrInvalidID
	}
	return r.store.Delete(ctx, userPath(id))
}

// SearchByEmail runs an indexed prefix range query on the email child.
func (r *UserRepositoryRTDB) SearchByEmail(ctx context.Context, emailPrefix string) ([]userdom.User, error) {
	prefix := strings.TrimSpace(emailPrefix)
	var raw map[string]json.RawMessage
	err := r.store.Query(ctx, pathUsers, Range{
		OrderBy: "email",
		StartAt: prefix,
		EndAt:   prefix + emailRangeSuffix,
	}, &raw)
	if err != nil {
		return nil, err
	}
	return decodeChildren(raw, decodeUser), nil
}

func (r *UserRepositoryRTDB) ListByRole(ctx context.Context, role userdom.Role) ([]userdom.User, error) {
	var raw map[string]json.RawMessage
	err := r.store.Query(ctx, pathUsers, Range{
		OrderBy: "role",
		EqualTo: string(role),
	}, &raw)
	if err != nil {
		return nil, err
	}
	return decodeChildren(raw, decodeUser), nil
}
