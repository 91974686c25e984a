// internal/adapters/out/rtdb/admin_repository_rtdb.go
package rtdb

import (
	"context"
	"encoding/json"
	"strings"

	admindom "flyadmin/internal/domain/admin"
)

// AdminRepositoryRTDB backs the admin gate's single point read against the
// legacy Admins node.
type AdminRepositoryRTDB struct {
	store Store
}

func NewAdminRepositoryRTDB(c *Client) *AdminRepositoryRTDB {
	return &AdminRepositoryRTDB{store: c}
}

var _ admindom.Reader = (*AdminRepositoryRTDB)(nil)

func (r *AdminRepositoryRTDB) Get(ctx context.Context, uid string) (admindom.Record, bool, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return admindom.Record{}, false, nil
	}

	var raw json.RawMessage
	if err := r.store.Get(ctx, adminPath(uid), &raw); err != nil {
		return admindom.Record{}, false, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return admindom.Record{}, false, nil
	}

	var rec admindom.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		// A malformed record still exists; the gate denies it as
		// not-authorized rather than not-configured.
		return admindom.Record{}, true, nil
	}
	return rec, true, nil
}
