// internal/adapters/out/rtdb/cart_repository_rtdb.go
package rtdb

import (
	"context"
	"encoding/json"
	"strings"

	cartdom "flyadmin/internal/domain/cart"
)

type CartRepositoryRTDB struct {
	store Store
}

func NewCartRepositoryRTDB(c *Client) *CartRepositoryRTDB {
	return &CartRepositoryRTDB{store: c}
}

var _ cartdom.Repository = (*CartRepositoryRTDB)(nil)

// Get reads carts/<userId>; entries are keyed by variant id.
func (r *CartRepositoryRTDB) Get(ctx context.Context, userID string) ([]cartdom.Item, error) {
	userID = strings.TrimSpace(userID)
	var raw map[string]json.RawMessage
	if err := r.store.Get(ctx, cartPath(userID), &raw); err != nil {
		return nil, err
	}
	return decodeChildren(raw, func(key string, raw json.RawMessage) (cartdom.Item, bool) {
		var it cartdom.Item
		if err := json.Unmarshal(raw, &it); err != nil {
			return cartdom.Item{}, false
		}
		it.VariantID = key
		return it, true
	}), nil
}

func (r *CartRepositoryRTDB) Clear(ctx context.Context, userID string) error {
	return r.store.Delete(ctx, cartPath(strings.TrimSpace(userID)))
}
