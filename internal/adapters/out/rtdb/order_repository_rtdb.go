// internal/adapters/out/rtdb/order_repository_rtdb.go
package rtdb

import (
	"context"
	"encoding/json"
	"strings"

	common "flyadmin/internal/domain/common"
	orderdom "flyadmin/internal/domain/order"
)

type OrderRepositoryRTDB struct {
	store  Store
	stream Streamer
}

func NewOrderRepositoryRTDB(c *Client) *OrderRepositoryRTDB {
	return &OrderRepositoryRTDB{store: c, stream: c}
}

var _ orderdom.Repository = (*OrderRepositoryRTDB)(nil)

func decodeOrder(key string, raw json.RawMessage) (orderdom.Order, bool) {
	return decodeRecord(key, raw, func(o *orderdom.Order, id string) { o.ID = id })
}

func (r *OrderRepositoryRTDB) Watch(ctx context.Context) (*common.Subscription[[]orderdom.Order], error) {
	return watchCollection(ctx, r.store, r.stream, pathOrders, decodeOrder)
}

func (r *OrderRepositoryRTDB) GetByID(ctx context.Context, id string) (orderdom.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return orderdom.Order{}, orderdom.ErrNotFound
	}
	var raw json.RawMessage
	if err := r.store.Get(ctx, orderPath(id), &raw); err != nil {
		return orderdom.Order{}, err
	}
	o, ok := decodeChild(id, raw, decodeOrder)
	if !ok {
		return orderdom.Order{}, orderdom.ErrNotFound
	}
	return o, nil
}

// UpdateStatus patches only the status field; administrators may set any
// status from any status.
func (r *OrderRepositoryRTDB) UpdateStatus(ctx context.Context, id string, status orderdom.Status) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return orderdom.ErrInvalidID
	}
	if _, err := orderdom.ParseStatus(string(status)); err != nil {
		return err
	}
	return r.store.Patch(ctx, orderPath(id), map[string]any{"status": string(status)})
}

// Delete removes the order, its line-item node and its entry in the
// user→order index.
func (r *OrderRepositoryRTDB) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return orderdom.ErrInvalidID
	}

	old, oldErr := r.GetByID(ctx, id)

	if err := r.store.Delete(ctx, orderPath(id)); err != nil {
		return err
	}
	if err := r.store.Delete(ctx, orderItemsPath(id)); err != nil {
		return err
	}
	if oldErr == nil && old.UserID != "" {
		return r.store.Delete(ctx, userOrdersPath(old.UserID)+"/"+id)
	}
	return nil
}

// SearchByEmail filters client-side: userEmail is not an indexed child on
// this collection.
func (r *OrderRepositoryRTDB) SearchByEmail(ctx context.Context, email string) ([]orderdom.Order, error) {
	all, err := readCollection(ctx, r.store, pathOrders, decodeOrder)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(email))
	out := make([]orderdom.Order, 0, len(all))
	for _, o := range all {
		if strings.Contains(strings.ToLower(o.UserEmail), needle) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *OrderRepositoryRTDB) ListByStatus(ctx context.Context, status orderdom.Status) ([]orderdom.Order, error) {
	all, err := readCollection(ctx, r.store, pathOrders, decodeOrder)
	if err != nil {
		return nil, err
	}
	out := make([]orderdom.Order, 0, len(all))
	for _, o := range all {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *OrderRepositoryRTDB) TotalRevenue(ctx context.Context) (float64, error) {
	all, err := readCollection(ctx, r.store, pathOrders, decodeOrder)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, o := range all {
		if o.Status == orderdom.StatusCancelled {
			continue
		}
		total += o.Pricing.Total
	}
	return total, nil
}
