// internal/adapters/out/rtdb/category_repository_rtdb.go
package rtdb

import (
	"context"
	"encoding/json"
	"strings"

	categorydom "flyadmin/internal/domain/category"
	common "flyadmin/internal/domain/common"
)

type CategoryRepositoryRTDB struct {
	store  Store
	stream Streamer
}

func NewCategoryRepositoryRTDB(c *Client) *CategoryRepositoryRTDB {
	return &CategoryRepositoryRTDB{store: c, stream: c}
}

var _ categorydom.Repository = (*CategoryRepositoryRTDB)(nil)

func decodeCategory(key string, raw json.RawMessage) (categorydom.Category, bool) {
	return decodeRecord(key, raw, func(c *categorydom.Category, id string) { c.ID = id })
}

func (r *CategoryRepositoryRTDB) Watch(ctx context.Context) (*common.Subscription[[]categorydom.Category], error) {
	return watchCollection(ctx, r.store, r.stream, pathCategories, decodeCategory)
}

func (r *CategoryRepositoryRTDB) GetByID(ctx context.Context, id string) (categorydom.Category, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return categorydom.Category{}, categorydom.ErrNotFound
	}
	var raw json.RawMessage
	if err := r.store.Get(ctx, categoryPath(id), &raw); err != nil {
		return categorydom.Category{}, err
	}
	c, ok := decodeChild(id, raw, decodeCategory)
	if !ok {
		return categorydom.Category{}, categorydom.ErrNotFound
	}
	return c, nil
}

func (r *CategoryRepositoryRTDB) Create(ctx context.Context, c categorydom.Category) (string, error) {
	if strings.TrimSpace(c.Name) == "" {
		return "", categorydom.ErrInvalidName
	}

	id := strings.TrimSpace(c.ID)
	if id == "" {
		c.ID = ""
		key, err := r.store.Push(ctx, pathCategories, c)
		if err != nil {
			return "", err
		}
		return key, nil
	}
	c.ID = id
	if err := r.store.Set(ctx, categoryPath(id), c); err != nil {
		return "", err
	}
	return id, nil
}

func (r *CategoryRepositoryRTDB) Update(ctx context.Context, id string, c categorydom.Category) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return categorydom.ErrInvalidID
	}
	c.ID = id
	return r.store.Set(ctx, categoryPath(id), c)
}

// Delete removes the category and its product index bucket. Products that
// still reference the category keep their categoryId; readers resolving the
// index skip the missing target.
func (r *CategoryRepositoryRTDB) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return categorydom.ErrInvalidID
	}
	if err := r.store.Delete(ctx, categoryPath(id)); err != nil {
		return err
	}
	return r.store.Delete(ctx, categoryProductsPath(id))
}
