// internal/adapters/out/rtdb/banner_repository_rtdb.go
package rtdb

import (
	"context"
	"encoding/json"
	"strings"

	bannerdom "flyadmin/internal/domain/banner"
	common "flyadmin/internal/domain/common"
)

type BannerRepositoryRTDB struct {
	store  Store
	stream Streamer
}

func NewBannerRepositoryRTDB(c *Client) *BannerRepositoryRTDB {
	return &BannerRepositoryRTDB{store: c, stream: c}
}

var _ bannerdom.Repository = (*BannerRepositoryRTDB)(nil)

func decodeBanner(key string, raw json.RawMessage) (bannerdom.Banner, bool) {
	return decodeRecord(key, raw, func(b *bannerdom.Banner, id string) { b.ID = id })
}

func (r *BannerRepositoryRTDB) Watch(ctx context.Context) (*common.Subscription[[]bannerdom.Banner], error) {
	return watchCollection(ctx, r.store, r.stream, pathBanners, decodeBanner)
}

func (r *BannerRepositoryRTDB) GetByID(ctx context.Context, id string) (bannerdom.Banner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return bannerdom.Banner{}, bannerdom.ErrNotFound
	}
	var raw json.RawMessage
	if err := r.store.Get(ctx, bannerPath(id), &raw); err != nil {
		return bannerdom.Banner{}, err
	}
	b, ok := decodeChild(id, raw, decodeBanner)
	if !ok {
		return bannerdom.Banner{}, bannerdom.ErrNotFound
	}
	return b, nil
}

func (r *BannerRepositoryRTDB) Create(ctx context.Context, b bannerdom.Banner) (string, error) {
	if strings.TrimSpace(b.PicURL) == "" {
		return "", bannerdom.ErrInvalidURL
	}

	id := strings.TrimSpace(b.ID)
	if id == "" {
		b.ID = ""
		key, err := r.store.Push(ctx, pathBanners, b)
		if err != nil {
			return "", err
		}
		return key, nil
	}
	b.ID = id
	if err := r.store.Set(ctx, bannerPath(id), b); err != nil {
		return "", err
	}
	return id, nil
}

func (r *BannerRepositoryRTDB) Update(ctx context.Context, id string, b bannerdom.Banner) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return bannerdom.ErrInvalidID
	}
	b.ID = id
	return r.store.Set(ctx, bannerPath(id), b)
}

func (r *BannerRepositoryRTDB) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return bannerdom.ErrInvalidID
	}
	return r.store.Delete(ctx, bannerPath(id))
}
