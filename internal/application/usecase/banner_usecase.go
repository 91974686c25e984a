// internal/application/usecase/banner_usecase.go
package usecase

import (
	"context"
	"strings"

	bannerdom "flyadmin/internal/domain/banner"
	common "flyadmin/internal/domain/common"
	mediadom "flyadmin/internal/domain/media"
)

type BannerUsecase struct {
	bannerRepo bannerdom.Repository
	imageRepo  mediadom.Repository
}

func NewBannerUsecase(bannerRepo bannerdom.Repository, imageRepo mediadom.Repository) *BannerUsecase {
	return &BannerUsecase{bannerRepo: bannerRepo, imageRepo: imageRepo}
}

func (u *BannerUsecase) Watch(ctx context.Context) (*common.Subscription[[]bannerdom.Banner], error) {
	return u.bannerRepo.Watch(ctx)
}

// CreateFromImage uploads the image and registers a banner pointing at it.
func (u *BannerUsecase) CreateFromImage(ctx context.Context, data []byte, contentType string) (string, error) {
	url, err := u.imageRepo.Upload(ctx, mediadom.FolderBanners, data, contentType)
	if err != nil {
		return "", err
	}

	b, err := bannerdom.New("", url)
	if err != nil {
		return "", err
	}
	id, err := u.bannerRepo.Create(ctx, b)
	if err != nil {
		// The record never existed; do not leave the blob behind.
		_ = u.imageRepo.Delete(ctx, url)
		return "", err
	}
	return id, nil
}

func (u *BannerUsecase) SetActive(ctx context.Context, id string, active bool) error {
	b, err := u.bannerRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	b.Active = active
	return u.bannerRepo.Update(ctx, b.ID, b)
}

func (u *BannerUsecase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)

	b, getErr := u.bannerRepo.GetByID(ctx, id)
	if err := u.bannerRepo.Delete(ctx, id); err != nil {
		return err
	}
	if getErr == nil && b.PicURL != "" {
		return u.imageRepo.Delete(ctx, b.PicURL)
	}
	return nil
}
