// internal/application/usecase/brand_usecase.go
package usecase

import (
	"context"
	"strings"

	branddom "flyadmin/internal/domain/brand"
	common "flyadmin/internal/domain/common"
)

type BrandUsecase struct {
	brandRepo branddom.Repository
}

func NewBrandUsecase(brandRepo branddom.Repository) *BrandUsecase {
	return &BrandUsecase{brandRepo: brandRepo}
}

func (u *BrandUsecase) Watch(ctx context.Context) (*common.Subscription[[]branddom.Brand], error) {
	return u.brandRepo.Watch(ctx)
}

func (u *BrandUsecase) GetByID(ctx context.Context, id string) (branddom.Brand, error) {
	return u.brandRepo.GetByID(ctx, strings.TrimSpace(id))
}

func (u *BrandUsecase) Create(ctx context.Context, b branddom.Brand) (string, error) {
	if strings.TrimSpace(b.Name) == "" {
		return "", branddom.ErrInvalidName
	}
	return u.brandRepo.Create(ctx, b)
}

func (u *BrandUsecase) Update(ctx context.Context, id string, b branddom.Brand) error {
	if strings.TrimSpace(b.Name) == "" {
		return branddom.ErrInvalidName
	}
	return u.brandRepo.Update(ctx, strings.TrimSpace(id), b)
}

func (u *BrandUsecase) Delete(ctx context.Context, id string) error {
	return u.brandRepo.Delete(ctx, strings.TrimSpace(id))
}
