// internal/application/usecase/product_usecase.go
package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	common "flyadmin/internal/domain/common"
	mediadom "flyadmin/internal/domain/media"
	productdom "flyadmin/internal/domain/product"
)

type ProductUsecase struct {
	productRepo productdom.Repository
	variantRepo productdom.VariantRepository
	imageRepo   mediadom.Repository
	now         func() time.Time
}

func NewProductUsecase(
	productRepo productdom.Repository,
	variantRepo productdom.VariantRepository,
	imageRepo mediadom.Repository,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		variantRepo: variantRepo,
		imageRepo:   imageRepo,
		now:         time.Now,
	}
}

// ==============================
// Queries
// ==============================

func (u *ProductUsecase) Watch(ctx context.Context) (*common.Subscription[[]productdom.Product], error) {
	return u.productRepo.Watch(ctx)
}

func (u *ProductUsecase) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	return u.productRepo.GetByID(ctx, strings.TrimSpace(id))
}

func (u *ProductUsecase) WatchVariants(ctx context.Context, productID string) (*common.Subscription[[]productdom.ProductVariant], error) {
	return u.variantRepo.WatchByProduct(ctx, strings.TrimSpace(productID))
}

// ListVariants takes a single snapshot of a product's variants.
func (u *ProductUsecase) ListVariants(ctx context.Context, productID string) ([]productdom.ProductVariant, error) {
	sub, err := u.variantRepo.WatchByProduct(ctx, strings.TrimSpace(productID))
	if err != nil {
		return nil, err
	}
	defer sub.Close()

	select {
	case vs := <-sub.Updates():
		return vs, nil
	case <-sub.Done():
		return nil, sub.Err()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ==============================
// Mutations
// ==============================

func (u *ProductUsecase) Create(ctx context.Context, p productdom.Product) (string, error) {
	if p.CreatedAt == 0 {
		p.CreatedAt = u.now().Unix()
	}
	id, err := u.productRepo.Create(ctx, p)
	if err != nil {
		return "", err
	}
	log.Printf("[product] created id=%s title=%q by=%s", id, p.Title, UIDFromContext(ctx))
	return id, nil
}

func (u *ProductUsecase) Update(ctx context.Context, id string, p productdom.Product) error {
	return u.productRepo.Update(ctx, strings.TrimSpace(id), p)
}

// Delete removes the product and, best effort, its stored images. A failed
// image delete is logged and skipped: the catalog record is already gone
// and a retry would not bring it back.
func (u *ProductUsecase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)

	old, getErr := u.productRepo.GetByID(ctx, id)

	if err := u.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	if getErr == nil && u.imageRepo != nil {
		for _, url := range old.PicURLs {
			if err := u.imageRepo.Delete(ctx, url); err != nil {
				log.Printf("[product] orphaned image url=%s: %v", url, err)
			}
		}
	}
	log.Printf("[product] deleted id=%s by=%s", id, UIDFromContext(ctx))
	return nil
}

func (u *ProductUsecase) CreateVariant(ctx context.Context, v productdom.ProductVariant) (string, error) {
	return u.variantRepo.Create(ctx, v)
}

func (u *ProductUsecase) UpdateVariant(ctx context.Context, id string, v productdom.ProductVariant) error {
	return u.variantRepo.Update(ctx, strings.TrimSpace(id), v)
}

func (u *ProductUsecase) DeleteVariant(ctx context.Context, id, productID string) error {
	return u.variantRepo.Delete(ctx, strings.TrimSpace(id), strings.TrimSpace(productID))
}

// UploadImage stores the blob and appends its URL to the product record.
func (u *ProductUsecase) UploadImage(ctx context.Context, productID string, data []byte, contentType string) (string, error) {
	productID = strings.TrimSpace(productID)

	p, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return "", err
	}

	url, err := u.imageRepo.Upload(ctx, mediadom.FolderProducts, data, contentType)
	if err != nil {
		return "", err
	}

	p.PicURLs = append(p.PicURLs, url)
	if err := u.productRepo.Update(ctx, productID, p); err != nil {
		// Keep storage consistent with the record.
		if derr := u.imageRepo.Delete(ctx, url); derr != nil {
			log.Printf("[product] orphaned image url=%s: %v", url, derr)
		}
		return "", err
	}
	return url, nil
}

// RemoveImage deletes the blob and drops its URL from the product record.
func (u *ProductUsecase) RemoveImage(ctx context.Context, productID, url string) error {
	productID = strings.TrimSpace(productID)

	p, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	kept := p.PicURLs[:0]
	for _, existing := range p.PicURLs {
		if existing != url {
			kept = append(kept, existing)
		}
	}
	p.PicURLs = kept
	if err := u.productRepo.Update(ctx, productID, p); err != nil {
		return err
	}
	return u.imageRepo.Delete(ctx, url)
}
