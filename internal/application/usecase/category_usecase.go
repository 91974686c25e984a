// internal/application/usecase/category_usecase.go
package usecase

import (
	"context"
	"log"
	"strings"

	categorydom "flyadmin/internal/domain/category"
	common "flyadmin/internal/domain/common"
)

type CategoryUsecase struct {
	categoryRepo categorydom.Repository
}

func NewCategoryUsecase(categoryRepo categorydom.Repository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo}
}

func (u *CategoryUsecase) Watch(ctx context.Context) (*common.Subscription[[]categorydom.Category], error) {
	return u.categoryRepo.Watch(ctx)
}

func (u *CategoryUsecase) GetByID(ctx context.Context, id string) (categorydom.Category, error) {
	return u.categoryRepo.GetByID(ctx, strings.TrimSpace(id))
}

func (u *CategoryUsecase) Create(ctx context.Context, c categorydom.Category) (string, error) {
	if strings.TrimSpace(c.Name) == "" {
		return "", categorydom.ErrInvalidName
	}
	return u.categoryRepo.Create(ctx, c)
}

func (u *CategoryUsecase) Update(ctx context.Context, id string, c categorydom.Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return categorydom.ErrInvalidName
	}
	return u.categoryRepo.Update(ctx, strings.TrimSpace(id), c)
}

// Delete removes the category and its product index bucket. Products keep
// their categoryId; the feed simply stops resolving it to a name.
func (u *CategoryUsecase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if err := u.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[category] deleted id=%s by=%s", id, UIDFromContext(ctx))
	return nil
}
