// internal/application/usecase/inventory_usecase.go
package usecase

import (
	"context"
	"log"
	"strings"

	inventorydom "flyadmin/internal/domain/inventory"
	productdom "flyadmin/internal/domain/product"
)

type InventoryUsecase struct {
	logRepo     inventorydom.Repository
	variantRepo productdom.VariantRepository
}

func NewInventoryUsecase(logRepo inventorydom.Repository, variantRepo productdom.VariantRepository) *InventoryUsecase {
	return &InventoryUsecase{logRepo: logRepo, variantRepo: variantRepo}
}

// Adjust moves variant stock by delta and appends the audit log entry.
// The two writes are sequential; the log is the source of truth for
// reconciling a crash between them.
func (u *InventoryUsecase) Adjust(ctx context.Context, variantID string, delta int, reason, refID string) (int, error) {
	entry, err := inventorydom.NewLog(variantID, delta, reason, refID)
	if err != nil {
		return 0, err
	}

	v, err := u.variantRepo.GetByID(ctx, entry.VariantID)
	if err != nil {
		return 0, err
	}

	stock := v.Stock + delta
	if stock < 0 {
		return 0, inventorydom.ErrInsufficientStock
	}
	v.Stock = stock
	if err := u.variantRepo.Update(ctx, v.ID, v); err != nil {
		return 0, err
	}

	if _, err := u.logRepo.Append(ctx, entry); err != nil {
		return 0, err
	}
	log.Printf("[inventory] variant=%s delta=%+d stock=%d reason=%q", entry.VariantID, delta, stock, reason)
	return stock, nil
}

func (u *InventoryUsecase) History(ctx context.Context, variantID string) ([]inventorydom.Log, error) {
	return u.logRepo.ListByVariant(ctx, strings.TrimSpace(variantID))
}
