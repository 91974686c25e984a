// internal/application/usecase/order_usecase.go
package usecase

import (
	"context"
	"log"
	"strings"

	cartdom "flyadmin/internal/domain/cart"
	common "flyadmin/internal/domain/common"
	orderdom "flyadmin/internal/domain/order"
)

type OrderUsecase struct {
	orderRepo orderdom.Repository
	cartRepo  cartdom.Repository
}

func NewOrderUsecase(orderRepo orderdom.Repository, cartRepo cartdom.Repository) *OrderUsecase {
	return &OrderUsecase{orderRepo: orderRepo, cartRepo: cartRepo}
}

// ==============================
// Queries
// ==============================

func (u *OrderUsecase) Watch(ctx context.Context) (*common.Subscription[[]orderdom.Order], error) {
	return u.orderRepo.Watch(ctx)
}

func (u *OrderUsecase) GetByID(ctx context.Context, id string) (orderdom.Order, error) {
	return u.orderRepo.GetByID(ctx, strings.TrimSpace(id))
}

// List takes a single snapshot of the order collection.
func (u *OrderUsecase) List(ctx context.Context) ([]orderdom.Order, error) {
	sub, err := u.orderRepo.Watch(ctx)
	if err != nil {
		return nil, err
	}
	defer sub.Close()

	select {
	case orders := <-sub.Updates():
		return orders, nil
	case <-sub.Done():
		return nil, sub.Err()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (u *OrderUsecase) SearchByEmail(ctx context.Context, email string) ([]orderdom.Order, error) {
	return u.orderRepo.SearchByEmail(ctx, email)
}

func (u *OrderUsecase) ListByStatus(ctx context.Context, status string) ([]orderdom.Order, error) {
	parsed, err := orderdom.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return u.orderRepo.ListByStatus(ctx, parsed)
}

// TotalRevenue sums order totals, cancelled orders excluded.
func (u *OrderUsecase) TotalRevenue(ctx context.Context) (float64, error) {
	return u.orderRepo.TotalRevenue(ctx)
}

// Cart reads a customer's cart as the admin sees it.
func (u *OrderUsecase) Cart(ctx context.Context, userID string) ([]cartdom.Item, error) {
	return u.cartRepo.Get(ctx, strings.TrimSpace(userID))
}

// ==============================
// Mutations
// ==============================

// SetStatus overrides the order status. No transition rule applies:
// support staff may move an order to any state.
func (u *OrderUsecase) SetStatus(ctx context.Context, id, status string) error {
	parsed, err := orderdom.ParseStatus(status)
	if err != nil {
		return err
	}
	if err := u.orderRepo.UpdateStatus(ctx, strings.TrimSpace(id), parsed); err != nil {
		return err
	}
	log.Printf("[order] id=%s status=%s by=%s", strings.TrimSpace(id), parsed, UIDFromContext(ctx))
	return nil
}

func (u *OrderUsecase) Delete(ctx context.Context, id string) error {
	return u.orderRepo.Delete(ctx, strings.TrimSpace(id))
}

func (u *OrderUsecase) ClearCart(ctx context.Context, userID string) error {
	return u.cartRepo.Clear(ctx, strings.TrimSpace(userID))
}
