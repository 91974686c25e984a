// internal/domain/product/variant.go
package product

import (
	"errors"
	"strings"
)

// ProductVariant is a size/color SKU under one product.
type ProductVariant struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	SKU       string  `json:"sku"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	Active    bool    `json:"active"`
}

var (
	ErrInvalidVariantID  = errors.New("product: invalid variant id")
	ErrInvalidProductRef = errors.New("product: variant requires productId")
	ErrVariantNotFound   = errors.New("product: variant not found")
)

func NewVariant(id, productID, size, color, sku string, price float64, stock int) (ProductVariant, error) {
	v := ProductVariant{
		ID:        strings.TrimSpace(id),
		ProductID: strings.TrimSpace(productID),
		Size:      strings.TrimSpace(size),
		Color:     strings.TrimSpace(color),
		SKU:       strings.TrimSpace(sku),
		Price:     price,
		Stock:     stock,
		Active:    true,
	}
	if v.ProductID == "" {
		return ProductVariant{}, ErrInvalidProductRef
	}
	if v.Price < 0 {
		return ProductVariant{}, ErrInvalidPrice
	}
	return v, nil
}
