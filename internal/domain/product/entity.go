// internal/domain/product/entity.go
package product

import (
	"errors"
	"strings"
	"time"
)

// Product is the flat catalog record as stored. The stored record may omit
// the id; readers substitute the collection key on decode.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	OldPrice    *float64 `json:"oldPrice,omitempty"`
	Rating      float64  `json:"rating"`
	Stock       int      `json:"stock"`
	Active      bool     `json:"active"`
	CategoryID  string   `json:"categoryId"`
	BrandID     string   `json:"brandId,omitempty"`
	PicURLs     []string `json:"picUrl,omitempty"`
	Sizes       []string `json:"size,omitempty"`
	Colors      []string `json:"color,omitempty"`
	CreatedAt   int64    `json:"createdAt"`
}

// Errors
var (
	ErrInvalidID    = errors.New("product: invalid id")
	ErrInvalidTitle = errors.New("product: invalid title")
	ErrInvalidPrice = errors.New("product: invalid price")
	ErrNotFound     = errors.New("product: not found")
)

// New constructs a Product with trimmed fields. An empty id is allowed:
// the repository generates a key on create.
func New(id, title, description, categoryID, brandID string, price float64) (Product, error) {
	p := Product{
		ID:          strings.TrimSpace(id),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Price:       price,
		Active:      true,
		CategoryID:  strings.TrimSpace(categoryID),
		BrandID:     strings.TrimSpace(brandID),
		CreatedAt:   time.Now().Unix(),
	}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (p Product) Validate() error {
	if p.Title == "" {
		return ErrInvalidTitle
	}
	if p.Price < 0 {
		return ErrInvalidPrice
	}
	return nil
}
