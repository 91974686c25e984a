// internal/domain/category/entity.go
package category

import (
	"errors"
	"strings"
)

type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	PicURL string `json:"picUrl"`
	Active bool   `json:"active"`
}

var (
	ErrInvalidID   = errors.New("category: invalid id")
	ErrInvalidName = errors.New("category: invalid name")
	ErrNotFound    = errors.New("category: not found")
)

func New(id, name, picURL string) (Category, error) {
	c := Category{
		ID:     strings.TrimSpace(id),
		Name:   strings.TrimSpace(name),
		PicURL: strings.TrimSpace(picURL),
		Active: true,
	}
	if c.Name == "" {
		return Category{}, ErrInvalidName
	}
	return c, nil
}
