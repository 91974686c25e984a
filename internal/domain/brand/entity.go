// internal/domain/brand/entity.go
package brand

import (
	"errors"
	"strings"
)

type Brand struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	PicURL string `json:"picUrl"`
	Active bool   `json:"active"`
}

var (
	ErrInvalidID   = errors.New("brand: invalid id")
	ErrInvalidName = errors.New("brand: invalid name")
	ErrNotFound    = errors.New("brand: not found")
)

func New(id, name, picURL string) (Brand, error) {
	b := Brand{
		ID:     strings.TrimSpace(id),
		Name:   strings.TrimSpace(name),
		PicURL: strings.TrimSpace(picURL),
		Active: true,
	}
	if b.Name == "" {
		return Brand{}, ErrInvalidName
	}
	return b, nil
}
