// internal/domain/banner/entity.go
package banner

import (
	"errors"
	"strings"
)

type Banner struct {
	ID     string `json:"id"`
	PicURL string `json:"picUrl"`
	Active bool   `json:"active"`
}

var (
	ErrInvalidID  = errors.New("banner: invalid id")
	ErrInvalidURL = errors.New("banner: invalid picUrl")
	ErrNotFound   = errors.New("banner: not found")
)

func New(id, picURL string) (Banner, error) {
	b := Banner{
		ID:     strings.TrimSpace(id),
		PicURL: strings.TrimSpace(picURL),
		Active: true,
	}
	if b.PicURL == "" {
		return Banner{}, ErrInvalidURL
	}
	return b, nil
}
