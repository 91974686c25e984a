// internal/domain/inventory/entity.go
package inventory

import (
	"errors"
	"strings"
	"time"
)

// Log is an append-only stock movement record. Delta is signed: positive
// for restocks, negative for reductions.
type Log struct {
	ID        string `json:"id"`
	VariantID string `json:"variantId"`
	Delta     int    `json:"delta"`
	Reason    string `json:"reason"`
	RefID     string `json:"refId,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

var (
	ErrInvalidVariantID  = errors.New("inventory: invalid variantId")
	ErrZeroDelta         = errors.New("inventory: delta must be non-zero")
	ErrInsufficientStock = errors.New("inventory: stock cannot go negative")
)

func NewLog(variantID string, delta int, reason, refID string) (Log, error) {
	l := Log{
		VariantID: strings.TrimSpace(variantID),
		Delta:     delta,
		Reason:    strings.TrimSpace(reason),
		RefID:     strings.TrimSpace(refID),
		CreatedAt: time.Now().Unix(),
	}
	if l.VariantID == "" {
		return Log{}, ErrInvalidVariantID
	}
	if l.Delta == 0 {
		return Log{}, ErrZeroDelta
	}
	return l, nil
}
