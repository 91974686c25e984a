// internal/domain/order/entity.go
package order

import (
	"errors"
	"strings"
)

// Status values progress forward, but no transition is enforced:
// administrators may override any state, including cancelling a delivered
// order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch Status(strings.TrimSpace(strings.ToLower(s))) {
	case StatusPending:
		return StatusPending, nil
	case StatusProcessing:
		return StatusProcessing, nil
	case StatusShipped:
		return StatusShipped, nil
	case StatusDelivered:
		return StatusDelivered, nil
	case StatusCancelled:
		return StatusCancelled, nil
	}
	return "", ErrInvalidStatus
}

// DeliveryInfo is the embedded shipping record.
type DeliveryInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Note    string `json:"note,omitempty"`
}

// Item is one embedded line item (a snapshot, not a product reference that
// must resolve: the product may have been deleted since the order was
// placed).
type Item struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
}

// Pricing is the embedded totals record.
type Pricing struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Delivery float64 `json:"delivery"`
	Total    float64 `json:"total"`
}

type Order struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId"`
	UserEmail string       `json:"userEmail"`
	OrderDate int64        `json:"orderDate"`
	Status    Status       `json:"status"`
	Delivery  DeliveryInfo `json:"deliveryInfo"`
	Items     []Item       `json:"items"`
	Pricing   Pricing      `json:"pricing"`
}

var (
	ErrInvalidID     = errors.New("order: invalid id")
	ErrInvalidStatus = errors.New("order: invalid status")
	ErrNotFound      = errors.New("order: not found")
)
