// internal/domain/cart/entity.go
package cart

// Item is one cart entry, keyed by variant id under carts/<userId>.
// PriceSnapshot is the unit price at the time the item was added.
type Item struct {
	VariantID     string  `json:"variantId"`
	Quantity      int     `json:"quantity"`
	PriceSnapshot float64 `json:"priceSnapshot"`
}
