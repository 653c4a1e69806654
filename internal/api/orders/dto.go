package orders

import "time"

// OrderSummary is the customer-facing view of an order. Artwork paths and
// the raw gateway payload stay on the admin surface.
type OrderSummary struct {
	ID            uint      `json:"id"`
	OrderNumber   string    `json:"orderNumber"`
	CardName      string    `json:"cardName"`
	Quantity      int       `json:"quantity"`
	PricePerCard  float64   `json:"pricePerCard"`
	TotalPrice    float64   `json:"totalPrice"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
