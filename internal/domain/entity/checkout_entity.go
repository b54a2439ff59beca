package entity

import "time"

// CheckoutItem is a single line item of a one-off checkout.
type CheckoutItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CheckoutOrder records a Stripe Checkout session created for a user.
type CheckoutOrder struct {
	ID            string
	UserID        string
	Items         []CheckoutItem
	TotalAmount   float64
	PaymentStatus string
	SessionID     string
	CreatedAt     time.Time
}
