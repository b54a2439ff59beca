package entity

import "time"

// Payment is a monthly flat-fee billing record.
type Payment struct {
	ID         string
	UserID     string
	FirstName  string
	LastName   string
	Status     string
	PaybackFee float64
	FlatFee    float64
	TotalBill  float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CalculateTotalBill derives the monthly total from the daily flat fee.
func (p *Payment) CalculateTotalBill() {
	p.TotalBill = p.FlatFee * 30
}
