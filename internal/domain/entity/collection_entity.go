package entity

import "time"

// CollectionRecord documents one completed waste pickup at a residence.
type CollectionRecord struct {
	ID              string
	ResidenceID     string
	CollectionDate  time.Time
	WasteType       string
	AmountCollected float64
	CollectorName   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
