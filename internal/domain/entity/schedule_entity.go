package entity

import "time"

// Schedule is a pickup request placed by a resident.
// JobStatus flips to true once the pickup has been carried out.
type Schedule struct {
	ID          string
	UserID      string
	FirstName   string
	LastName    string
	Mobile      string
	Email       string
	CollectDate string
	Area        string
	TimeSlot    string
	JobStatus   bool
	WasteType   string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
