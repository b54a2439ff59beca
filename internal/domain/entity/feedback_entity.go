package entity

import "time"

// Feedback is a resident-submitted report or complaint.
// Message and Area are sanitized before persistence; Response is set by staff.
type Feedback struct {
	ID            string
	UserID        string
	EmailAddress  string
	ContactNumber string
	Area          string
	FeedbackType  string
	Message       string
	Response      string
	Date          time.Time
}
