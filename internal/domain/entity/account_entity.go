package entity

import "time"

// OAuthPlaceholder is stored in PasswordHash for accounts created through the
// Google bridge. It is not a bcrypt hash, so a password comparison against it
// can never succeed.
const OAuthPlaceholder = "!oauth"

// UnknownSentinel fills the mobile and residence fields of accounts created
// through the Google bridge, which carries neither.
const UnknownSentinel = "N/A"

// Account is the aggregate root for the identity domain.
// PasswordHash holds a bcrypt hash, never the raw password.
type Account struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Mobile       string
	ResidenceID  string
	PasswordHash string
	AdminType    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
