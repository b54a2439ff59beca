package repository

import "github.com/wastewise/wastewise-api/internal/domain/entity"

// AccountRepository defines the interface for account persistence.
// Create must surface the store's unique-email violation as ErrDuplicateEmail;
// callers never pre-check existence (a check-then-write would race).
type AccountRepository interface {
	Create(a *entity.Account) error
	GetByEmail(email string) (*entity.Account, error)
	// GetIdentity loads id, email and admin flag only; the password hash is
	// never selected on this path.
	GetIdentity(id string) (*entity.Account, error)
	GetAll() ([]*entity.Account, error)
}
