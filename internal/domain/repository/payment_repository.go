package repository

import (
	"time"

	"github.com/wastewise/wastewise-api/internal/domain/entity"
)

// PaymentRepository defines persistence for flat-fee billing records.
type PaymentRepository interface {
	Create(p *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	GetByUserID(userID string) ([]*entity.Payment, error)
	GetAll() ([]*entity.Payment, error)
	GetByCreatedRange(from, to time.Time) ([]*entity.Payment, error)
	Update(p *entity.Payment) error
	Delete(id string) error
}

// CheckoutRepository defines persistence for Stripe checkout orders.
type CheckoutRepository interface {
	Create(o *entity.CheckoutOrder) error
	GetAll() ([]*entity.CheckoutOrder, error)
}
