package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/wastewise/wastewise-api/internal/domain/entity"
	repo "github.com/wastewise/wastewise-api/internal/domain/repository"
)

var (
	ErrPaymentNotFound   = errors.New("Payment not found")
	ErrNoPaymentsForUser = errors.New("Error retrieving user payments")
)

// PaymentService handles flat-fee billing records.
type PaymentService struct {
	Repo repo.PaymentRepository
}

func NewPaymentService(r repo.PaymentRepository) *PaymentService {
	return &PaymentService{Repo: r}
}

// Add computes the monthly total from the flat fee and persists the record.
func (s *PaymentService) Add(p *entity.Payment) error {
	if p.Status == "" {
		p.Status = "Pending"
	}
	p.CalculateTotalBill()
	return s.Repo.Create(p)
}

func (s *PaymentService) Update(p *entity.Payment) (*entity.Payment, error) {
	current, err := s.Repo.GetByID(p.ID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if p.FirstName != "" {
		current.FirstName = p.FirstName
	}
	if p.LastName != "" {
		current.LastName = p.LastName
	}
	if p.Status != "" {
		current.Status = p.Status
	}
	if p.PaybackFee != 0 {
		current.PaybackFee = p.PaybackFee
	}
	if p.FlatFee != 0 {
		current.FlatFee = p.FlatFee
		current.CalculateTotalBill()
	}
	if err := s.Repo.Update(current); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return current, nil
}

func (s *PaymentService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPaymentNotFound
		}
		return err
	}
	return nil
}

func (s *PaymentService) GetAll() ([]*entity.Payment, error) {
	return s.Repo.GetAll()
}

func (s *PaymentService) GetByUser(userID string) ([]*entity.Payment, error) {
	payments, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, ErrNoPaymentsForUser
	}
	return payments, nil
}

// GetByMonth returns payments created inside the given month ("2025-03").
func (s *PaymentService) GetByMonth(month string) ([]*entity.Payment, error) {
	from, to, err := MonthRange(month)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByCreatedRange(from, to)
}

// MonthRange parses "YYYY-MM" into the [start, end) window of that month.
func MonthRange(month string) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q: expected YYYY-MM", month)
	}
	return from, from.AddDate(0, 1, 0), nil
}
