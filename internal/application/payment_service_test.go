package application

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastewise/wastewise-api/internal/domain/entity"
	repo "github.com/wastewise/wastewise-api/internal/domain/repository"
)

type fakePaymentRepo struct {
	byID map[string]*entity.Payment
	seq  int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{byID: map[string]*entity.Payment{}}
}

func (f *fakePaymentRepo) Create(p *entity.Payment) error {
	f.seq++
	p.ID = "pay-" + strconv.Itoa(f.seq)
	p.CreatedAt = time.Now()
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakePaymentRepo) GetByID(id string) (*entity.Payment, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePaymentRepo) GetByUserID(userID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range f.byID {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) GetAll() ([]*entity.Payment, error) {
	out := make([]*entity.Payment, 0, len(f.byID))
	for _, p := range f.byID {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakePaymentRepo) GetByCreatedRange(from, to time.Time) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range f.byID {
		if !p.CreatedAt.Before(from) && p.CreatedAt.Before(to) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) Update(p *entity.Payment) error {
	if _, ok := f.byID[p.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakePaymentRepo) Delete(id string) error {
	if _, ok := f.byID[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func TestPaymentAddComputesTotalBill(t *testing.T) {
	svc := NewPaymentService(newFakePaymentRepo())

	p := &entity.Payment{UserID: "acc-1", FirstName: "Amara", LastName: "Perera", FlatFee: 12.5}
	require.NoError(t, svc.Add(p))

	assert.Equal(t, 375.0, p.TotalBill, "total bill is the flat fee over thirty days")
	assert.Equal(t, "Pending", p.Status)
}

func TestPaymentUpdateRecomputesOnFeeChange(t *testing.T) {
	r := newFakePaymentRepo()
	svc := NewPaymentService(r)

	p := &entity.Payment{UserID: "acc-1", FirstName: "Amara", LastName: "Perera", FlatFee: 10}
	require.NoError(t, svc.Add(p))

	updated, err := svc.Update(&entity.Payment{ID: p.ID, FlatFee: 20})
	require.NoError(t, err)
	assert.Equal(t, 600.0, updated.TotalBill)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Amara", updated.FirstName)
	assert.Equal(t, "Pending", updated.Status)
}

func TestPaymentUpdateNotFound(t *testing.T) {
	svc := NewPaymentService(newFakePaymentRepo())

	_, err := svc.Update(&entity.Payment{ID: "pay-missing", Status: "Paid"})
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestPaymentGetByUserEmpty(t *testing.T) {
	svc := NewPaymentService(newFakePaymentRepo())

	_, err := svc.GetByUser("acc-nobody")
	assert.ErrorIs(t, err, ErrNoPaymentsForUser)
}

func TestMonthRange(t *testing.T) {
	from, to, err := MonthRange("2026-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), to)

	_, _, err = MonthRange("February 2026")
	assert.Error(t, err)
}
