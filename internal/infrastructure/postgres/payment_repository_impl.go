package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wastewise/wastewise-api/internal/domain/entity"
	"github.com/wastewise/wastewise-api/internal/domain/repository"
)

const paymentColumns = `id, user_id, fname, lname, status, payback_fee, flat_fee, total_bill, created_at, updated_at`

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

func (r *PaymentRepository) Create(p *entity.Payment) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO payments (user_id, fname, lname, status, payback_fee, flat_fee, total_bill)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, p.UserID, p.FirstName, p.LastName, p.Status, p.PaybackFee, p.FlatFee, p.TotalBill)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PaymentRepository) GetByID(id string) (*entity.Payment, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)
	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PaymentRepository) GetByUserID(userID string) ([]*entity.Payment, error) {
	return r.list(`SELECT `+paymentColumns+` FROM payments WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *PaymentRepository) GetAll() ([]*entity.Payment, error) {
	return r.list(`SELECT ` + paymentColumns + ` FROM payments ORDER BY created_at DESC`)
}

func (r *PaymentRepository) GetByCreatedRange(from, to time.Time) ([]*entity.Payment, error) {
	return r.list(`SELECT `+paymentColumns+` FROM payments WHERE created_at >= $1 AND created_at < $2 ORDER BY created_at`, from, to)
}

func (r *PaymentRepository) Update(p *entity.Payment) error {
	ctx := context.Background()
	p.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE payments
		SET fname = $1, lname = $2, status = $3, payback_fee = $4, flat_fee = $5, total_bill = $6, updated_at = $7
		WHERE id = $8
	`, p.FirstName, p.LastName, p.Status, p.PaybackFee, p.FlatFee, p.TotalBill, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PaymentRepository) Delete(id string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PaymentRepository) list(query string, args ...any) ([]*entity.Payment, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	p := &entity.Payment{}
	err := row.Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Status,
		&p.PaybackFee, &p.FlatFee, &p.TotalBill, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

var _ repository.PaymentRepository = (*PaymentRepository)(nil)
