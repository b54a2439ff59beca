package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wastewise/wastewise-api/internal/domain/entity"
	"github.com/wastewise/wastewise-api/internal/domain/repository"
)

type CheckoutRepository struct {
	pool *pgxpool.Pool
}

func NewCheckoutRepository(pool *pgxpool.Pool) *CheckoutRepository {
	return &CheckoutRepository{pool: pool}
}

func (r *CheckoutRepository) Create(o *entity.CheckoutOrder) error {
	ctx := context.Background()
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO checkout_orders (user_id, items, total_amount, payment_status, session_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, o.UserID, items, o.TotalAmount, o.PaymentStatus, o.SessionID)

	return row.Scan(&o.ID, &o.CreatedAt)
}

func (r *CheckoutRepository) GetAll() ([]*entity.CheckoutOrder, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, items, total_amount, payment_status, session_id, created_at
		FROM checkout_orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.CheckoutOrder
	for rows.Next() {
		o := &entity.CheckoutOrder{}
		var items []byte
		if err := rows.Scan(&o.ID, &o.UserID, &items, &o.TotalAmount,
			&o.PaymentStatus, &o.SessionID, &o.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

var _ repository.CheckoutRepository = (*CheckoutRepository)(nil)
