package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wastewise/wastewise-api/internal/domain/entity"
	"github.com/wastewise/wastewise-api/internal/domain/repository"
)

// uniqueViolation is the SQLSTATE for a unique index violation.
const uniqueViolation = "23505"

type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func (r *AccountRepository) Create(a *entity.Account) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO accounts (fname, lname, email, mobile, residence_id, password_hash, admintype)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, a.FirstName, a.LastName, a.Email, a.Mobile, a.ResidenceID, a.PasswordHash, a.AdminType)

	if err := row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *AccountRepository) GetByEmail(email string) (*entity.Account, error) {
	return r.getOne(`
		SELECT id, fname, lname, email, mobile, residence_id, password_hash, admintype, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`, email)
}

// GetIdentity selects the projection used by the request authorizer.
// The password hash column is deliberately absent from the query.
func (r *AccountRepository) GetIdentity(id string) (*entity.Account, error) {
	ctx := context.Background()
	a := &entity.Account{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, email, residence_id, admintype
		FROM accounts
		WHERE id = $1
	`, id)

	if err := row.Scan(&a.ID, &a.Email, &a.ResidenceID, &a.AdminType); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *AccountRepository) GetAll() ([]*entity.Account, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, fname, lname, email, mobile, residence_id, admintype, created_at, updated_at
		FROM accounts
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Account
	for rows.Next() {
		a := &entity.Account{}
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Mobile,
			&a.ResidenceID, &a.AdminType, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AccountRepository) getOne(query, arg string) (*entity.Account, error) {
	ctx := context.Background()
	a := &entity.Account{}

	row := r.pool.QueryRow(ctx, query, arg)
	if err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Mobile,
		&a.ResidenceID, &a.PasswordHash, &a.AdminType, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
