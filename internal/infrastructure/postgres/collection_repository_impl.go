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

const collectionColumns = `id, residence_id, collection_date, waste_type, amount_collected, collector_name, created_at, updated_at`

type CollectionRepository struct {
	pool *pgxpool.Pool
}

func NewCollectionRepository(pool *pgxpool.Pool) *CollectionRepository {
	return &CollectionRepository{pool: pool}
}

func (r *CollectionRepository) Create(rec *entity.CollectionRecord) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO collection_records (residence_id, collection_date, waste_type, amount_collected, collector_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, rec.ResidenceID, rec.CollectionDate, rec.WasteType, rec.AmountCollected, rec.CollectorName)

	return row.Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
}

func (r *CollectionRepository) GetByID(id string) (*entity.CollectionRecord, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `SELECT `+collectionColumns+` FROM collection_records WHERE id = $1`, id)
	rec, err := scanCollection(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (r *CollectionRepository) GetByResidenceID(residenceID string) ([]*entity.CollectionRecord, error) {
	return r.list(`SELECT `+collectionColumns+` FROM collection_records WHERE residence_id = $1 ORDER BY collection_date DESC`, residenceID)
}

func (r *CollectionRepository) GetAll(skip, limit int) ([]*entity.CollectionRecord, error) {
	return r.list(`SELECT `+collectionColumns+` FROM collection_records ORDER BY collection_date DESC OFFSET $1 LIMIT $2`, skip, limit)
}

func (r *CollectionRepository) GetByDateRange(from, to time.Time) ([]*entity.CollectionRecord, error) {
	return r.list(`SELECT `+collectionColumns+` FROM collection_records WHERE collection_date >= $1 AND collection_date < $2 ORDER BY collection_date`, from, to)
}

func (r *CollectionRepository) Update(rec *entity.CollectionRecord) error {
	ctx := context.Background()
	rec.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE collection_records
		SET residence_id = $1, collection_date = $2, waste_type = $3, amount_collected = $4, collector_name = $5, updated_at = $6
		WHERE id = $7
	`, rec.ResidenceID, rec.CollectionDate, rec.WasteType, rec.AmountCollected, rec.CollectorName, rec.UpdatedAt, rec.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CollectionRepository) Delete(id string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM collection_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CollectionRepository) list(query string, args ...any) ([]*entity.CollectionRecord, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.CollectionRecord
	for rows.Next() {
		rec, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanCollection(row pgx.Row) (*entity.CollectionRecord, error) {
	rec := &entity.CollectionRecord{}
	err := row.Scan(&rec.ID, &rec.ResidenceID, &rec.CollectionDate, &rec.WasteType,
		&rec.AmountCollected, &rec.CollectorName, &rec.CreatedAt, &rec.UpdatedAt)
	return rec, err
}

var _ repository.CollectionRepository = (*CollectionRepository)(nil)
