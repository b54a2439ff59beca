package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wastewise/wastewise-api/internal/domain/entity"
	"github.com/wastewise/wastewise-api/internal/domain/repository"
)

type WasteTypeRepository struct {
	pool *pgxpool.Pool
}

func NewWasteTypeRepository(pool *pgxpool.Pool) *WasteTypeRepository {
	return &WasteTypeRepository{pool: pool}
}

func (r *WasteTypeRepository) Create(t *entity.WasteType) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO waste_types (name, description)
		VALUES ($1, $2)
		RETURNING id
	`, t.Name, t.Description)

	return row.Scan(&t.ID)
}

func (r *WasteTypeRepository) GetAll() ([]*entity.WasteType, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `SELECT id, name, description FROM waste_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.WasteType
	for rows.Next() {
		t := &entity.WasteType{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Description); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

var _ repository.WasteTypeRepository = (*WasteTypeRepository)(nil)
