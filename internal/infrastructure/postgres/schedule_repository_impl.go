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

const scheduleColumns = `id, user_id, fname, lname, mobile, email, cdate, area, timeslot, jobstatus, waste_type, description, created_at, updated_at`

type ScheduleRepository struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

func (r *ScheduleRepository) Create(s *entity.Schedule) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO schedules (user_id, fname, lname, mobile, email, cdate, area, timeslot, jobstatus, waste_type, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, s.UserID, s.FirstName, s.LastName, s.Mobile, s.Email, s.CollectDate,
		s.Area, s.TimeSlot, s.JobStatus, s.WasteType, s.Description)

	return row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *ScheduleRepository) GetByID(id string) (*entity.Schedule, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `SELECT `+scheduleColumns+` FROM schedules WHERE id = $1`, id)
	s, err := scanSchedule(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *ScheduleRepository) GetByUserID(userID string) ([]*entity.Schedule, error) {
	return r.list(`SELECT `+scheduleColumns+` FROM schedules WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *ScheduleRepository) GetAll() ([]*entity.Schedule, error) {
	return r.list(`SELECT ` + scheduleColumns + ` FROM schedules ORDER BY created_at DESC`)
}

func (r *ScheduleRepository) GetByArea(area string) ([]*entity.Schedule, error) {
	return r.list(`SELECT `+scheduleColumns+` FROM schedules WHERE area = $1 ORDER BY created_at DESC`, area)
}

func (r *ScheduleRepository) Update(s *entity.Schedule) error {
	ctx := context.Background()
	s.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE schedules
		SET fname = $1, lname = $2, mobile = $3, email = $4, cdate = $5, area = $6,
		    timeslot = $7, jobstatus = $8, waste_type = $9, description = $10, updated_at = $11
		WHERE id = $12
	`, s.FirstName, s.LastName, s.Mobile, s.Email, s.CollectDate, s.Area,
		s.TimeSlot, s.JobStatus, s.WasteType, s.Description, s.UpdatedAt, s.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ScheduleRepository) Delete(id string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ScheduleRepository) list(query string, args ...any) ([]*entity.Schedule, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanSchedule(row pgx.Row) (*entity.Schedule, error) {
	s := &entity.Schedule{}
	err := row.Scan(&s.ID, &s.UserID, &s.FirstName, &s.LastName, &s.Mobile, &s.Email,
		&s.CollectDate, &s.Area, &s.TimeSlot, &s.JobStatus, &s.WasteType, &s.Description,
		&s.CreatedAt, &s.UpdatedAt)
	return s, err
}

var _ repository.ScheduleRepository = (*ScheduleRepository)(nil)
