package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wastewise/wastewise-api/internal/domain/entity"
	"github.com/wastewise/wastewise-api/internal/domain/repository"
)

const feedbackColumns = `id, user_id, email_address, contact_number, area, feedback_type, message, COALESCE(response, ''), date`

type FeedbackRepository struct {
	pool *pgxpool.Pool
}

func NewFeedbackRepository(pool *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{pool: pool}
}

func (r *FeedbackRepository) Create(f *entity.Feedback) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO feedback (user_id, email_address, contact_number, area, feedback_type, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, date
	`, f.UserID, f.EmailAddress, f.ContactNumber, f.Area, f.FeedbackType, f.Message)

	return row.Scan(&f.ID, &f.Date)
}

func (r *FeedbackRepository) GetByID(id string) (*entity.Feedback, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `SELECT `+feedbackColumns+` FROM feedback WHERE id = $1`, id)
	f, err := scanFeedback(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (r *FeedbackRepository) GetByEmail(email string) ([]*entity.Feedback, error) {
	return r.list(`SELECT `+feedbackColumns+` FROM feedback WHERE email_address = $1 ORDER BY date DESC`, email)
}

func (r *FeedbackRepository) GetByUserID(userID string) ([]*entity.Feedback, error) {
	return r.list(`SELECT `+feedbackColumns+` FROM feedback WHERE user_id = $1 ORDER BY date DESC`, userID)
}

func (r *FeedbackRepository) GetAll() ([]*entity.Feedback, error) {
	return r.list(`SELECT ` + feedbackColumns + ` FROM feedback ORDER BY date DESC`)
}

// Update rewrites the submitter fields and reads back the columns it does
// not touch, so the entity reflects the stored row afterwards.
func (r *FeedbackRepository) Update(f *entity.Feedback) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		UPDATE feedback
		SET email_address = $1, contact_number = $2, area = $3, feedback_type = $4, message = $5
		WHERE id = $6
		RETURNING COALESCE(response, ''), date
	`, f.EmailAddress, f.ContactNumber, f.Area, f.FeedbackType, f.Message, f.ID)
	if err := row.Scan(&f.Response, &f.Date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

// SetResponse stores the staff response and returns the updated document.
// An empty response clears the column back to NULL.
func (r *FeedbackRepository) SetResponse(id, response string) (*entity.Feedback, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		UPDATE feedback
		SET response = NULLIF($1, '')
		WHERE id = $2
		RETURNING `+feedbackColumns, response, id)

	f, err := scanFeedback(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (r *FeedbackRepository) Delete(id string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *FeedbackRepository) list(query string, args ...any) ([]*entity.Feedback, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Feedback
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func scanFeedback(row pgx.Row) (*entity.Feedback, error) {
	f := &entity.Feedback{}
	err := row.Scan(&f.ID, &f.UserID, &f.EmailAddress, &f.ContactNumber,
		&f.Area, &f.FeedbackType, &f.Message, &f.Response, &f.Date)
	return f, err
}

var _ repository.FeedbackRepository = (*FeedbackRepository)(nil)
