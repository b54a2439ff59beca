package repository

import "github.com/wastewise/wastewise-api/internal/domain/entity"

// FeedbackRepository defines persistence for resident feedback.
type FeedbackRepository interface {
	Create(f *entity.Feedback) error
	GetByID(id string) (*entity.Feedback, error)
	GetByEmail(email string) ([]*entity.Feedback, error)
	GetByUserID(userID string) ([]*entity.Feedback, error)
	GetAll() ([]*entity.Feedback, error)
	Update(f *entity.Feedback) error
	// SetResponse stores the staff response; an empty string clears it.
	SetResponse(id, response string) (*entity.Feedback, error)
	Delete(id string) error
}
