package repository

import "github.com/wastewise/wastewise-api/internal/domain/entity"

// ScheduleRepository defines persistence for pickup schedules.
type ScheduleRepository interface {
	Create(s *entity.Schedule) error
	GetByID(id string) (*entity.Schedule, error)
	GetByUserID(userID string) ([]*entity.Schedule, error)
	GetAll() ([]*entity.Schedule, error)
	GetByArea(area string) ([]*entity.Schedule, error)
	Update(s *entity.Schedule) error
	Delete(id string) error
}
