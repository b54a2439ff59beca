package application

import (
	"errors"

	"github.com/wastewise/wastewise-api/internal/domain/entity"
	repo "github.com/wastewise/wastewise-api/internal/domain/repository"
)

var (
	ErrScheduleNotFound   = errors.New("Schedule not found.")
	ErrNoSchedulesForUser = errors.New("No schedules found for this user.")
	ErrNoScheduleForID    = errors.New("No schedule found for this ID.")
)

// ScheduleService handles pickup schedule business rules.
type ScheduleService struct {
	Repo repo.ScheduleRepository
}

func NewScheduleService(r repo.ScheduleRepository) *ScheduleService {
	return &ScheduleService{Repo: r}
}

func (s *ScheduleService) GetAll() ([]*entity.Schedule, error) {
	return s.Repo.GetAll()
}

func (s *ScheduleService) GetByID(id string) (*entity.Schedule, error) {
	sch, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNoScheduleForID
		}
		return nil, err
	}
	return sch, nil
}

func (s *ScheduleService) GetByUserID(userID string) ([]*entity.Schedule, error) {
	schedules, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		return nil, ErrNoSchedulesForUser
	}
	return schedules, nil
}

// GetByArea lists schedules for an area; an empty result is not an error,
// reports over a quiet area are legitimate.
func (s *ScheduleService) GetByArea(area string) ([]*entity.Schedule, error) {
	return s.Repo.GetByArea(area)
}

func (s *ScheduleService) Create(sch *entity.Schedule) error {
	return s.Repo.Create(sch)
}

func (s *ScheduleService) Update(sch *entity.Schedule) error {
	if err := s.Repo.Update(sch); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrScheduleNotFound
		}
		return err
	}
	return nil
}

func (s *ScheduleService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrScheduleNotFound
		}
		return err
	}
	return nil
}
