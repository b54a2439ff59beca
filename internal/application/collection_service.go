package application

import (
	"errors"

	"github.com/wastewise/wastewise-api/internal/domain/entity"
	repo "github.com/wastewise/wastewise-api/internal/domain/repository"
)

var (
	ErrCollectionNotFound       = errors.New("Waste collection record not found.")
	ErrNoCollectionForResidence = errors.New("No waste collection records found for this residence.")
)

const defaultCollectionPageSize = 10

// CollectionService handles completed-pickup records.
type CollectionService struct {
	Repo repo.CollectionRepository
}

func NewCollectionService(r repo.CollectionRepository) *CollectionService {
	return &CollectionService{Repo: r}
}

func (s *CollectionService) GetAll(skip, limit int) ([]*entity.CollectionRecord, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 100 {
		limit = defaultCollectionPageSize
	}
	return s.Repo.GetAll(skip, limit)
}

func (s *CollectionService) GetByResidenceID(residenceID string) ([]*entity.CollectionRecord, error) {
	records, err := s.Repo.GetByResidenceID(residenceID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoCollectionForResidence
	}
	return records, nil
}

func (s *CollectionService) GetByID(id string) (*entity.CollectionRecord, error) {
	rec, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCollectionNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *CollectionService) Create(rec *entity.CollectionRecord) error {
	return s.Repo.Create(rec)
}

func (s *CollectionService) Update(rec *entity.CollectionRecord) error {
	if err := s.Repo.Update(rec); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCollectionNotFound
		}
		return err
	}
	return nil
}

func (s *CollectionService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCollectionNotFound
		}
		return err
	}
	return nil
}

// GetByMonth returns records collected inside the given month ("2025-03").
func (s *CollectionService) GetByMonth(month string) ([]*entity.CollectionRecord, error) {
	from, to, err := MonthRange(month)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByDateRange(from, to)
}
