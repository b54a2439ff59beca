package application

import (
	"github.com/wastewise/wastewise-api/internal/domain/entity"
	repo "github.com/wastewise/wastewise-api/internal/domain/repository"
)

// WasteTypeService lists and creates waste categories.
type WasteTypeService struct {
	Repo repo.WasteTypeRepository
}

func NewWasteTypeService(r repo.WasteTypeRepository) *WasteTypeService {
	return &WasteTypeService{Repo: r}
}

func (s *WasteTypeService) GetAll() ([]*entity.WasteType, error) {
	return s.Repo.GetAll()
}

func (s *WasteTypeService) Create(t *entity.WasteType) error {
	return s.Repo.Create(t)
}
