package repository

import (
	"time"

	"github.com/wastewise/wastewise-api/internal/domain/entity"
)

// CollectionRepository defines persistence for completed-pickup records.
type CollectionRepository interface {
	Create(r *entity.CollectionRecord) error
	GetByID(id string) (*entity.CollectionRecord, error)
	GetByResidenceID(residenceID string) ([]*entity.CollectionRecord, error)
	GetAll(skip, limit int) ([]*entity.CollectionRecord, error)
	GetByDateRange(from, to time.Time) ([]*entity.CollectionRecord, error)
	Update(r *entity.CollectionRecord) error
	Delete(id string) error
}

// WasteTypeRepository defines persistence for waste categories.
type WasteTypeRepository interface {
	Create(t *entity.WasteType) error
	GetAll() ([]*entity.WasteType, error)
}
