package repository

import (
	"context"
	"time"

	"simlab/internal/domain/entity"
	"simlab/pkg/pagination"
)

// PatientRepository defines data access for patients. Finders return
// (nil, nil) when no row matches; paginated finders also return the total
// row count for the applied filter.
type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id uint) (*entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) error
	Delete(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// ExistsByCivilID compares case-insensitively.
	ExistsByCivilID(ctx context.Context, civilID string) (bool, error)

	FindByNameAndCivilID(ctx context.Context, name, civilID string, p pagination.Pageable) ([]entity.Patient, int64, error)
	FindByName(ctx context.Context, name string, p pagination.Pageable) ([]entity.Patient, int64, error)
	FindByCivilID(ctx context.Context, civilID string, p pagination.Pageable) ([]entity.Patient, int64, error)
	FindByBirthDate(ctx context.Context, birthDate time.Time, p pagination.Pageable) ([]entity.Patient, int64, error)
	FindAll(ctx context.Context, p pagination.Pageable) ([]entity.Patient, int64, error)
}
