package repository

import (
	"context"

	"simlab/internal/domain/entity"
	"simlab/pkg/pagination"
)

// ExamRepository defines data access for exams.
type ExamRepository interface {
	Create(ctx context.Context, exam *entity.Exam) error
	FindByID(ctx context.Context, id uint) (*entity.Exam, error)
	Update(ctx context.Context, exam *entity.Exam) error
	Delete(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)

	FindByNameAndDescription(ctx context.Context, name, description string, p pagination.Pageable) ([]entity.Exam, int64, error)
	FindByName(ctx context.Context, name string, p pagination.Pageable) ([]entity.Exam, int64, error)
	FindByDescriptionContaining(ctx context.Context, description string, p pagination.Pageable) ([]entity.Exam, int64, error)
	FindAll(ctx context.Context, p pagination.Pageable) ([]entity.Exam, int64, error)
}
