package repository

import (
	"context"
	"errors"

	"simlab/internal/domain/entity"
	domainRepo "simlab/internal/domain/repository"
	"simlab/pkg/pagination"

	"gorm.io/gorm"
)

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) domainRepo.ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(ctx context.Context, exam *entity.Exam) error {
	return r.db.WithContext(ctx).Create(exam).Error
}

func (r *examRepository) FindByID(ctx context.Context, id uint) (*entity.Exam, error) {
	var exam entity.Exam
	err := r.db.WithContext(ctx).First(&exam, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) Update(ctx context.Context, exam *entity.Exam) error {
	return r.db.WithContext(ctx).Save(exam).Error
}

func (r *examRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Exam{}, id).Error
}

func (r *examRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Exam{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *examRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Exam{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *examRepository) FindByNameAndDescription(ctx context.Context, name, description string, p pagination.Pageable) ([]entity.Exam, int64, error) {
	return r.findPage(ctx, p, "LOWER(name) = LOWER(?) AND LOWER(description) = LOWER(?)", name, description)
}

func (r *examRepository) FindByName(ctx context.Context, name string, p pagination.Pageable) ([]entity.Exam, int64, error) {
	return r.findPage(ctx, p, "LOWER(name) = LOWER(?)", name)
}

func (r *examRepository) FindByDescriptionContaining(ctx context.Context, description string, p pagination.Pageable) ([]entity.Exam, int64, error) {
	return r.findPage(ctx, p, "description ILIKE ?", "%"+description+"%")
}

func (r *examRepository) FindAll(ctx context.Context, p pagination.Pageable) ([]entity.Exam, int64, error) {
	return r.findPage(ctx, p, "")
}

func (r *examRepository) findPage(ctx context.Context, p pagination.Pageable, cond string, args ...interface{}) ([]entity.Exam, int64, error) {
	var total int64
	countQuery := r.db.WithContext(ctx).Model(&entity.Exam{})
	if cond != "" {
		countQuery = countQuery.Where(cond, args...)
	}
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var exams []entity.Exam
	query := r.db.WithContext(ctx)
	if cond != "" {
		query = query.Where(cond, args...)
	}
	err := query.Order(p.Order).Limit(p.Limit()).Offset(p.Offset()).Find(&exams).Error
	if err != nil {
		return nil, 0, err
	}
	return exams, total, nil
}
