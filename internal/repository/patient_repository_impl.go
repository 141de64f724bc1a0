package repository

import (
	"context"
	"errors"
	"time"

	"simlab/internal/domain/entity"
	domainRepo "simlab/internal/domain/repository"
	"simlab/pkg/pagination"

	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, id uint) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).First(&patient, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Save(patient).Error
}

// Delete removes the patient and the exams the patient owns in a single
// transaction, so a failure rolls both back.
func (r *patientRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("patient_id = ?", id).Delete(&entity.Exam{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Patient{}, id).Error
	})
}

func (r *patientRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Patient{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *patientRepository) ExistsByCivilID(ctx context.Context, civilID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Patient{}).Where("LOWER(civil_id) = LOWER(?)", civilID).Count(&count).Error
	return count > 0, err
}

func (r *patientRepository) FindByNameAndCivilID(ctx context.Context, name, civilID string, p pagination.Pageable) ([]entity.Patient, int64, error) {
	return r.findPage(ctx, p, "LOWER(name) = LOWER(?) AND LOWER(civil_id) = LOWER(?)", name, civilID)
}

func (r *patientRepository) FindByName(ctx context.Context, name string, p pagination.Pageable) ([]entity.Patient, int64, error) {
	return r.findPage(ctx, p, "LOWER(name) = LOWER(?)", name)
}

func (r *patientRepository) FindByCivilID(ctx context.Context, civilID string, p pagination.Pageable) ([]entity.Patient, int64, error) {
	return r.findPage(ctx, p, "LOWER(civil_id) = LOWER(?)", civilID)
}

func (r *patientRepository) FindByBirthDate(ctx context.Context, birthDate time.Time, p pagination.Pageable) ([]entity.Patient, int64, error) {
	return r.findPage(ctx, p, "birth_date = ?", birthDate)
}

func (r *patientRepository) FindAll(ctx context.Context, p pagination.Pageable) ([]entity.Patient, int64, error) {
	return r.findPage(ctx, p, "")
}

func (r *patientRepository) findPage(ctx context.Context, p pagination.Pageable, cond string, args ...interface{}) ([]entity.Patient, int64, error) {
	var total int64
	countQuery := r.db.WithContext(ctx).Model(&entity.Patient{})
	if cond != "" {
		countQuery = countQuery.Where(cond, args...)
	}
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var patients []entity.Patient
	query := r.db.WithContext(ctx)
	if cond != "" {
		query = query.Where(cond, args...)
	}
	err := query.Order(p.Order).Limit(p.Limit()).Offset(p.Offset()).Find(&patients).Error
	if err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}
