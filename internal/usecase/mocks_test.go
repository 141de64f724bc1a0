package usecase

import (
	"context"
	"time"

	"simlab/internal/domain/entity"
	"simlab/internal/domain/repository"
	"simlab/pkg/pagination"
)

var _ repository.PatientRepository = (*mockPatientRepository)(nil)

// mockPatientRepository implements PatientRepository through optional
// function fields. Unset fields answer with zero values.
type mockPatientRepository struct {
	CreateFunc               func(ctx context.Context, patient *entity.Patient) error
	FindByIDFunc             func(ctx context.Context, id uint) (*entity.Patient, error)
	UpdateFunc               func(ctx context.Context, patient *entity.Patient) error
	DeleteFunc               func(ctx context.Context, id uint) error
	ExistsByIDFunc           func(ctx context.Context, id uint) (bool, error)
	ExistsByCivilIDFunc      func(ctx context.Context, civilID string) (bool, error)
	FindByNameAndCivilIDFunc func(ctx context.Context, name, civilID string, p pagination.Pageable) ([]entity.Patient, int64, error)
	FindByNameFunc           func(ctx context.Context, name string, p pagination.Pageable) ([]entity.Patient, int64, error)
	FindByCivilIDFunc        func(ctx context.Context, civilID string, p pagination.Pageable) ([]entity.Patient, int64, error)
	FindByBirthDateFunc      func(ctx context.Context, birthDate time.Time, p pagination.Pageable) ([]entity.Patient, int64, error)
	FindAllFunc              func(ctx context.Context, p pagination.Pageable) ([]entity.Patient, int64, error)
}

func (m *mockPatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	return nil
}

func (m *mockPatientRepository) FindByID(ctx context.Context, id uint) (*entity.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPatientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, patient)
	}
	return nil
}

func (m *mockPatientRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPatientRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return false, nil
}

func (m *mockPatientRepository) ExistsByCivilID(ctx context.Context, civilID string) (bool, error) {
	if m.ExistsByCivilIDFunc != nil {
		return m.ExistsByCivilIDFunc(ctx, civilID)
	}
	return false, nil
}

func (m *mockPatientRepository) FindByNameAndCivilID(ctx context.Context, name, civilID string, p pagination.Pageable) ([]entity.Patient, int64, error) {
	if m.FindByNameAndCivilIDFunc != nil {
		return m.FindByNameAndCivilIDFunc(ctx, name, civilID, p)
	}
	return nil, 0, nil
}

func (m *mockPatientRepository) FindByName(ctx context.Context, name string, p pagination.Pageable) ([]entity.Patient, int64, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name, p)
	}
	return nil, 0, nil
}

func (m *mockPatientRepository) FindByCivilID(ctx context.Context, civilID string, p pagination.Pageable) ([]entity.Patient, int64, error) {
	if m.FindByCivilIDFunc != nil {
		return m.FindByCivilIDFunc(ctx, civilID, p)
	}
	return nil, 0, nil
}

func (m *mockPatientRepository) FindByBirthDate(ctx context.Context, birthDate time.Time, p pagination.Pageable) ([]entity.Patient, int64, error) {
	if m.FindByBirthDateFunc != nil {
		return m.FindByBirthDateFunc(ctx, birthDate, p)
	}
	return nil, 0, nil
}

func (m *mockPatientRepository) FindAll(ctx context.Context, p pagination.Pageable) ([]entity.Patient, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, p)
	}
	return nil, 0, nil
}

var _ repository.ExamRepository = (*mockExamRepository)(nil)

type mockExamRepository struct {
	CreateFunc                   func(ctx context.Context, exam *entity.Exam) error
	FindByIDFunc                 func(ctx context.Context, id uint) (*entity.Exam, error)
	UpdateFunc                   func(ctx context.Context, exam *entity.Exam) error
	DeleteFunc                   func(ctx context.Context, id uint) error
	ExistsByIDFunc               func(ctx context.Context, id uint) (bool, error)
	ExistsByNameFunc             func(ctx context.Context, name string) (bool, error)
	FindByNameAndDescriptionFunc func(ctx context.Context, name, description string, p pagination.Pageable) ([]entity.Exam, int64, error)
	FindByNameFunc               func(ctx context.Context, name string, p pagination.Pageable) ([]entity.Exam, int64, error)
	FindByDescriptionFunc        func(ctx context.Context, description string, p pagination.Pageable) ([]entity.Exam, int64, error)
	FindAllFunc                  func(ctx context.Context, p pagination.Pageable) ([]entity.Exam, int64, error)
}

func (m *mockExamRepository) Create(ctx context.Context, exam *entity.Exam) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, exam)
	}
	return nil
}

func (m *mockExamRepository) FindByID(ctx context.Context, id uint) (*entity.Exam, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockExamRepository) Update(ctx context.Context, exam *entity.Exam) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, exam)
	}
	return nil
}

func (m *mockExamRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockExamRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return false, nil
}

func (m *mockExamRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, name)
	}
	return false, nil
}

func (m *mockExamRepository) FindByNameAndDescription(ctx context.Context, name, description string, p pagination.Pageable) ([]entity.Exam, int64, error) {
	if m.FindByNameAndDescriptionFunc != nil {
		return m.FindByNameAndDescriptionFunc(ctx, name, description, p)
	}
	return nil, 0, nil
}

func (m *mockExamRepository) FindByName(ctx context.Context, name string, p pagination.Pageable) ([]entity.Exam, int64, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name, p)
	}
	return nil, 0, nil
}

func (m *mockExamRepository) FindByDescriptionContaining(ctx context.Context, description string, p pagination.Pageable) ([]entity.Exam, int64, error) {
	if m.FindByDescriptionFunc != nil {
		return m.FindByDescriptionFunc(ctx, description, p)
	}
	return nil, 0, nil
}

func (m *mockExamRepository) FindAll(ctx context.Context, p pagination.Pageable) ([]entity.Exam, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, p)
	}
	return nil, 0, nil
}
