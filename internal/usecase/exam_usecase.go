package usecase

import (
	"context"
	"errors"

	"simlab/internal/converter"
	"simlab/internal/delivery/dto"
	"simlab/internal/domain/entity"
	"simlab/internal/domain/repository"
	"simlab/pkg/apperror"
	"simlab/pkg/pagination"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ExamUsecase interface {
	Create(ctx context.Context, req *dto.ExamCreateRequest) (*dto.ExamDetail, error)
	List(ctx context.Context, name, description string, p pagination.Pageable) (*dto.Page[dto.ExamSummary], error)
	GetByID(ctx context.Context, id uint) (*dto.ExamDetail, error)
	Update(ctx context.Context, id uint, req *dto.ExamUpdateRequest) (*dto.ExamDetail, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type examUsecase struct {
	log         *logrus.Logger
	examRepo    repository.ExamRepository
	patientRepo repository.PatientRepository
}

func NewExamUsecase(log *logrus.Logger, examRepo repository.ExamRepository, patientRepo repository.PatientRepository) ExamUsecase {
	return &examUsecase{
		log:         log,
		examRepo:    examRepo,
		patientRepo: patientRepo,
	}
}

// Create registers a new exam. The name must be globally unique, independent
// of the owning patient, and the referenced patient must exist.
func (u *examUsecase) Create(ctx context.Context, req *dto.ExamCreateRequest) (*dto.ExamDetail, error) {
	exists, err := u.examRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		u.log.Warnf("Failed to check exam name: %+v", err)
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("an exam named %q already exists", req.Name)
	}

	patientExists, err := u.patientRepo.ExistsByID(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to check patient: %+v", err)
		return nil, err
	}
	if !patientExists {
		return nil, apperror.NotFound("patient with id %d not found", req.PatientID)
	}

	exam := &entity.Exam{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		PatientID:   req.PatientID,
	}

	if err := u.examRepo.Create(ctx, exam); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, apperror.Conflict("an exam named %q already exists", req.Name)
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, apperror.NotFound("patient with id %d not found", req.PatientID)
		}
		u.log.Warnf("Failed to create exam: %+v", err)
		return nil, err
	}

	return converter.ExamToDetail(exam), nil
}

// List returns one page of exam summaries. Precedence is name+description
// (both exact, case-insensitive), then name (exact, case-insensitive), then
// description (substring, case-insensitive), then no filter.
func (u *examUsecase) List(ctx context.Context, name, description string, p pagination.Pageable) (*dto.Page[dto.ExamSummary], error) {
	var (
		exams []entity.Exam
		total int64
		err   error
	)

	switch {
	case name != "" && description != "":
		exams, total, err = u.examRepo.FindByNameAndDescription(ctx, name, description, p)
	case name != "":
		exams, total, err = u.examRepo.FindByName(ctx, name, p)
	case description != "":
		exams, total, err = u.examRepo.FindByDescriptionContaining(ctx, description, p)
	default:
		exams, total, err = u.examRepo.FindAll(ctx, p)
	}
	if err != nil {
		u.log.Warnf("Failed to list exams: %+v", err)
		return nil, err
	}

	return dto.NewPage(converter.ExamsToSummaries(exams), p, total), nil
}

// GetByID returns the detail projection, or nil without an error when the id
// is unknown.
func (u *examUsecase) GetByID(ctx context.Context, id uint) (*dto.ExamDetail, error) {
	exam, err := u.examRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find exam: %+v", err)
		return nil, err
	}
	return converter.ExamToDetail(exam), nil
}

// Update overwrites name, description and price of an existing exam. The
// owning patient reference is never altered here.
func (u *examUsecase) Update(ctx context.Context, id uint, req *dto.ExamUpdateRequest) (*dto.ExamDetail, error) {
	exam, err := u.examRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find exam: %+v", err)
		return nil, err
	}
	if exam == nil {
		return nil, apperror.NotFound("exam with id %d not found", id)
	}

	exam.Name = req.Name
	exam.Description = req.Description
	exam.Price = *req.Price

	if err := u.examRepo.Update(ctx, exam); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("an exam named %q already exists", req.Name)
		}
		u.log.Warnf("Failed to update exam: %+v", err)
		return nil, err
	}

	return converter.ExamToDetail(exam), nil
}

// Delete reports whether a record existed and was removed; a missing id is
// not an error.
func (u *examUsecase) Delete(ctx context.Context, id uint) (bool, error) {
	exists, err := u.examRepo.ExistsByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to check exam: %+v", err)
		return false, err
	}
	if !exists {
		return false, nil
	}

	if err := u.examRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete exam: %+v", err)
		return false, err
	}

	return true, nil
}
