package usecase

import (
	"context"
	"errors"
	"time"

	"simlab/internal/converter"
	"simlab/internal/delivery/dto"
	"simlab/internal/domain/entity"
	"simlab/internal/domain/repository"
	"simlab/pkg/apperror"
	"simlab/pkg/pagination"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.PatientCreateRequest) (*dto.PatientDetail, error)
	List(ctx context.Context, name, civilID string, birthDate *time.Time, p pagination.Pageable) (*dto.Page[dto.PatientSummary], error)
	GetByID(ctx context.Context, id uint) (*dto.PatientDetail, error)
	Update(ctx context.Context, id uint, req *dto.PatientUpdateRequest) (*dto.PatientDetail, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
	}
}

// Create registers a new patient. The civil id must not already be taken;
// the comparison ignores case. A concurrent insert slipping past the
// pre-check still surfaces as a conflict via the unique index.
func (u *patientUsecase) Create(ctx context.Context, req *dto.PatientCreateRequest) (*dto.PatientDetail, error) {
	exists, err := u.patientRepo.ExistsByCivilID(ctx, req.CivilID)
	if err != nil {
		u.log.Warnf("Failed to check civil id: %+v", err)
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("a patient with civil id %s already exists", req.CivilID)
	}

	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		return nil, err
	}

	patient := &entity.Patient{
		Name:      req.Name,
		BirthDate: birthDate,
		CivilID:   req.CivilID,
		Phone:     req.Phone,
		Email:     req.Email,
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("a patient with civil id %s already exists", req.CivilID)
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToDetail(patient), nil
}

// List returns one page of patient summaries. Filters are mutually exclusive
// except the name+civilID pair; precedence is name+civilID, then name, then
// civilID, then birthDate, then no filter.
func (u *patientUsecase) List(ctx context.Context, name, civilID string, birthDate *time.Time, p pagination.Pageable) (*dto.Page[dto.PatientSummary], error) {
	var (
		patients []entity.Patient
		total    int64
		err      error
	)

	switch {
	case name != "" && civilID != "":
		patients, total, err = u.patientRepo.FindByNameAndCivilID(ctx, name, civilID, p)
	case name != "":
		patients, total, err = u.patientRepo.FindByName(ctx, name, p)
	case civilID != "":
		patients, total, err = u.patientRepo.FindByCivilID(ctx, civilID, p)
	case birthDate != nil:
		patients, total, err = u.patientRepo.FindByBirthDate(ctx, *birthDate, p)
	default:
		patients, total, err = u.patientRepo.FindAll(ctx, p)
	}
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return dto.NewPage(converter.PatientsToSummaries(patients), p, total), nil
}

// GetByID returns the detail projection, or nil without an error when the id
// is unknown. The handler decides the response shape.
func (u *patientUsecase) GetByID(ctx context.Context, id uint) (*dto.PatientDetail, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	return converter.PatientToDetail(patient), nil
}

// Update overwrites every mutable field of an existing patient. Uniqueness of
// the civil id is not re-checked here; the unique index still rejects a
// duplicate, which maps to a conflict.
func (u *patientUsecase) Update(ctx context.Context, id uint, req *dto.PatientUpdateRequest) (*dto.PatientDetail, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NotFound("patient with id %d not found", id)
	}

	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		return nil, err
	}

	patient.Name = req.Name
	patient.BirthDate = birthDate
	patient.CivilID = req.CivilID
	patient.Phone = req.Phone
	patient.Email = req.Email

	if err := u.patientRepo.Update(ctx, patient); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("a patient with civil id %s already exists", req.CivilID)
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	return converter.PatientToDetail(patient), nil
}

// Delete removes a patient together with every exam the patient owns. The
// repository performs both deletes in one transaction, so a failure leaves
// the store as it was. It reports whether a record existed; a missing id is
// not an error.
func (u *patientUsecase) Delete(ctx context.Context, id uint) (bool, error) {
	exists, err := u.patientRepo.ExistsByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to check patient: %+v", err)
		return false, err
	}
	if !exists {
		return false, nil
	}

	if err := u.patientRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return false, err
	}

	return true, nil
}
