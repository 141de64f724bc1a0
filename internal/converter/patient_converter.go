package converter

import (
	"simlab/internal/delivery/dto"
	"simlab/internal/domain/entity"
)

// PatientToDetail converts a Patient entity to its detail projection.
func PatientToDetail(patient *entity.Patient) *dto.PatientDetail {
	if patient == nil {
		return nil
	}

	return &dto.PatientDetail{
		ID:        patient.ID,
		Name:      patient.Name,
		BirthDate: patient.BirthDate.Format("2006-01-02"),
		CivilID:   patient.CivilID,
		Phone:     patient.Phone,
		Email:     patient.Email,
	}
}

// PatientToSummary converts a Patient entity to its list projection, which
// carries no id.
func PatientToSummary(patient *entity.Patient) dto.PatientSummary {
	return dto.PatientSummary{
		Name:      patient.Name,
		BirthDate: patient.BirthDate.Format("2006-01-02"),
		CivilID:   patient.CivilID,
		Phone:     patient.Phone,
		Email:     patient.Email,
	}
}

func PatientsToSummaries(patients []entity.Patient) []dto.PatientSummary {
	summaries := make([]dto.PatientSummary, 0, len(patients))
	for i := range patients {
		summaries = append(summaries, PatientToSummary(&patients[i]))
	}
	return summaries
}
