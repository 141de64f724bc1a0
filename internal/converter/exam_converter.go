package converter

import (
	"simlab/internal/delivery/dto"
	"simlab/internal/domain/entity"
)

// ExamToDetail converts an Exam entity to its detail projection.
func ExamToDetail(exam *entity.Exam) *dto.ExamDetail {
	if exam == nil {
		return nil
	}

	return &dto.ExamDetail{
		ID:          exam.ID,
		Name:        exam.Name,
		Description: exam.Description,
		Price:       exam.Price,
		PatientID:   exam.PatientID,
	}
}

// ExamToSummary converts an Exam entity to its list projection, which keeps
// the owning patient's id but not the exam's own.
func ExamToSummary(exam *entity.Exam) dto.ExamSummary {
	return dto.ExamSummary{
		Name:        exam.Name,
		Description: exam.Description,
		Price:       exam.Price,
		PatientID:   exam.PatientID,
	}
}

func ExamsToSummaries(exams []entity.Exam) []dto.ExamSummary {
	summaries := make([]dto.ExamSummary, 0, len(exams))
	for i := range exams {
		summaries = append(summaries, ExamToSummary(&exams[i]))
	}
	return summaries
}
