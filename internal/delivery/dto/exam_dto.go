package dto

import (
	"github.com/shopspring/decimal"
)

// ExamCreateRequest is the POST /exams body. Price is a pointer so that a
// missing value fails validation while an explicit zero price passes.
type ExamCreateRequest struct {
	Name        string           `json:"nome" validate:"required,notblank"`
	Description string           `json:"descricao" validate:"required"`
	Price       *decimal.Decimal `json:"preco" validate:"required"`
	PatientID   uint             `json:"pacienteId" validate:"required"`
}

// ExamUpdateRequest is the PUT /exams/{id} body. The owning patient is not
// part of it: the reference is immutable across updates.
type ExamUpdateRequest struct {
	Name        string           `json:"nome" validate:"required,notblank"`
	Description string           `json:"descricao" validate:"required"`
	Price       *decimal.Decimal `json:"preco" validate:"required"`
}

// ExamDetail is the detail projection returned by create, update and
// get-by-id.
type ExamDetail struct {
	ID          uint            `json:"id"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	PatientID   uint            `json:"pacienteId"`
}

// ExamSummary is the list projection. It omits the exam id but keeps the
// owning patient's id.
type ExamSummary struct {
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	PatientID   uint            `json:"pacienteId"`
}
