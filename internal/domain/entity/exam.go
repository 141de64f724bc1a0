package entity

import (
	"github.com/shopspring/decimal"
)

// Exam represents a medical exam owned by exactly one patient. The exam name
// is unique across the whole system, not per patient.
type Exam struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string          `gorm:"type:varchar(100);not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	PatientID   uint            `gorm:"not null;index" json:"patient_id"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Exam) TableName() string {
	return "exams"
}
