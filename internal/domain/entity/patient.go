package entity

import (
	"time"
)

// Patient represents a registered patient. The civil id (national identity
// card number) is unique across all patients, compared case-insensitively.
type Patient struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	BirthDate time.Time `gorm:"type:date;not null" json:"birth_date"`
	CivilID   string    `gorm:"column:civil_id;type:varchar(8);not null" json:"civil_id"`
	Phone     string    `gorm:"type:varchar(9);not null" json:"phone"`
	Email     string    `gorm:"type:varchar(100)" json:"email,omitempty"`

	// Relationships
	Exams []Exam `gorm:"foreignKey:PatientID" json:"exams,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
