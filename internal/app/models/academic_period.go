package models

import (
	"time"
)

// AcademicPeriod defines an academic period based on the 'academic_periods'
// table. At most one period per institution may be active at a time.
type AcademicPeriod struct {
	ID            int64     `json:"id" db:"id" example:"1"`
	InstitutionID int64     `json:"institutionId" db:"institution_id" example:"1"`
	Name          string    `json:"name" db:"name" example:"2024-I"` // Unique within (institution, year)
	Year          int       `json:"year" db:"year" example:"2024"`
	StartDate     time.Time `json:"startDate" db:"start_date" example:"2024-03-01T00:00:00Z"`
	EndDate       time.Time `json:"endDate" db:"end_date" example:"2024-07-31T00:00:00Z"`
	IsActive      bool      `json:"isActive" db:"is_active" example:"true"`
}

// AdmissionProcess defines an admission process based on the
// 'admission_processes' table. Each academic period has at most one.
type AdmissionProcess struct {
	ID               int64           `json:"id" db:"id" example:"1"`
	AcademicPeriodID int64           `json:"academicPeriodId" db:"academic_period_id" example:"1"`
	Name             string          `json:"name" db:"name" example:"Admisión 2024-I"`
	Description      string          `json:"description" db:"description" example:"Proceso de Admisión 2024-I"`
	StartDate        time.Time       `json:"startDate" db:"start_date"`
	EndDate          time.Time       `json:"endDate" db:"end_date"`
	AcademicPeriod   *AcademicPeriod `json:"academicPeriod,omitempty"` // Relation, no db tag
}
