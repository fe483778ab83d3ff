package models

// Plan defines a study plan based on the 'plans' table.
// At most one plan per institution may be active at a time.
type Plan struct {
	ID            int64  `json:"id" db:"id" example:"1"`
	InstitutionID int64  `json:"institutionId" db:"institution_id" example:"1"`
	Title         string `json:"title" db:"title" example:"Plan Curricular 2024"` // Unique within institution
	Description   string `json:"description" db:"description"`
	StartYear     int    `json:"startYear" db:"start_year" example:"2024"`
	EndYear       int    `json:"endYear" db:"end_year" example:"2026"`
	IsActive      bool   `json:"isActive" db:"is_active" example:"true"`
}
