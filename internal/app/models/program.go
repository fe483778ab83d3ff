package models

// Program defines a study program based on the 'programs' table. Its plan and
// faculty must belong to the same institution as the program itself.
type Program struct {
	ID                int64    `json:"id" db:"id" example:"1"`
	InstitutionID     int64    `json:"institutionId" db:"institution_id" example:"1"`
	PlanID            int64    `json:"planId" db:"plan_id" example:"1"`
	FacultyID         int64    `json:"facultyId" db:"faculty_id" example:"1"`
	Name              string   `json:"name" db:"name" example:"Cosmetología"` // Unique within institution
	Modality          string   `json:"modality" db:"modality" example:"presencial"`
	DurationSemesters int      `json:"durationSemesters" db:"duration_semesters" example:"4"`
	Plan              *Plan    `json:"plan,omitempty"`    // Relation, no db tag
	Faculty           *Faculty `json:"faculty,omitempty"` // Relation, no db tag
}
