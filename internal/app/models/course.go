package models

// Course defines a course based on the 'courses' table. A course belongs to an
// institution transitively through its program.
type Course struct {
	ID          int64    `json:"id" db:"id" example:"1"`
	ProgramID   int64    `json:"programId" db:"program_id" example:"1"`
	Name        string   `json:"name" db:"name" example:"Corte y Peinado Básico"`
	Code        string   `json:"code" db:"code" example:"COS-101"` // Unique across all courses
	Credits     int      `json:"credits" db:"credits" example:"3"`
	Semester    int      `json:"semester" db:"semester" example:"1"`
	WeeklyHours int      `json:"weeklyHours" db:"weekly_hours" example:"6"`
	Program     *Program `json:"program,omitempty"` // Relation, no db tag
}
