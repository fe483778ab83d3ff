package dto

// Request payloads for the institution-scoped academic entities. The owning
// institution is never part of a payload; it always comes from the caller's
// resolved scope.

// CreateFacultyRequest represents the faculty creation/update payload
type CreateFacultyRequest struct {
	Name        string `json:"name" binding:"required" example:"Estética Personal"`
	Description string `json:"description,omitempty"`
}

// CreatePlanRequest represents the plan creation/update payload
type CreatePlanRequest struct {
	Title       string `json:"title" binding:"required" example:"Plan Curricular 2024"`
	Description string `json:"description,omitempty"`
	StartYear   int    `json:"startYear" binding:"required" example:"2024"`
	EndYear     int    `json:"endYear" binding:"required" example:"2026"`
	IsActive    *bool  `json:"isActive,omitempty"` // Defaults to true
}

// CreateProgramRequest represents the program creation/update payload
type CreateProgramRequest struct {
	PlanID            int64  `json:"planId" binding:"required" example:"1"`
	FacultyID         int64  `json:"facultyId" binding:"required" example:"1"`
	Name              string `json:"name" binding:"required" example:"Cosmetología"`
	Modality          string `json:"modality,omitempty" example:"presencial"`
	DurationSemesters int    `json:"durationSemesters,omitempty" example:"4"`
}

// CreateCourseRequest represents the course creation/update payload
type CreateCourseRequest struct {
	ProgramID   int64  `json:"programId" binding:"required" example:"1"`
	Name        string `json:"name" binding:"required" example:"Corte y Peinado Básico"`
	Code        string `json:"code" binding:"required" example:"COS-101"`
	Credits     int    `json:"credits,omitempty" example:"3"`
	Semester    int    `json:"semester,omitempty" example:"1"`
	WeeklyHours int    `json:"weeklyHours,omitempty" example:"6"`
}

// CreateAcademicPeriodRequest represents the period creation/update payload.
// Dates use YYYY-MM-DD.
type CreateAcademicPeriodRequest struct {
	Name      string `json:"name" binding:"required" example:"2024-I"`
	Year      int    `json:"year" binding:"required" example:"2024"`
	StartDate string `json:"startDate" binding:"required" example:"2024-03-01"`
	EndDate   string `json:"endDate" binding:"required" example:"2024-07-31"`
	IsActive  *bool  `json:"isActive,omitempty"` // Defaults to true
}

// CreateAdmissionProcessRequest represents the admission process payload.
// Description defaults to "Proceso de Admisión <period name>" when omitted.
type CreateAdmissionProcessRequest struct {
	AcademicPeriodID int64  `json:"academicPeriodId" binding:"required" example:"1"`
	Name             string `json:"name" binding:"required" example:"Admisión 2024-I"`
	Description      string `json:"description,omitempty"`
	StartDate        string `json:"startDate" binding:"required" example:"2024-01-15"`
	EndDate          string `json:"endDate" binding:"required" example:"2024-02-28"`
}
