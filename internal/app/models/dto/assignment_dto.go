package dto

// CreateAssignmentRequest represents the assignment creation/update payload
type CreateAssignmentRequest struct {
	CourseID         int64  `json:"courseId" binding:"required" example:"1"`
	TeacherID        int64  `json:"teacherId" binding:"required" example:"1"`
	AcademicPeriodID int64  `json:"academicPeriodId" binding:"required" example:"1"`
	Shift            string `json:"shift" binding:"required" example:"mañana"`
}

// AssignmentSummary is the joined list view of an assignment
type AssignmentSummary struct {
	ID          int64  `json:"id"`
	CourseID    int64  `json:"courseId"`
	CourseName  string `json:"courseName" example:"Corte y Peinado Básico"`
	CourseCode  string `json:"courseCode" example:"COS-101"`
	TeacherID   int64  `json:"teacherId"`
	TeacherName string `json:"teacherName" example:"Carlos Mamani"`
	PeriodID    int64  `json:"periodId"`
	PeriodName  string `json:"periodName" example:"2024-I"`
	Shift       string `json:"shift" example:"mañana"`
}

// GradeRow is one roster entry of an assignment
type GradeRow struct {
	GradeID        int64    `json:"gradeId"`
	StudentID      int64    `json:"studentId"`
	StudentName    string   `json:"studentName" example:"Rosa Quispe"`
	DocumentNumber string   `json:"documentNumber" example:"71234567"`
	Score          *float64 `json:"score,omitempty"`
}

// GradeUpdate sets the score of one grade row
type GradeUpdate struct {
	GradeID int64   `json:"gradeId" binding:"required"`
	Score   float64 `json:"score" binding:"min=0,max=20"`
}

// UpdateGradesRequest is the bulk grading payload for one assignment. The
// whole batch is applied in one transaction or not at all.
type UpdateGradesRequest struct {
	AssignmentID int64         `json:"assignmentId" binding:"required"`
	Grades       []GradeUpdate `json:"grades" binding:"required,min=1,dive"`
}
