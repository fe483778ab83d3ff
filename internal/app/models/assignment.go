package models

import (
	"time"
)

// Assignment links a course, a teacher and an academic period for a shift.
// The (course, period, shift) triple is unique; course, teacher and period
// must all belong to the same institution.
type Assignment struct {
	ID               int64           `json:"id" db:"id"`
	CourseID         int64           `json:"courseId" db:"course_id"`
	TeacherID        int64           `json:"teacherId" db:"teacher_id"`
	AcademicPeriodID int64           `json:"academicPeriodId" db:"academic_period_id"`
	Shift            Shift           `json:"shift" db:"shift" example:"mañana"`
	Course           *Course         `json:"course,omitempty"`         // Relation, no db tag
	Teacher          *Teacher        `json:"teacher,omitempty"`        // Relation, no db tag
	AcademicPeriod   *AcademicPeriod `json:"academicPeriod,omitempty"` // Relation, no db tag
}

// Grade links a student to an assignment. It is created without a score when
// the student registers into the course and scored later by the assignment's
// teacher.
type Grade struct {
	ID           int64      `json:"id" db:"id"`
	StudentID    int64      `json:"studentId" db:"student_id"`
	AssignmentID int64      `json:"assignmentId" db:"assignment_id"`
	Score        *float64   `json:"score,omitempty" db:"score"`
	GradedAt     *time.Time `json:"gradedAt,omitempty" db:"graded_at"`
	Student      *Student   `json:"student,omitempty"` // Relation, no db tag
}
