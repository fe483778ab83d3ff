package dto

import (
	"time"

	"github.com/axela/cetpro-backend/internal/app/models"
)

// CreateEnrollmentRequest represents the enrollment creation payload
type CreateEnrollmentRequest struct {
	StudentID          int64 `json:"studentId" binding:"required" example:"1"`
	ProgramID          int64 `json:"programId" binding:"required" example:"1"`
	AdmissionProcessID int64 `json:"admissionProcessId" binding:"required" example:"1"`
}

// EnrollmentSummary is the joined list view of an enrollment
type EnrollmentSummary struct {
	ID               int64     `json:"id"`
	StudentID        int64     `json:"studentId"`
	StudentName      string    `json:"studentName" example:"Rosa Quispe"`
	DocumentNumber   string    `json:"documentNumber" example:"71234567"`
	ProgramID        int64     `json:"programId"`
	ProgramName      string    `json:"programName" example:"Cosmetología"`
	AdmissionProcess string    `json:"admissionProcess" example:"Admisión 2024-I"`
	EnrolledAt       time.Time `json:"enrolledAt"`
}

// RegisterCourseRequest registers an enrolled student into a course. The
// write creates the Grade and EnrollmentCourse rows together.
type RegisterCourseRequest struct {
	EnrollmentID int64 `json:"enrollmentId" binding:"required" example:"1"`
	CourseID     int64 `json:"courseId" binding:"required" example:"1"`
}

// RegisteredCourse is a course the enrollment already includes, with the
// grade row that tracks it
type RegisteredCourse struct {
	GradeID  int64          `json:"gradeId"`
	Course   *models.Course `json:"course"`
	Score    *float64       `json:"score,omitempty"`
	GradedAt *time.Time     `json:"gradedAt,omitempty"`
}
