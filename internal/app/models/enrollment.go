package models

import (
	"time"
)

// Enrollment links a student to a program through an admission process.
// The (student, program, process) triple is unique.
type Enrollment struct {
	ID                 int64             `json:"id" db:"id"`
	StudentID          int64             `json:"studentId" db:"student_id"`
	ProgramID          int64             `json:"programId" db:"program_id"`
	AdmissionProcessID int64             `json:"admissionProcessId" db:"admission_process_id"`
	EnrolledAt         time.Time         `json:"enrolledAt" db:"enrolled_at"`
	Student            *Student          `json:"student,omitempty"`          // Relation, no db tag
	Program            *Program          `json:"program,omitempty"`          // Relation, no db tag
	AdmissionProcess   *AdmissionProcess `json:"admissionProcess,omitempty"` // Relation, no db tag
}

// EnrollmentCourse records that an enrollment includes a course. Rows are
// created and removed only together with the matching Grade row, inside one
// transaction.
type EnrollmentCourse struct {
	ID           int64 `json:"id" db:"id"`
	EnrollmentID int64 `json:"enrollmentId" db:"enrollment_id"`
	CourseID     int64 `json:"courseId" db:"course_id"`
}
