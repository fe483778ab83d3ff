package services

import (
	"context"
	"errors"
	"fmt"

	coreauth "github.com/axela/cetpro-backend/internal/app/auth"
	"github.com/axela/cetpro-backend/internal/app/models"
	"github.com/axela/cetpro-backend/internal/app/models/dto"
	"github.com/axela/cetpro-backend/internal/app/repositories"
	"github.com/axela/cetpro-backend/internal/pkg/apperrors"
	"github.com/axela/cetpro-backend/internal/pkg/logger"
)

// EnrollmentService handles enrollments and course registration. Every
// foreign key in a payload is validated against the caller's scope before
// any write; a student, program and process that are each valid but belong
// to different institutions never combine into an enrollment.
type EnrollmentService struct {
	enrollmentRepo *repositories.EnrollmentRepository
	resolver       *coreauth.ScopeResolver
	validator      *coreauth.OwnershipValidator
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	enrollmentRepo *repositories.EnrollmentRepository,
	resolver *coreauth.ScopeResolver,
	validator *coreauth.OwnershipValidator,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		resolver:       resolver,
		validator:      validator,
	}
}

// Create enrolls a student into a program through an admission process
func (s *EnrollmentService) Create(ctx context.Context, p coreauth.Principal, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageEnrollments)
	if err != nil {
		return nil, err
	}

	if err := s.validator.AssertAllBelong(ctx, scope,
		coreauth.Ref{Kind: coreauth.KindStudent, ID: req.StudentID},
		coreauth.Ref{Kind: coreauth.KindProgram, ID: req.ProgramID},
		coreauth.Ref{Kind: coreauth.KindAdmissionProcess, ID: req.AdmissionProcessID},
	); err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		StudentID:          req.StudentID,
		ProgramID:          req.ProgramID,
		AdmissionProcessID: req.AdmissionProcessID,
	}

	id, err := s.enrollmentRepo.Create(ctx, enrollment)
	if err != nil {
		if errors.Is(err, repositories.ErrEnrollmentAlreadyExists) {
			return nil, apperrors.NewConflictError("student is already enrolled in this program for the admission process")
		}
		return nil, err
	}
	enrollment.ID = id

	logger.Info().Int64("enrollmentID", id).Int64("studentID", req.StudentID).Msg("Enrollment created")

	return enrollment, nil
}

// GetAll lists the enrollments of the caller's institution
func (s *EnrollmentService) GetAll(ctx context.Context, p coreauth.Principal) ([]*dto.EnrollmentSummary, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageEnrollments)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.GetAll(ctx, scope.InstitutionID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*dto.EnrollmentSummary, 0, len(enrollments))
	for _, e := range enrollments {
		summaries = append(summaries, &dto.EnrollmentSummary{
			ID:               e.ID,
			StudentID:        e.StudentID,
			StudentName:      fmt.Sprintf("%s %s", e.Student.User.FirstName, e.Student.User.LastName),
			DocumentNumber:   e.Student.DocumentNumber,
			ProgramID:        e.ProgramID,
			ProgramName:      e.Program.Name,
			AdmissionProcess: e.AdmissionProcess.Name,
			EnrolledAt:       e.EnrolledAt,
		})
	}
	return summaries, nil
}

// Delete removes an enrollment together with its course registrations and
// the grades they created
func (s *EnrollmentService) Delete(ctx context.Context, p coreauth.Principal, id int64) error {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageEnrollments)
	if err != nil {
		return err
	}

	if err := s.enrollmentRepo.Delete(ctx, scope.InstitutionID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewResourceNotFoundError("enrollment not found")
		}
		return err
	}

	logger.Info().Int64("enrollmentID", id).Msg("Enrollment deleted")

	return nil
}

// RegisterCourse adds a course to an enrollment, creating its grade row in
// the same transaction
func (s *EnrollmentService) RegisterCourse(ctx context.Context, p coreauth.Principal, req *dto.RegisterCourseRequest) error {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageEnrollments)
	if err != nil {
		return err
	}

	if err := s.validator.AssertAllBelong(ctx, scope,
		coreauth.Ref{Kind: coreauth.KindEnrollment, ID: req.EnrollmentID},
		coreauth.Ref{Kind: coreauth.KindCourse, ID: req.CourseID},
	); err != nil {
		return err
	}

	_, err = s.enrollmentRepo.RegisterCourse(ctx, scope.InstitutionID, req.EnrollmentID, req.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return apperrors.NewResourceNotFoundError("enrollment not found")
		case errors.Is(err, repositories.ErrCourseAlreadyRegistered):
			return apperrors.NewConflictError("course is already registered for this enrollment")
		case errors.Is(err, repositories.ErrNoAssignmentForCourse):
			return apperrors.NewValidationError("course has no assignment in the enrollment's academic period")
		}
		return err
	}

	return nil
}

// RemoveCourse drops a course from an enrollment, deleting its grade row in
// the same transaction
func (s *EnrollmentService) RemoveCourse(ctx context.Context, p coreauth.Principal, enrollmentID, courseID int64) error {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageEnrollments)
	if err != nil {
		return err
	}

	if err := s.enrollmentRepo.RemoveCourse(ctx, scope.InstitutionID, enrollmentID, courseID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return apperrors.NewResourceNotFoundError("enrollment not found")
		case errors.Is(err, repositories.ErrCourseNotRegistered):
			return apperrors.NewResourceNotFoundError("course is not registered for this enrollment")
		}
		return err
	}

	return nil
}

// ListRegisteredCourses lists the courses an enrollment includes with their
// grade state
func (s *EnrollmentService) ListRegisteredCourses(ctx context.Context, p coreauth.Principal, enrollmentID int64) ([]*dto.RegisteredCourse, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageEnrollments)
	if err != nil {
		return nil, err
	}

	if err := s.validator.AssertBelongs(ctx, scope, coreauth.KindEnrollment, enrollmentID); err != nil {
		return nil, err
	}

	rows, err := s.enrollmentRepo.ListRegisteredCourses(ctx, scope.InstitutionID, enrollmentID)
	if err != nil {
		return nil, err
	}

	courses := make([]*dto.RegisteredCourse, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, &dto.RegisteredCourse{
			GradeID: row.GradeID,
			Course: &models.Course{
				ID:      row.CourseID,
				Name:    row.Name,
				Code:    row.Code,
				Credits: row.Credits,
			},
			Score:    row.Score,
			GradedAt: row.GradedAt,
		})
	}
	return courses, nil
}

// ListAvailableCourses lists the program courses an enrollment has not
// registered yet
func (s *EnrollmentService) ListAvailableCourses(ctx context.Context, p coreauth.Principal, enrollmentID int64) ([]*models.Course, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageEnrollments)
	if err != nil {
		return nil, err
	}

	if err := s.validator.AssertBelongs(ctx, scope, coreauth.KindEnrollment, enrollmentID); err != nil {
		return nil, err
	}

	return s.enrollmentRepo.ListAvailableCourses(ctx, scope.InstitutionID, enrollmentID)
}
