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
)

// AssignmentService handles teaching assignment management. The course,
// teacher and period of an assignment are each validated against the
// caller's scope; references crossing institutions are rejected even when
// every single one of them exists.
type AssignmentService struct {
	assignmentRepo *repositories.AssignmentRepository
	resolver       *coreauth.ScopeResolver
	validator      *coreauth.OwnershipValidator
	guard          *coreauth.IntegrityGuard
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(
	assignmentRepo *repositories.AssignmentRepository,
	resolver *coreauth.ScopeResolver,
	validator *coreauth.OwnershipValidator,
	guard *coreauth.IntegrityGuard,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		resolver:       resolver,
		validator:      validator,
		guard:          guard,
	}
}

func assignmentSummary(a *models.Assignment) *dto.AssignmentSummary {
	return &dto.AssignmentSummary{
		ID:          a.ID,
		CourseID:    a.CourseID,
		CourseName:  a.Course.Name,
		CourseCode:  a.Course.Code,
		TeacherID:   a.TeacherID,
		TeacherName: fmt.Sprintf("%s %s", a.Teacher.User.FirstName, a.Teacher.User.LastName),
		PeriodID:    a.AcademicPeriodID,
		PeriodName:  a.AcademicPeriod.Name,
		Shift:       string(a.Shift),
	}
}

// Create creates an assignment in the caller's institution
func (s *AssignmentService) Create(ctx context.Context, p coreauth.Principal, req *dto.CreateAssignmentRequest) (*models.Assignment, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAssignments)
	if err != nil {
		return nil, err
	}

	shift, ok := models.ParseShift(req.Shift)
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown shift: %s", req.Shift))
	}

	if err := s.validator.AssertAllBelong(ctx, scope,
		coreauth.Ref{Kind: coreauth.KindCourse, ID: req.CourseID},
		coreauth.Ref{Kind: coreauth.KindTeacher, ID: req.TeacherID},
		coreauth.Ref{Kind: coreauth.KindAcademicPeriod, ID: req.AcademicPeriodID},
	); err != nil {
		return nil, err
	}

	assignment := &models.Assignment{
		CourseID:         req.CourseID,
		TeacherID:        req.TeacherID,
		AcademicPeriodID: req.AcademicPeriodID,
		Shift:            shift,
	}

	id, err := s.assignmentRepo.Create(ctx, assignment)
	if err != nil {
		if errors.Is(err, repositories.ErrAssignmentAlreadyExists) {
			return nil, apperrors.NewConflictError("assignment for this course, period and shift already exists")
		}
		return nil, err
	}
	assignment.ID = id

	return assignment, nil
}

// GetAll lists the assignments of the caller's institution
func (s *AssignmentService) GetAll(ctx context.Context, p coreauth.Principal) ([]*dto.AssignmentSummary, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAssignments)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.GetAll(ctx, scope.InstitutionID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*dto.AssignmentSummary, 0, len(assignments))
	for _, a := range assignments {
		summaries = append(summaries, assignmentSummary(a))
	}
	return summaries, nil
}

// Update reassigns the teacher or shift of an assignment
func (s *AssignmentService) Update(ctx context.Context, p coreauth.Principal, id int64, req *dto.CreateAssignmentRequest) (*models.Assignment, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAssignments)
	if err != nil {
		return nil, err
	}

	shift, ok := models.ParseShift(req.Shift)
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown shift: %s", req.Shift))
	}

	if err := s.validator.AssertBelongs(ctx, scope, coreauth.KindTeacher, req.TeacherID); err != nil {
		return nil, err
	}

	assignment, err := s.assignmentRepo.GetByID(ctx, scope.InstitutionID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("assignment not found")
		}
		return nil, err
	}

	assignment.TeacherID = req.TeacherID
	assignment.Shift = shift

	if err := s.assignmentRepo.Update(ctx, scope.InstitutionID, assignment); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, apperrors.NewResourceNotFoundError("assignment not found")
		case errors.Is(err, repositories.ErrAssignmentAlreadyExists):
			return nil, apperrors.NewConflictError("assignment for this course, period and shift already exists")
		}
		return nil, err
	}

	return assignment, nil
}

// Delete deletes an assignment. Deletion is blocked while grade rows
// reference it.
func (s *AssignmentService) Delete(ctx context.Context, p coreauth.Principal, id int64) error {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAssignments)
	if err != nil {
		return err
	}

	if err := s.validator.AssertBelongs(ctx, scope, coreauth.KindAssignment, id); err != nil {
		return err
	}

	if err := s.guard.AssertDeletable(ctx, coreauth.KindAssignment, id); err != nil {
		return err
	}

	if err := s.assignmentRepo.Delete(ctx, scope.InstitutionID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewResourceNotFoundError("assignment not found")
		}
		return err
	}

	return nil
}
