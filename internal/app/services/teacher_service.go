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

// TeacherService is the teacher-facing surface: own assignments, rosters
// and grading. A teacher principal resolves to its teacher row first; every
// operation then checks the assignment actually belongs to that teacher.
type TeacherService struct {
	assignmentRepo *repositories.AssignmentRepository
	resolver       *coreauth.ScopeResolver
}

// NewTeacherService creates a new TeacherService
func NewTeacherService(assignmentRepo *repositories.AssignmentRepository, resolver *coreauth.ScopeResolver) *TeacherService {
	return &TeacherService{
		assignmentRepo: assignmentRepo,
		resolver:       resolver,
	}
}

// ownAssignment resolves the caller's teacher row and loads the assignment,
// rejecting assignments of other teachers or institutions.
func (s *TeacherService) ownAssignment(ctx context.Context, p coreauth.Principal, assignmentID int64) (*models.Teacher, *models.Assignment, error) {
	teacher, err := s.resolver.ResolveTeacher(ctx, p)
	if err != nil {
		return nil, nil, err
	}

	assignment, err := s.assignmentRepo.GetByID(ctx, teacher.InstitutionID, assignmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, apperrors.NewResourceNotFoundError("assignment not found")
		}
		return nil, nil, err
	}

	if assignment.TeacherID != teacher.ID {
		return nil, nil, apperrors.NewForbiddenError("assignment belongs to another teacher")
	}

	return teacher, assignment, nil
}

// MyAssignments lists the caller's own assignments
func (s *TeacherService) MyAssignments(ctx context.Context, p coreauth.Principal) ([]*dto.AssignmentSummary, error) {
	teacher, err := s.resolver.ResolveTeacher(ctx, p)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.ListByTeacher(ctx, teacher.InstitutionID, teacher.ID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*dto.AssignmentSummary, 0, len(assignments))
	for _, a := range assignments {
		summaries = append(summaries, assignmentSummary(a))
	}
	return summaries, nil
}

// Roster lists the grade rows of one of the caller's assignments
func (s *TeacherService) Roster(ctx context.Context, p coreauth.Principal, assignmentID int64) ([]*dto.GradeRow, error) {
	if _, _, err := s.ownAssignment(ctx, p, assignmentID); err != nil {
		return nil, err
	}

	grades, err := s.assignmentRepo.ListGrades(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	rows := make([]*dto.GradeRow, 0, len(grades))
	for _, grade := range grades {
		rows = append(rows, &dto.GradeRow{
			GradeID:        grade.ID,
			StudentID:      grade.StudentID,
			StudentName:    fmt.Sprintf("%s %s", grade.Student.User.FirstName, grade.Student.User.LastName),
			DocumentNumber: grade.Student.DocumentNumber,
			Score:          grade.Score,
		})
	}
	return rows, nil
}

// UpdateGrades applies a batch of scores to one of the caller's
// assignments. The batch is transactional: one bad grade id aborts all of it.
func (s *TeacherService) UpdateGrades(ctx context.Context, p coreauth.Principal, req *dto.UpdateGradesRequest) error {
	if !coreauth.Can(p.Role, coreauth.CapGradeAssignments) {
		return apperrors.ErrPermissionDenied
	}

	if _, _, err := s.ownAssignment(ctx, p, req.AssignmentID); err != nil {
		return err
	}

	updates := make([]repositories.ScoreUpdate, 0, len(req.Grades))
	for _, grade := range req.Grades {
		updates = append(updates, repositories.ScoreUpdate{
			GradeID: grade.GradeID,
			Score:   grade.Score,
		})
	}

	if err := s.assignmentRepo.UpdateScores(ctx, req.AssignmentID, updates); err != nil {
		if errors.Is(err, repositories.ErrGradeNotFound) {
			return apperrors.NewValidationError("one or more grade ids do not belong to the assignment")
		}
		return err
	}

	logger.Info().Int64("assignmentID", req.AssignmentID).Int("grades", len(updates)).Msg("Grades updated")

	return nil
}
