package services

import (
	"context"
	"errors"

	coreauth "github.com/axela/cetpro-backend/internal/app/auth"
	"github.com/axela/cetpro-backend/internal/app/models"
	"github.com/axela/cetpro-backend/internal/app/models/dto"
	"github.com/axela/cetpro-backend/internal/app/repositories"
	"github.com/axela/cetpro-backend/internal/pkg/apperrors"
)

// CourseService handles course management within the caller's institution
type CourseService struct {
	courseRepo *repositories.CourseRepository
	resolver   *coreauth.ScopeResolver
	validator  *coreauth.OwnershipValidator
	guard      *coreauth.IntegrityGuard
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	resolver *coreauth.ScopeResolver,
	validator *coreauth.OwnershipValidator,
	guard *coreauth.IntegrityGuard,
) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		resolver:   resolver,
		validator:  validator,
		guard:      guard,
	}
}

// Create creates a course under a program of the caller's institution
func (s *CourseService) Create(ctx context.Context, p coreauth.Principal, req *dto.CreateCourseRequest) (*models.Course, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}

	if err := s.validator.AssertBelongs(ctx, scope, coreauth.KindProgram, req.ProgramID); err != nil {
		return nil, err
	}

	course := &models.Course{
		ProgramID:   req.ProgramID,
		Name:        req.Name,
		Code:        req.Code,
		Credits:     req.Credits,
		Semester:    req.Semester,
		WeeklyHours: req.WeeklyHours,
	}

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseAlreadyExists) {
			return nil, apperrors.NewConflictError("course code already in use")
		}
		return nil, err
	}
	course.ID = id

	return course, nil
}

// GetAll lists the courses of the caller's institution
func (s *CourseService) GetAll(ctx context.Context, p coreauth.Principal) ([]*models.Course, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}
	return s.courseRepo.GetAll(ctx, scope.InstitutionID)
}

// ListByProgram lists the courses of one program of the caller's institution
func (s *CourseService) ListByProgram(ctx context.Context, p coreauth.Principal, programID int64) ([]*models.Course, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}

	if err := s.validator.AssertBelongs(ctx, scope, coreauth.KindProgram, programID); err != nil {
		return nil, err
	}

	return s.courseRepo.ListByProgram(ctx, scope.InstitutionID, programID)
}

// GetByID retrieves one course of the caller's institution
func (s *CourseService) GetByID(ctx context.Context, p coreauth.Principal, id int64) (*models.Course, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, scope.InstitutionID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("course not found")
		}
		return nil, err
	}
	return course, nil
}

// Update updates a course of the caller's institution
func (s *CourseService) Update(ctx context.Context, p coreauth.Principal, id int64, req *dto.CreateCourseRequest) (*models.Course, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}

	if err := s.validator.AssertBelongs(ctx, scope, coreauth.KindProgram, req.ProgramID); err != nil {
		return nil, err
	}

	course := &models.Course{
		ID:          id,
		ProgramID:   req.ProgramID,
		Name:        req.Name,
		Code:        req.Code,
		Credits:     req.Credits,
		Semester:    req.Semester,
		WeeklyHours: req.WeeklyHours,
	}

	if err := s.courseRepo.Update(ctx, scope.InstitutionID, course); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, apperrors.NewResourceNotFoundError("course not found")
		case errors.Is(err, repositories.ErrCourseAlreadyExists):
			return nil, apperrors.NewConflictError("course code already in use")
		}
		return nil, err
	}

	return course, nil
}

// Delete deletes a course. Deletion is blocked while assignments reference it.
func (s *CourseService) Delete(ctx context.Context, p coreauth.Principal, id int64) error {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return err
	}

	if err := s.validator.AssertBelongs(ctx, scope, coreauth.KindCourse, id); err != nil {
		return err
	}

	if err := s.guard.AssertDeletable(ctx, coreauth.KindCourse, id); err != nil {
		return err
	}

	if err := s.courseRepo.Delete(ctx, scope.InstitutionID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewResourceNotFoundError("course not found")
		}
		return err
	}

	return nil
}
