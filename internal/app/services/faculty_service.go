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

// FacultyService handles faculty management within the caller's institution
type FacultyService struct {
	facultyRepo *repositories.FacultyRepository
	resolver    *coreauth.ScopeResolver
	validator   *coreauth.OwnershipValidator
	guard       *coreauth.IntegrityGuard
}

// NewFacultyService creates a new FacultyService
func NewFacultyService(facultyRepo *repositories.FacultyRepository, resolver *coreauth.ScopeResolver, validator *coreauth.OwnershipValidator, guard *coreauth.IntegrityGuard) *FacultyService {
	return &FacultyService{
		facultyRepo: facultyRepo,
		resolver:    resolver,
		validator:   validator,
		guard:       guard,
	}
}

// Create creates a faculty in the caller's institution
func (s *FacultyService) Create(ctx context.Context, p coreauth.Principal, req *dto.CreateFacultyRequest) (*models.Faculty, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}

	faculty := &models.Faculty{
		InstitutionID: scope.InstitutionID,
		Name:          req.Name,
		Description:   req.Description,
	}

	id, err := s.facultyRepo.Create(ctx, faculty)
	if err != nil {
		if errors.Is(err, repositories.ErrFacultyAlreadyExists) {
			return nil, apperrors.NewConflictError("faculty name already in use")
		}
		return nil, err
	}
	faculty.ID = id

	return faculty, nil
}

// GetAll lists the faculties of the caller's institution
func (s *FacultyService) GetAll(ctx context.Context, p coreauth.Principal) ([]*models.Faculty, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}
	return s.facultyRepo.GetAll(ctx, scope.InstitutionID)
}

// GetByID retrieves one faculty of the caller's institution
func (s *FacultyService) GetByID(ctx context.Context, p coreauth.Principal, id int64) (*models.Faculty, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}

	faculty, err := s.facultyRepo.GetByID(ctx, scope.InstitutionID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("faculty not found")
		}
		return nil, err
	}
	return faculty, nil
}

// Update updates a faculty of the caller's institution
func (s *FacultyService) Update(ctx context.Context, p coreauth.Principal, id int64, req *dto.CreateFacultyRequest) (*models.Faculty, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}

	faculty := &models.Faculty{
		ID:            id,
		InstitutionID: scope.InstitutionID,
		Name:          req.Name,
		Description:   req.Description,
	}

	if err := s.facultyRepo.Update(ctx, faculty); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, apperrors.NewResourceNotFoundError("faculty not found")
		case errors.Is(err, repositories.ErrFacultyAlreadyExists):
			return nil, apperrors.NewConflictError("faculty name already in use")
		}
		return nil, err
	}

	return faculty, nil
}

// Delete deletes a faculty. Deletion is blocked while programs reference it.
func (s *FacultyService) Delete(ctx context.Context, p coreauth.Principal, id int64) error {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return err
	}

	if err := s.validator.AssertBelongs(ctx, scope, coreauth.KindFaculty, id); err != nil {
		return err
	}

	if err := s.guard.AssertDeletable(ctx, coreauth.KindFaculty, id); err != nil {
		return err
	}

	if err := s.facultyRepo.Delete(ctx, scope.InstitutionID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewResourceNotFoundError("faculty not found")
		}
		return err
	}

	return nil
}
