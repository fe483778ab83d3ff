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

// ProgramService handles study program management. Creating or updating a
// program validates that the referenced plan and faculty both belong to the
// caller's institution; a mix of valid entities from different institutions
// is rejected.
type ProgramService struct {
	programRepo *repositories.ProgramRepository
	resolver    *coreauth.ScopeResolver
	validator   *coreauth.OwnershipValidator
	guard       *coreauth.IntegrityGuard
}

// NewProgramService creates a new ProgramService
func NewProgramService(
	programRepo *repositories.ProgramRepository,
	resolver *coreauth.ScopeResolver,
	validator *coreauth.OwnershipValidator,
	guard *coreauth.IntegrityGuard,
) *ProgramService {
	return &ProgramService{
		programRepo: programRepo,
		resolver:    resolver,
		validator:   validator,
		guard:       guard,
	}
}

// Create creates a program in the caller's institution
func (s *ProgramService) Create(ctx context.Context, p coreauth.Principal, req *dto.CreateProgramRequest) (*models.Program, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}

	if err := s.validator.AssertAllBelong(ctx, scope,
		coreauth.Ref{Kind: coreauth.KindPlan, ID: req.PlanID},
		coreauth.Ref{Kind: coreauth.KindFaculty, ID: req.FacultyID},
	); err != nil {
		return nil, err
	}

	program := &models.Program{
		InstitutionID:     scope.InstitutionID,
		PlanID:            req.PlanID,
		FacultyID:         req.FacultyID,
		Name:              req.Name,
		Modality:          req.Modality,
		DurationSemesters: req.DurationSemesters,
	}

	id, err := s.programRepo.Create(ctx, program)
	if err != nil {
		if errors.Is(err, repositories.ErrProgramAlreadyExists) {
			return nil, apperrors.NewConflictError("program name already in use")
		}
		return nil, err
	}
	program.ID = id

	return program, nil
}

// GetAll lists the programs of the caller's institution
func (s *ProgramService) GetAll(ctx context.Context, p coreauth.Principal) ([]*models.Program, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}
	return s.programRepo.GetAll(ctx, scope.InstitutionID)
}

// GetByID retrieves one program of the caller's institution
func (s *ProgramService) GetByID(ctx context.Context, p coreauth.Principal, id int64) (*models.Program, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}

	program, err := s.programRepo.GetByID(ctx, scope.InstitutionID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("program not found")
		}
		return nil, err
	}
	return program, nil
}

// Update updates a program of the caller's institution
func (s *ProgramService) Update(ctx context.Context, p coreauth.Principal, id int64, req *dto.CreateProgramRequest) (*models.Program, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}

	if err := s.validator.AssertAllBelong(ctx, scope,
		coreauth.Ref{Kind: coreauth.KindPlan, ID: req.PlanID},
		coreauth.Ref{Kind: coreauth.KindFaculty, ID: req.FacultyID},
	); err != nil {
		return nil, err
	}

	program := &models.Program{
		ID:                id,
		InstitutionID:     scope.InstitutionID,
		PlanID:            req.PlanID,
		FacultyID:         req.FacultyID,
		Name:              req.Name,
		Modality:          req.Modality,
		DurationSemesters: req.DurationSemesters,
	}

	if err := s.programRepo.Update(ctx, program); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, apperrors.NewResourceNotFoundError("program not found")
		case errors.Is(err, repositories.ErrProgramAlreadyExists):
			return nil, apperrors.NewConflictError("program name already in use")
		}
		return nil, err
	}

	return program, nil
}

// Delete deletes a program. Deletion is blocked while courses reference it.
func (s *ProgramService) Delete(ctx context.Context, p coreauth.Principal, id int64) error {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return err
	}

	if err := s.validator.AssertBelongs(ctx, scope, coreauth.KindProgram, id); err != nil {
		return err
	}

	if err := s.guard.AssertDeletable(ctx, coreauth.KindProgram, id); err != nil {
		return err
	}

	if err := s.programRepo.Delete(ctx, scope.InstitutionID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewResourceNotFoundError("program not found")
		}
		return err
	}

	return nil
}
