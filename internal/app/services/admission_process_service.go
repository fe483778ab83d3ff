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
	"github.com/axela/cetpro-backend/internal/pkg/helpers"
)

// AdmissionProcessService handles admission process management. Each
// academic period holds at most one process; it is the door enrollments
// come in through.
type AdmissionProcessService struct {
	processRepo *repositories.AdmissionProcessRepository
	periodRepo  *repositories.AcademicPeriodRepository
	resolver    *coreauth.ScopeResolver
	validator   *coreauth.OwnershipValidator
	guard       *coreauth.IntegrityGuard
}

// NewAdmissionProcessService creates a new AdmissionProcessService
func NewAdmissionProcessService(
	processRepo *repositories.AdmissionProcessRepository,
	periodRepo *repositories.AcademicPeriodRepository,
	resolver *coreauth.ScopeResolver,
	validator *coreauth.OwnershipValidator,
	guard *coreauth.IntegrityGuard,
) *AdmissionProcessService {
	return &AdmissionProcessService{
		processRepo: processRepo,
		periodRepo:  periodRepo,
		resolver:    resolver,
		validator:   validator,
		guard:       guard,
	}
}

// Create creates an admission process for a period of the caller's
// institution. An omitted description defaults to "Proceso de Admisión"
// plus the period name.
func (s *AdmissionProcessService) Create(ctx context.Context, p coreauth.Principal, req *dto.CreateAdmissionProcessRequest) (*models.AdmissionProcess, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}

	if err := s.validator.AssertBelongs(ctx, scope, coreauth.KindAcademicPeriod, req.AcademicPeriodID); err != nil {
		return nil, err
	}

	startDate, err := helpers.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid startDate: %s", req.StartDate))
	}
	endDate, err := helpers.ParseDate(req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid endDate: %s", req.EndDate))
	}
	if !endDate.After(startDate) {
		return nil, apperrors.NewValidationError("endDate must be after startDate")
	}

	description := req.Description
	if description == "" {
		period, err := s.periodRepo.GetByID(ctx, scope.InstitutionID, req.AcademicPeriodID)
		if err != nil {
			return nil, err
		}
		description = fmt.Sprintf("Proceso de Admisión %s", period.Name)
	}

	process := &models.AdmissionProcess{
		AcademicPeriodID: req.AcademicPeriodID,
		Name:             req.Name,
		Description:      description,
		StartDate:        startDate,
		EndDate:          endDate,
	}

	id, err := s.processRepo.Create(ctx, process)
	if err != nil {
		if errors.Is(err, repositories.ErrAdmissionProcessAlreadyExists) {
			return nil, apperrors.NewConflictError("academic period already has an admission process")
		}
		return nil, err
	}
	process.ID = id

	return process, nil
}

// GetAll lists the admission processes of the caller's institution
func (s *AdmissionProcessService) GetAll(ctx context.Context, p coreauth.Principal) ([]*models.AdmissionProcess, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}
	return s.processRepo.GetAll(ctx, scope.InstitutionID)
}

// GetByID retrieves one admission process of the caller's institution
func (s *AdmissionProcessService) GetByID(ctx context.Context, p coreauth.Principal, id int64) (*models.AdmissionProcess, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}

	process, err := s.processRepo.GetByID(ctx, scope.InstitutionID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("admission process not found")
		}
		return nil, err
	}
	return process, nil
}

// Update updates an admission process of the caller's institution
func (s *AdmissionProcessService) Update(ctx context.Context, p coreauth.Principal, id int64, req *dto.CreateAdmissionProcessRequest) (*models.AdmissionProcess, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}

	existing, err := s.processRepo.GetByID(ctx, scope.InstitutionID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("admission process not found")
		}
		return nil, err
	}

	startDate, err := helpers.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid startDate: %s", req.StartDate))
	}
	endDate, err := helpers.ParseDate(req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid endDate: %s", req.EndDate))
	}
	if !endDate.After(startDate) {
		return nil, apperrors.NewValidationError("endDate must be after startDate")
	}

	existing.Name = req.Name
	if req.Description != "" {
		existing.Description = req.Description
	}
	existing.StartDate = startDate
	existing.EndDate = endDate

	if err := s.processRepo.Update(ctx, scope.InstitutionID, existing); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("admission process not found")
		}
		return nil, err
	}

	return existing, nil
}

// Delete deletes an admission process. Deletion is blocked while
// enrollments reference it.
func (s *AdmissionProcessService) Delete(ctx context.Context, p coreauth.Principal, id int64) error {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return err
	}

	if err := s.validator.AssertBelongs(ctx, scope, coreauth.KindAdmissionProcess, id); err != nil {
		return err
	}

	if err := s.guard.AssertDeletable(ctx, coreauth.KindAdmissionProcess, id); err != nil {
		return err
	}

	if err := s.processRepo.Delete(ctx, scope.InstitutionID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewResourceNotFoundError("admission process not found")
		}
		return err
	}

	return nil
}
