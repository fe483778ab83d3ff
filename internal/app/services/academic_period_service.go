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

// AcademicPeriodService handles academic period management. Activation
// follows the same single-active rule as plans: the repository deactivates
// the institution's other periods in the same transaction.
type AcademicPeriodService struct {
	periodRepo *repositories.AcademicPeriodRepository
	resolver   *coreauth.ScopeResolver
	validator  *coreauth.OwnershipValidator
	guard      *coreauth.IntegrityGuard
}

// NewAcademicPeriodService creates a new AcademicPeriodService
func NewAcademicPeriodService(periodRepo *repositories.AcademicPeriodRepository, resolver *coreauth.ScopeResolver, validator *coreauth.OwnershipValidator, guard *coreauth.IntegrityGuard) *AcademicPeriodService {
	return &AcademicPeriodService{
		periodRepo: periodRepo,
		resolver:   resolver,
		validator:  validator,
		guard:      guard,
	}
}

func periodFromRequest(scope coreauth.Scope, req *dto.CreateAcademicPeriodRequest) (*models.AcademicPeriod, error) {
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

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return &models.AcademicPeriod{
		InstitutionID: scope.InstitutionID,
		Name:          req.Name,
		Year:          req.Year,
		StartDate:     startDate,
		EndDate:       endDate,
		IsActive:      isActive,
	}, nil
}

// Create creates an academic period in the caller's institution
func (s *AcademicPeriodService) Create(ctx context.Context, p coreauth.Principal, req *dto.CreateAcademicPeriodRequest) (*models.AcademicPeriod, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}

	period, err := periodFromRequest(scope, req)
	if err != nil {
		return nil, err
	}

	id, err := s.periodRepo.Create(ctx, period)
	if err != nil {
		if errors.Is(err, repositories.ErrAcademicPeriodAlreadyExists) {
			return nil, apperrors.NewConflictError("academic period name already in use for the year")
		}
		return nil, err
	}
	period.ID = id

	return period, nil
}

// GetAll lists the academic periods of the caller's institution
func (s *AcademicPeriodService) GetAll(ctx context.Context, p coreauth.Principal) ([]*models.AcademicPeriod, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}
	return s.periodRepo.GetAll(ctx, scope.InstitutionID)
}

// GetByID retrieves one academic period of the caller's institution
func (s *AcademicPeriodService) GetByID(ctx context.Context, p coreauth.Principal, id int64) (*models.AcademicPeriod, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}

	period, err := s.periodRepo.GetByID(ctx, scope.InstitutionID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("academic period not found")
		}
		return nil, err
	}
	return period, nil
}

// GetActive retrieves the active academic period of the caller's institution
func (s *AcademicPeriodService) GetActive(ctx context.Context, p coreauth.Principal) (*models.AcademicPeriod, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}

	period, err := s.periodRepo.GetActive(ctx, scope.InstitutionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("institution has no active academic period")
		}
		return nil, err
	}
	return period, nil
}

// Update updates an academic period of the caller's institution
func (s *AcademicPeriodService) Update(ctx context.Context, p coreauth.Principal, id int64, req *dto.CreateAcademicPeriodRequest) (*models.AcademicPeriod, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}

	period, err := periodFromRequest(scope, req)
	if err != nil {
		return nil, err
	}
	period.ID = id

	if err := s.periodRepo.Update(ctx, period); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, apperrors.NewResourceNotFoundError("academic period not found")
		case errors.Is(err, repositories.ErrAcademicPeriodAlreadyExists):
			return nil, apperrors.NewConflictError("academic period name already in use for the year")
		}
		return nil, err
	}

	return period, nil
}

// Delete deletes an academic period. Deletion is blocked while an admission
// process or assignments reference it.
func (s *AcademicPeriodService) Delete(ctx context.Context, p coreauth.Principal, id int64) error {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return err
	}

	if err := s.validator.AssertBelongs(ctx, scope, coreauth.KindAcademicPeriod, id); err != nil {
		return err
	}

	if err := s.guard.AssertDeletable(ctx, coreauth.KindAcademicPeriod, id); err != nil {
		return err
	}

	if err := s.periodRepo.Delete(ctx, scope.InstitutionID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewResourceNotFoundError("academic period not found")
		}
		return err
	}

	return nil
}
