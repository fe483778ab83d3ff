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

// PlanService handles study plan management within the caller's institution.
// Activating a plan implicitly deactivates every other plan of the
// institution; the repository performs both writes in one transaction.
type PlanService struct {
	planRepo  *repositories.PlanRepository
	resolver  *coreauth.ScopeResolver
	validator *coreauth.OwnershipValidator
	guard     *coreauth.IntegrityGuard
}

// NewPlanService creates a new PlanService
func NewPlanService(planRepo *repositories.PlanRepository, resolver *coreauth.ScopeResolver, validator *coreauth.OwnershipValidator, guard *coreauth.IntegrityGuard) *PlanService {
	return &PlanService{
		planRepo:  planRepo,
		resolver:  resolver,
		validator: validator,
		guard:     guard,
	}
}

func planFromRequest(scope coreauth.Scope, req *dto.CreatePlanRequest) (*models.Plan, error) {
	if req.EndYear < req.StartYear {
		return nil, apperrors.NewValidationError("endYear must not precede startYear")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return &models.Plan{
		InstitutionID: scope.InstitutionID,
		Title:         req.Title,
		Description:   req.Description,
		StartYear:     req.StartYear,
		EndYear:       req.EndYear,
		IsActive:      isActive,
	}, nil
}

// Create creates a plan in the caller's institution
func (s *PlanService) Create(ctx context.Context, p coreauth.Principal, req *dto.CreatePlanRequest) (*models.Plan, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}

	plan, err := planFromRequest(scope, req)
	if err != nil {
		return nil, err
	}

	id, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		if errors.Is(err, repositories.ErrPlanAlreadyExists) {
			return nil, apperrors.NewConflictError("plan title already in use")
		}
		return nil, err
	}
	plan.ID = id

	return plan, nil
}

// GetAll lists the plans of the caller's institution
func (s *PlanService) GetAll(ctx context.Context, p coreauth.Principal) ([]*models.Plan, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}
	return s.planRepo.GetAll(ctx, scope.InstitutionID)
}

// GetByID retrieves one plan of the caller's institution
func (s *PlanService) GetByID(ctx context.Context, p coreauth.Principal, id int64) (*models.Plan, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}

	plan, err := s.planRepo.GetByID(ctx, scope.InstitutionID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("plan not found")
		}
		return nil, err
	}
	return plan, nil
}

// Update updates a plan of the caller's institution
func (s *PlanService) Update(ctx context.Context, p coreauth.Principal, id int64, req *dto.CreatePlanRequest) (*models.Plan, error) {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return nil, err
	}

	plan, err := planFromRequest(scope, req)
	if err != nil {
		return nil, err
	}
	plan.ID = id

	if err := s.planRepo.Update(ctx, plan); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, apperrors.NewResourceNotFoundError("plan not found")
		case errors.Is(err, repositories.ErrPlanAlreadyExists):
			return nil, apperrors.NewConflictError("plan title already in use")
		}
		return nil, err
	}

	return plan, nil
}

// Delete deletes a plan. Deletion is blocked while programs reference it.
func (s *PlanService) Delete(ctx context.Context, p coreauth.Principal, id int64) error {
	scope, err := requireScope(ctx, s.resolver, p, coreauth.CapManageAcademics)
	if err != nil {
		return err
	}

	// Ownership first: dependent counts of another institution's rows must
	// not be observable.
	if err := s.validator.AssertBelongs(ctx, scope, coreauth.KindPlan, id); err != nil {
		return err
	}

	if err := s.guard.AssertDeletable(ctx, coreauth.KindPlan, id); err != nil {
		return err
	}

	if err := s.planRepo.Delete(ctx, scope.InstitutionID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewResourceNotFoundError("plan not found")
		}
		return err
	}

	return nil
}
