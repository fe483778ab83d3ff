package services

import (
	"context"
	"errors"

	coreauth "github.com/axela/cetpro-backend/internal/app/auth"
	"github.com/axela/cetpro-backend/internal/app/models"
	"github.com/axela/cetpro-backend/internal/app/models/dto"
	"github.com/axela/cetpro-backend/internal/app/repositories"
	"github.com/axela/cetpro-backend/internal/pkg/apperrors"
	"github.com/axela/cetpro-backend/internal/pkg/logger"
)

// InstitutionService handles institution management. Only superadmins hold
// the managing capability; admins never see institutions other than through
// their resolved scope.
type InstitutionService struct {
	instRepo *repositories.InstitutionRepository
	guard    *coreauth.IntegrityGuard
}

// NewInstitutionService creates a new InstitutionService
func NewInstitutionService(instRepo *repositories.InstitutionRepository, guard *coreauth.IntegrityGuard) *InstitutionService {
	return &InstitutionService{
		instRepo: instRepo,
		guard:    guard,
	}
}

// Create creates a new institution
func (s *InstitutionService) Create(ctx context.Context, p coreauth.Principal, req *dto.CreateInstitutionRequest) (*models.Institution, error) {
	if !coreauth.Can(p.Role, coreauth.CapManageInstitutions) {
		return nil, apperrors.ErrPermissionDenied
	}

	institution := &models.Institution{
		Name:     req.Name,
		Code:     req.Code,
		Address:  req.Address,
		Phone:    req.Phone,
		Email:    req.Email,
		IsActive: true,
	}

	id, err := s.instRepo.Create(ctx, institution)
	if err != nil {
		if errors.Is(err, repositories.ErrInstitutionAlreadyExists) {
			return nil, apperrors.NewConflictError("institution code already in use")
		}
		return nil, err
	}
	institution.ID = id

	logger.Info().Int64("institutionID", id).Str("code", institution.Code).Msg("Institution created")

	return institution, nil
}

// GetAll lists all institutions
func (s *InstitutionService) GetAll(ctx context.Context, p coreauth.Principal) ([]*models.Institution, error) {
	if !coreauth.Can(p.Role, coreauth.CapManageInstitutions) {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.instRepo.GetAll(ctx)
}

// GetByID retrieves one institution
func (s *InstitutionService) GetByID(ctx context.Context, p coreauth.Principal, id int64) (*models.Institution, error) {
	if !coreauth.Can(p.Role, coreauth.CapManageInstitutions) {
		return nil, apperrors.ErrPermissionDenied
	}

	institution, err := s.instRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("institution not found")
		}
		return nil, err
	}
	return institution, nil
}

// Update updates an institution
func (s *InstitutionService) Update(ctx context.Context, p coreauth.Principal, id int64, req *dto.UpdateInstitutionRequest) (*models.Institution, error) {
	if !coreauth.Can(p.Role, coreauth.CapManageInstitutions) {
		return nil, apperrors.ErrPermissionDenied
	}

	institution, err := s.instRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("institution not found")
		}
		return nil, err
	}

	institution.Name = req.Name
	institution.Code = req.Code
	institution.Address = req.Address
	institution.Phone = req.Phone
	institution.Email = req.Email
	if req.IsActive != nil {
		institution.IsActive = *req.IsActive
	}

	if err := s.instRepo.Update(ctx, institution); err != nil {
		if errors.Is(err, repositories.ErrInstitutionAlreadyExists) {
			return nil, apperrors.NewConflictError("institution code already in use")
		}
		return nil, err
	}

	return institution, nil
}

// Delete deletes an institution. Deletion is blocked while any faculties,
// plans, periods, students or teachers still reference it.
func (s *InstitutionService) Delete(ctx context.Context, p coreauth.Principal, id int64) error {
	if !coreauth.Can(p.Role, coreauth.CapManageInstitutions) {
		return apperrors.ErrPermissionDenied
	}

	if err := s.guard.AssertDeletable(ctx, coreauth.KindInstitution, id); err != nil {
		return err
	}

	if err := s.instRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewResourceNotFoundError("institution not found")
		}
		return err
	}

	logger.Info().Int64("institutionID", id).Msg("Institution deleted")

	return nil
}
