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

// InstitutionAdminService handles admin-to-institution assignments. An
// assignment is what gives an admin user its institution scope; a user can
// hold at most one.
type InstitutionAdminService struct {
	adminRepo *repositories.InstitutionAdminRepository
	userRepo  *repositories.UserRepository
	instRepo  *repositories.InstitutionRepository
}

// NewInstitutionAdminService creates a new InstitutionAdminService
func NewInstitutionAdminService(
	adminRepo *repositories.InstitutionAdminRepository,
	userRepo *repositories.UserRepository,
	instRepo *repositories.InstitutionRepository,
) *InstitutionAdminService {
	return &InstitutionAdminService{
		adminRepo: adminRepo,
		userRepo:  userRepo,
		instRepo:  instRepo,
	}
}

// Assign binds an admin-role user to an institution
func (s *InstitutionAdminService) Assign(ctx context.Context, p coreauth.Principal, req *dto.AssignInstitutionAdminRequest) (*models.InstitutionAdmin, error) {
	if !coreauth.Can(p.Role, coreauth.CapManageAdmins) {
		return nil, apperrors.ErrPermissionDenied
	}

	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("user not found")
		}
		return nil, err
	}
	if user.RoleType != models.RoleAdmin {
		return nil, apperrors.NewValidationError("only admin-role users can be assigned to an institution")
	}

	if _, err := s.instRepo.GetByID(ctx, req.InstitutionID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("institution not found")
		}
		return nil, err
	}

	assignment := &models.InstitutionAdmin{
		UserID:        req.UserID,
		InstitutionID: req.InstitutionID,
	}

	id, err := s.adminRepo.Create(ctx, assignment)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminAlreadyAssigned) {
			return nil, apperrors.NewConflictError("user already has an institution assignment")
		}
		return nil, err
	}
	assignment.ID = id

	logger.Info().Int64("userID", req.UserID).Int64("institutionID", req.InstitutionID).Msg("Institution admin assigned")

	return assignment, nil
}

// GetAll lists every assignment with user and institution detail
func (s *InstitutionAdminService) GetAll(ctx context.Context, p coreauth.Principal) ([]*models.InstitutionAdmin, error) {
	if !coreauth.Can(p.Role, coreauth.CapManageAdmins) {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.adminRepo.GetAll(ctx)
}

// ListUnassigned lists admin-role users without an institution assignment
func (s *InstitutionAdminService) ListUnassigned(ctx context.Context, p coreauth.Principal) ([]*dto.UserResponse, error) {
	if !coreauth.Can(p.Role, coreauth.CapManageAdmins) {
		return nil, apperrors.ErrPermissionDenied
	}

	users, err := s.userRepo.ListAdminsWithoutAssignment(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.NewUserResponse(user))
	}
	return responses, nil
}

// Remove deletes an assignment, revoking the admin's institution scope
func (s *InstitutionAdminService) Remove(ctx context.Context, p coreauth.Principal, id int64) error {
	if !coreauth.Can(p.Role, coreauth.CapManageAdmins) {
		return apperrors.ErrPermissionDenied
	}

	if err := s.adminRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewResourceNotFoundError("admin assignment not found")
		}
		return err
	}

	logger.Info().Int64("assignmentID", id).Msg("Institution admin assignment removed")

	return nil
}
