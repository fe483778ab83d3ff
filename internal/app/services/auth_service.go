package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/axela/cetpro-backend/internal/app/models"
	"github.com/axela/cetpro-backend/internal/app/models/dto"
	"github.com/axela/cetpro-backend/internal/app/repositories"
	"github.com/axela/cetpro-backend/internal/pkg/apperrors"
	"github.com/axela/cetpro-backend/internal/pkg/auth"
	"github.com/axela/cetpro-backend/internal/pkg/email"
	"github.com/axela/cetpro-backend/internal/pkg/logger"
)

// AuthService handles registration, login and token lifecycle
type AuthService struct {
	userRepo       *repositories.UserRepository
	tokenRepo      *repositories.TokenRepository
	resetTokenRepo *repositories.PasswordResetTokenRepository
	personnelRepo  *repositories.PersonnelRepository
	instRepo       *repositories.InstitutionRepository
	jwtService     *auth.JWTService
	emailService   email.EmailService
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	resetTokenRepo *repositories.PasswordResetTokenRepository,
	personnelRepo *repositories.PersonnelRepository,
	instRepo *repositories.InstitutionRepository,
	jwtService *auth.JWTService,
	emailService email.EmailService,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		tokenRepo:      tokenRepo,
		resetTokenRepo: resetTokenRepo,
		personnelRepo:  personnelRepo,
		instRepo:       instRepo,
		jwtService:     jwtService,
		emailService:   emailService,
	}
}

// Register creates a new user account. Teacher and student registrations
// also create the matching personnel row pinned to the given institution.
// Superadmin accounts cannot be registered; they come from seeding only.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	role, ok := models.ParseRoleType(req.Role)
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown role: %s", req.Role))
	}
	if role == models.RoleSuperadmin {
		return nil, apperrors.NewForbiddenError("superadmin accounts cannot be registered")
	}

	needsInstitution := role == models.RoleTeacher || role == models.RoleStudent
	if needsInstitution {
		if req.InstitutionID <= 0 {
			return nil, apperrors.NewValidationError("institutionId is required for teacher and student registration")
		}
		if _, err := s.instRepo.GetByID(ctx, req.InstitutionID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.NewResourceNotFoundError("institution not found")
			}
			return nil, err
		}
	}
	if role == models.RoleStudent && req.DocumentNumber == "" {
		return nil, apperrors.NewValidationError("documentNumber is required for student registration")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hashedPassword,
		RoleType:  role,
	}

	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	switch role {
	case models.RoleStudent:
		_, err = s.personnelRepo.CreateStudent(ctx, &models.Student{
			UserID:         user.ID,
			InstitutionID:  req.InstitutionID,
			DocumentNumber: req.DocumentNumber,
			Phone:          req.Phone,
		})
	case models.RoleTeacher:
		_, err = s.personnelRepo.CreateTeacher(ctx, &models.Teacher{
			UserID:        user.ID,
			InstitutionID: req.InstitutionID,
			Specialty:     req.Specialty,
			Phone:         req.Phone,
		})
	}
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Str("role", string(role)).Msg("User registered")

	return dto.NewUserResponse(user), nil
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := verifyPassword(user.Password, req.Password); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// RefreshTokens rotates a refresh token into a new token pair. The used
// token is deleted so it cannot be replayed.
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokenRepo.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrTokenNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		if errors.Is(err, repositories.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, err
	}

	if err := s.tokenRepo.DeleteRefreshToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// verifyPassword maps a bcrypt mismatch to the invalid-credentials error the
// login endpoint reports.
func verifyPassword(hashedPassword, password string) error {
	if !auth.CheckPassword(hashedPassword, password) {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.CreateRefreshToken(ctx, user.ID, refreshToken, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}

// Logout invalidates one refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.DeleteRefreshToken(ctx, refreshToken)
}

// GetProfile returns the public view of a user
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// ForgotPassword issues a password reset token for the account, if one
// exists. The result is identical either way so the endpoint cannot be used
// to probe for registered emails.
func (s *AuthService) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Debug().Str("email", emailAddr).Msg("Password reset requested for unknown email")
			return nil
		}
		return err
	}

	token, tokenHash, err := auth.GenerateResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	// A new request invalidates any token issued earlier.
	if err := s.resetTokenRepo.DeleteUserTokens(ctx, user.ID); err != nil {
		return err
	}

	if err := s.resetTokenRepo.Create(ctx, user.ID, tokenHash, time.Now().Add(auth.ResetTokenTTL)); err != nil {
		return err
	}

	if err := s.emailService.SendPasswordResetEmail(user.Email, user.FirstName, token); err != nil {
		// The token stays valid; the user can retry the request.
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to send password reset email")
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	return nil
}

// ResetPassword consumes a reset token and replaces the user's password.
// All refresh tokens of the user are revoked.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	stored, err := s.resetTokenRepo.GetByHash(ctx, auth.HashResetToken(token))
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrResetTokenNotFound),
			errors.Is(err, repositories.ErrResetTokenExpired):
			return apperrors.ErrInvalidPasswordResetToken
		case errors.Is(err, repositories.ErrResetTokenUsed):
			return apperrors.ErrPasswordResetTokenUsed
		}
		return err
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, stored.UserID, hashedPassword); err != nil {
		return err
	}

	if err := s.resetTokenRepo.MarkUsed(ctx, stored.ID); err != nil {
		return err
	}

	if err := s.tokenRepo.DeleteUserRefreshTokens(ctx, stored.UserID); err != nil {
		logger.Warn().Err(err).Int64("userID", stored.UserID).Msg("Failed to revoke refresh tokens after password reset")
	}

	logger.Info().Int64("userID", stored.UserID).Msg("Password reset completed")

	return nil
}
