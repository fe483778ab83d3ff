package dto

import (
	"time"

	"github.com/axela/cetpro-backend/internal/app/models"
)

// RegisterRequest represents the user registration payload. Teacher and
// student registrations additionally create the matching personnel row for
// the given institution.
type RegisterRequest struct {
	FirstName      string `json:"firstName" binding:"required" example:"Rosa"`
	LastName       string `json:"lastName" binding:"required" example:"Quispe"`
	Email          string `json:"email" binding:"required,email" example:"rosa.quispe@cetpro.edu.pe"`
	Password       string `json:"password" binding:"required,min=6"`
	Role           string `json:"role" binding:"required" example:"estudiante"`
	InstitutionID  int64  `json:"institutionId,omitempty" example:"1"` // Required for teacher/student roles
	DocumentNumber string `json:"documentNumber,omitempty" example:"71234567"`
	Specialty      string `json:"specialty,omitempty" example:"Cosmetología"`
	Phone          string `json:"phone,omitempty"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@cetpro.edu.pe"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	TokenType        string `json:"tokenType" example:"Bearer"`
	ExpiresIn        int    `json:"expiresIn" example:"28800"`
	RefreshExpiresIn int    `json:"refreshExpiresIn" example:"2592000"`
}

// RefreshTokenRequest represents the token refresh payload
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ForgotPasswordRequest represents the forgot-password payload
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest represents the reset-password payload
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID        int64           `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	RoleType  models.RoleType `json:"roleType"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NewUserResponse maps a user model to its public view
func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		RoleType:  user.RoleType,
		CreatedAt: user.CreatedAt,
	}
}
