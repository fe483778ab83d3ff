package dto

// CreateInstitutionRequest represents the institution creation payload
type CreateInstitutionRequest struct {
	Name    string `json:"name" binding:"required" example:"CETPRO Virgen del Carmen"`
	Code    string `json:"code" binding:"required" example:"VDC-001"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty" binding:"omitempty,email"`
}

// UpdateInstitutionRequest represents the institution update payload
type UpdateInstitutionRequest struct {
	Name     string `json:"name" binding:"required"`
	Code     string `json:"code" binding:"required"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty" binding:"omitempty,email"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// AssignInstitutionAdminRequest binds an admin user to an institution
type AssignInstitutionAdminRequest struct {
	UserID        int64 `json:"userId" binding:"required" example:"3"`
	InstitutionID int64 `json:"institutionId" binding:"required" example:"1"`
}
