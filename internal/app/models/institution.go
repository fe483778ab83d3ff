package models

// Institution is the root of tenancy; every other academic entity belongs to
// exactly one institution, directly or through a parent.
type Institution struct {
	ID       int64  `json:"id" db:"id" example:"1"`
	Name     string `json:"name" db:"name" example:"CETPRO Virgen del Carmen"`
	Code     string `json:"code" db:"code" example:"VDC-001"` // Unique across all institutions
	Address  string `json:"address" db:"address" example:"Av. Los Incas 742, Cusco"`
	Phone    string `json:"phone" db:"phone" example:"+51 984 123 456"`
	Email    string `json:"email" db:"email" example:"contacto@cetprovdc.edu.pe"`
	IsActive bool   `json:"isActive" db:"is_active" example:"true"`
}

// InstitutionAdmin binds one user to one institution. A user may hold at most
// one assignment; the Tenant Resolver derives admin scope from this row.
type InstitutionAdmin struct {
	ID            int64        `json:"id" db:"id"`
	UserID        int64        `json:"userId" db:"user_id"`
	InstitutionID int64        `json:"institutionId" db:"institution_id"`
	User          *User        `json:"user,omitempty"`        // Relation, no db tag
	Institution   *Institution `json:"institution,omitempty"` // Relation, no db tag
}
