package models

// Faculty defines the faculty model based on the 'faculties' table.
// Name is unique within its institution.
type Faculty struct {
	ID            int64  `json:"id" db:"id" example:"1"`
	InstitutionID int64  `json:"institutionId" db:"institution_id" example:"1"`
	Name          string `json:"name" db:"name" example:"Estética Personal"`
	Description   string `json:"description" db:"description" example:"Área de estética y cosmetología"`
}
