package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID             int64        `json:"id" db:"id"`
	UserID         int64        `json:"userId" db:"user_id"`
	InstitutionID  int64        `json:"institutionId" db:"institution_id"`
	DocumentNumber string       `json:"documentNumber" db:"document_number" example:"71234567"`
	Phone          string       `json:"phone" db:"phone"`
	User           *User        `json:"user,omitempty"`        // Relation, no db tag
	Institution    *Institution `json:"institution,omitempty"` // Relation, no db tag
}

// Teacher defines the teacher model based on the 'teachers' table
type Teacher struct {
	ID            int64        `json:"id" db:"id"`
	UserID        int64        `json:"userId" db:"user_id"`
	InstitutionID int64        `json:"institutionId" db:"institution_id"`
	Specialty     string       `json:"specialty" db:"specialty" example:"Cosmetología"`
	Phone         string       `json:"phone" db:"phone"`
	User          *User        `json:"user,omitempty"`        // Relation, no db tag
	Institution   *Institution `json:"institution,omitempty"` // Relation, no db tag
}
