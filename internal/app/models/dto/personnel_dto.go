package dto

// StudentResponse is the flattened list view of a student with user fields
type StudentResponse struct {
	ID             int64  `json:"id"`
	UserID         int64  `json:"userId"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	DocumentNumber string `json:"documentNumber"`
	Phone          string `json:"phone,omitempty"`
}

// TeacherResponse is the flattened list view of a teacher with user fields
type TeacherResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Specialty string `json:"specialty,omitempty"`
	Phone     string `json:"phone,omitempty"`
}
