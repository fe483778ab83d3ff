package models

// RoleType defines the user role type
type RoleType string

// Role constants. Teacher and student keep their Spanish stored values because
// existing clients send and expect them.
const (
	RoleSuperadmin RoleType = "superadmin"
	RoleAdmin      RoleType = "admin"
	RoleTeacher    RoleType = "docente"
	RoleStudent    RoleType = "estudiante"
)

// ParseRoleType maps a stored role string onto the closed role set.
func ParseRoleType(s string) (RoleType, bool) {
	switch RoleType(s) {
	case RoleSuperadmin, RoleAdmin, RoleTeacher, RoleStudent:
		return RoleType(s), true
	}
	return "", false
}

// Shift represents the time block of an assignment
type Shift string

// Shift constants
const (
	ShiftMorning   Shift = "mañana"
	ShiftAfternoon Shift = "tarde"
	ShiftEvening   Shift = "noche"
)

// ParseShift maps a shift string onto the closed shift set.
func ParseShift(s string) (Shift, bool) {
	switch Shift(s) {
	case ShiftMorning, ShiftAfternoon, ShiftEvening:
		return Shift(s), true
	}
	return "", false
}
