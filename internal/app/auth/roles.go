package auth

import (
	"github.com/axela/cetpro-backend/internal/app/models"
)

// Capability names a class of operations a role may perform. Authorization
// decisions go through this table instead of ad hoc role comparisons in
// handlers.
type Capability string

// Capabilities
const (
	CapManageInstitutions Capability = "institutions:manage"
	CapManageAdmins       Capability = "institution-admins:manage"
	// CapManageAcademics covers faculties, plans, programs, courses,
	// academic periods and admission processes.
	CapManageAcademics   Capability = "academics:manage"
	CapManageEnrollments Capability = "enrollments:manage"
	CapManageAssignments Capability = "assignments:manage"
	CapViewPersonnel     Capability = "personnel:view"
	CapGradeAssignments  Capability = "assignments:grade"
)

// capabilityTable is the closed role -> capability mapping.
var capabilityTable = map[models.RoleType]map[Capability]bool{
	models.RoleSuperadmin: {
		CapManageInstitutions: true,
		CapManageAdmins:       true,
	},
	models.RoleAdmin: {
		CapManageAcademics:   true,
		CapManageEnrollments: true,
		CapManageAssignments: true,
		CapViewPersonnel:     true,
	},
	models.RoleTeacher: {
		CapGradeAssignments: true,
	},
	models.RoleStudent: {},
}

// Can reports whether a role holds a capability. Unknown roles hold none.
func Can(role models.RoleType, capability Capability) bool {
	caps, ok := capabilityTable[role]
	if !ok {
		return false
	}
	return caps[capability]
}
