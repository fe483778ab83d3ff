package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/axela/cetpro-backend/internal/app/models"
)

func TestCan(t *testing.T) {
	tests := []struct {
		role       models.RoleType
		capability Capability
		want       bool
	}{
		{models.RoleSuperadmin, CapManageInstitutions, true},
		{models.RoleSuperadmin, CapManageAdmins, true},
		{models.RoleSuperadmin, CapManageAcademics, false},
		{models.RoleAdmin, CapManageAcademics, true},
		{models.RoleAdmin, CapManageEnrollments, true},
		{models.RoleAdmin, CapManageAssignments, true},
		{models.RoleAdmin, CapViewPersonnel, true},
		{models.RoleAdmin, CapManageInstitutions, false},
		{models.RoleAdmin, CapGradeAssignments, false},
		{models.RoleTeacher, CapGradeAssignments, true},
		{models.RoleTeacher, CapManageAcademics, false},
		{models.RoleStudent, CapGradeAssignments, false},
		{models.RoleType("unknown"), CapManageAcademics, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Can(tt.role, tt.capability),
			"role %s capability %s", tt.role, tt.capability)
	}
}

func TestParseRoleType(t *testing.T) {
	for _, valid := range []string{"superadmin", "admin", "docente", "estudiante"} {
		role, ok := models.ParseRoleType(valid)
		assert.True(t, ok)
		assert.Equal(t, models.RoleType(valid), role)
	}

	for _, invalid := range []string{"", "ADMIN", "root", "teacher"} {
		_, ok := models.ParseRoleType(invalid)
		assert.False(t, ok, "role %q should not parse", invalid)
	}
}
