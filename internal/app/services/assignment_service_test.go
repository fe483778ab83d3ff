package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreauth "github.com/axela/cetpro-backend/internal/app/auth"
	"github.com/axela/cetpro-backend/internal/app/models"
	"github.com/axela/cetpro-backend/internal/app/models/dto"
	"github.com/axela/cetpro-backend/internal/pkg/apperrors"
)

func newAssignmentFixture(store *fakeAuthStore) *AssignmentService {
	resolver := coreauth.NewScopeResolver(store)
	validator := coreauth.NewOwnershipValidator(store)
	return NewAssignmentService(nil, resolver, validator, nil)
}

func TestAssignmentCreateRejectsForeignTeacher(t *testing.T) {
	store := &fakeAuthStore{
		adminInstitutions: map[int64]int64{10: 1},
		owners: map[coreauth.EntityKind]map[int64]int64{
			coreauth.KindCourse:         {500: 1},
			coreauth.KindTeacher:        {600: 2},
			coreauth.KindAcademicPeriod: {700: 1},
		},
	}
	svc := newAssignmentFixture(store)
	admin := coreauth.Principal{UserID: 10, Role: models.RoleAdmin}

	_, err := svc.Create(context.Background(), admin, &dto.CreateAssignmentRequest{
		CourseID:         500,
		TeacherID:        600,
		AcademicPeriodID: 700,
		Shift:            "noche",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotInScope)
}

func TestAssignmentCreateRejectsUnknownShift(t *testing.T) {
	store := &fakeAuthStore{
		adminInstitutions: map[int64]int64{10: 1},
		owners: map[coreauth.EntityKind]map[int64]int64{
			coreauth.KindCourse:         {500: 1},
			coreauth.KindTeacher:        {600: 1},
			coreauth.KindAcademicPeriod: {700: 1},
		},
	}
	svc := newAssignmentFixture(store)
	admin := coreauth.Principal{UserID: 10, Role: models.RoleAdmin}

	_, err := svc.Create(context.Background(), admin, &dto.CreateAssignmentRequest{
		CourseID:         500,
		TeacherID:        600,
		AcademicPeriodID: 700,
		Shift:            "madrugada",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAssignmentCreateRejectsForbiddenRole(t *testing.T) {
	svc := newAssignmentFixture(&fakeAuthStore{})

	_, err := svc.Create(context.Background(), coreauth.Principal{UserID: 30, Role: models.RoleStudent}, &dto.CreateAssignmentRequest{
		CourseID:         500,
		TeacherID:        600,
		AcademicPeriodID: 700,
		Shift:            "tarde",
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}
