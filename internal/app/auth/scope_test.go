package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axela/cetpro-backend/internal/app/models"
	"github.com/axela/cetpro-backend/internal/pkg/apperrors"
)

type fakeScopeStore struct {
	adminAssignments map[int64]int64 // user id -> institution id
	teachers         map[int64]*models.Teacher
	students         map[int64]*models.Student
	lookups          int
}

func (f *fakeScopeStore) AdminInstitutionID(_ context.Context, userID int64) (int64, error) {
	f.lookups++
	id, ok := f.adminAssignments[userID]
	if !ok {
		return 0, apperrors.ErrNoInstitutionScope
	}
	return id, nil
}

func (f *fakeScopeStore) TeacherByUserID(_ context.Context, userID int64) (*models.Teacher, error) {
	f.lookups++
	t, ok := f.teachers[userID]
	if !ok {
		return nil, apperrors.ErrNoInstitutionScope
	}
	return t, nil
}

func (f *fakeScopeStore) StudentByUserID(_ context.Context, userID int64) (*models.Student, error) {
	f.lookups++
	s, ok := f.students[userID]
	if !ok {
		return nil, apperrors.ErrNoInstitutionScope
	}
	return s, nil
}

func TestResolveInstitution(t *testing.T) {
	store := &fakeScopeStore{
		adminAssignments: map[int64]int64{10: 1},
	}
	resolver := NewScopeResolver(store)

	tests := []struct {
		name          string
		principal     Principal
		wantGlobal    bool
		wantInstitute int64
		wantErr       error
	}{
		{
			name:       "superadmin gets global scope",
			principal:  Principal{UserID: 1, Role: models.RoleSuperadmin},
			wantGlobal: true,
		},
		{
			name:          "admin with assignment gets its institution",
			principal:     Principal{UserID: 10, Role: models.RoleAdmin},
			wantInstitute: 1,
		},
		{
			name:      "admin without assignment fails closed",
			principal: Principal{UserID: 99, Role: models.RoleAdmin},
			wantErr:   apperrors.ErrNoInstitutionScope,
		},
		{
			name:      "teacher role has no institution scope",
			principal: Principal{UserID: 20, Role: models.RoleTeacher},
			wantErr:   apperrors.ErrNoInstitutionScope,
		},
		{
			name:      "student role has no institution scope",
			principal: Principal{UserID: 30, Role: models.RoleStudent},
			wantErr:   apperrors.ErrNoInstitutionScope,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope, err := resolver.ResolveInstitution(context.Background(), tt.principal)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantGlobal, scope.Global)
			assert.Equal(t, tt.wantInstitute, scope.InstitutionID)
			assert.Equal(t, tt.principal.Role, scope.Role)
		})
	}
}

func TestResolveInstitutionSuperadminSkipsLookup(t *testing.T) {
	store := &fakeScopeStore{}
	resolver := NewScopeResolver(store)

	_, err := resolver.ResolveInstitution(context.Background(), Principal{UserID: 1, Role: models.RoleSuperadmin})
	require.NoError(t, err)
	assert.Zero(t, store.lookups)
}

func TestResolveTeacher(t *testing.T) {
	store := &fakeScopeStore{
		teachers: map[int64]*models.Teacher{
			20: {ID: 7, UserID: 20, InstitutionID: 1},
		},
	}
	resolver := NewScopeResolver(store)

	t.Run("teacher user resolves to its teacher row", func(t *testing.T) {
		teacher, err := resolver.ResolveTeacher(context.Background(), Principal{UserID: 20, Role: models.RoleTeacher})
		require.NoError(t, err)
		assert.Equal(t, int64(7), teacher.ID)
		assert.Equal(t, int64(1), teacher.InstitutionID)
	})

	t.Run("non-teacher role is rejected before any lookup", func(t *testing.T) {
		before := store.lookups
		_, err := resolver.ResolveTeacher(context.Background(), Principal{UserID: 10, Role: models.RoleAdmin})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		assert.Equal(t, before, store.lookups)
	})

	t.Run("teacher user without teacher row fails closed", func(t *testing.T) {
		_, err := resolver.ResolveTeacher(context.Background(), Principal{UserID: 21, Role: models.RoleTeacher})
		assert.ErrorIs(t, err, apperrors.ErrNoInstitutionScope)
	})
}

func TestResolveStudent(t *testing.T) {
	store := &fakeScopeStore{
		students: map[int64]*models.Student{
			30: {ID: 4, UserID: 30, InstitutionID: 2},
		},
	}
	resolver := NewScopeResolver(store)

	student, err := resolver.ResolveStudent(context.Background(), Principal{UserID: 30, Role: models.RoleStudent})
	require.NoError(t, err)
	assert.Equal(t, int64(4), student.ID)

	_, err = resolver.ResolveStudent(context.Background(), Principal{UserID: 30, Role: models.RoleTeacher})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}
