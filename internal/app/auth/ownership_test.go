package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axela/cetpro-backend/internal/app/models"
	"github.com/axela/cetpro-backend/internal/pkg/apperrors"
)

type fakeOwnershipStore struct {
	owners  map[EntityKind]map[int64]int64 // kind -> id -> institution id
	lookups int
}

func (f *fakeOwnershipStore) InstitutionOf(_ context.Context, kind EntityKind, id int64) (int64, error) {
	f.lookups++
	institutionID, ok := f.owners[kind][id]
	if !ok {
		return 0, apperrors.NewResourceNotFoundError("row missing")
	}
	return institutionID, nil
}

func adminScope(institutionID int64) Scope {
	return Scope{Role: models.RoleAdmin, InstitutionID: institutionID}
}

func TestAssertBelongs(t *testing.T) {
	store := &fakeOwnershipStore{
		owners: map[EntityKind]map[int64]int64{
			KindFaculty: {1: 1, 2: 2},
			KindCourse:  {5: 1},
		},
	}
	validator := NewOwnershipValidator(store)
	ctx := context.Background()

	t.Run("entity in scope passes", func(t *testing.T) {
		assert.NoError(t, validator.AssertBelongs(ctx, adminScope(1), KindFaculty, 1))
	})

	t.Run("entity of another institution is rejected", func(t *testing.T) {
		err := validator.AssertBelongs(ctx, adminScope(1), KindFaculty, 2)
		assert.ErrorIs(t, err, apperrors.ErrNotInScope)
	})

	t.Run("transitive entity resolves through its parent", func(t *testing.T) {
		assert.NoError(t, validator.AssertBelongs(ctx, adminScope(1), KindCourse, 5))
		err := validator.AssertBelongs(ctx, adminScope(2), KindCourse, 5)
		assert.ErrorIs(t, err, apperrors.ErrNotInScope)
	})

	t.Run("missing row surfaces not found", func(t *testing.T) {
		err := validator.AssertBelongs(ctx, adminScope(1), KindFaculty, 99)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})

	t.Run("global scope skips the lookup", func(t *testing.T) {
		before := store.lookups
		err := validator.AssertBelongs(ctx, Scope{Role: models.RoleSuperadmin, Global: true}, KindFaculty, 2)
		require.NoError(t, err)
		assert.Equal(t, before, store.lookups)
	})
}

// A teacher from institution A combined with a course and period from
// institution B must be rejected even though every reference exists.
func TestAssertAllBelongRejectsMismatchedTriple(t *testing.T) {
	store := &fakeOwnershipStore{
		owners: map[EntityKind]map[int64]int64{
			KindCourse:         {1: 2},
			KindTeacher:        {1: 1},
			KindAcademicPeriod: {1: 2},
		},
	}
	validator := NewOwnershipValidator(store)
	ctx := context.Background()

	err := validator.AssertAllBelong(ctx, adminScope(2),
		Ref{KindCourse, 1},
		Ref{KindTeacher, 1},
		Ref{KindAcademicPeriod, 1},
	)
	assert.ErrorIs(t, err, apperrors.ErrNotInScope)

	// The same triple inside one institution passes.
	store.owners[KindTeacher][1] = 2
	assert.NoError(t, validator.AssertAllBelong(ctx, adminScope(2),
		Ref{KindCourse, 1},
		Ref{KindTeacher, 1},
		Ref{KindAcademicPeriod, 1},
	))
}

func TestAssertAllBelongStopsAtFirstFailure(t *testing.T) {
	store := &fakeOwnershipStore{
		owners: map[EntityKind]map[int64]int64{
			KindPlan:    {1: 2},
			KindFaculty: {1: 1},
		},
	}
	validator := NewOwnershipValidator(store)

	err := validator.AssertAllBelong(context.Background(), adminScope(1),
		Ref{KindPlan, 1},
		Ref{KindFaculty, 1},
	)
	assert.ErrorIs(t, err, apperrors.ErrNotInScope)
	assert.Equal(t, 1, store.lookups)
}
