package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	coreauth "github.com/axela/cetpro-backend/internal/app/auth"
	"github.com/axela/cetpro-backend/internal/app/models"
	"github.com/axela/cetpro-backend/internal/pkg/apperrors"
)

// newPlanFixture wires a PlanService over the fake store. The repository is
// nil on purpose: every test here must fail before a write.
func newPlanFixture(store *fakeAuthStore) *PlanService {
	resolver := coreauth.NewScopeResolver(store)
	validator := coreauth.NewOwnershipValidator(store)
	guard := coreauth.NewIntegrityGuard(store)
	return NewPlanService(nil, resolver, validator, guard)
}

func TestPlanDeleteRejectsForeignPlanWithoutCounting(t *testing.T) {
	store := &fakeAuthStore{
		adminInstitutions: map[int64]int64{10: 1},
		owners: map[coreauth.EntityKind]map[int64]int64{
			coreauth.KindPlan: {99: 2},
		},
		dependentRows: 3,
	}
	svc := newPlanFixture(store)
	admin := coreauth.Principal{UserID: 10, Role: models.RoleAdmin}

	// Plan 99 belongs to institution 2 and has dependents. The caller must
	// get an ownership rejection, never a conflict carrying the count.
	err := svc.Delete(context.Background(), admin, 99)
	assert.ErrorIs(t, err, apperrors.ErrNotInScope)
	assert.Zero(t, store.countQueries)
}

func TestPlanDeleteRejectsMissingPlanWithoutCounting(t *testing.T) {
	store := &fakeAuthStore{
		adminInstitutions: map[int64]int64{10: 1},
		owners:            map[coreauth.EntityKind]map[int64]int64{},
	}
	svc := newPlanFixture(store)
	admin := coreauth.Principal{UserID: 10, Role: models.RoleAdmin}

	err := svc.Delete(context.Background(), admin, 99)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Zero(t, store.countQueries)
}

func TestPlanDeleteBlockedByDependentsInScope(t *testing.T) {
	store := &fakeAuthStore{
		adminInstitutions: map[int64]int64{10: 1},
		owners: map[coreauth.EntityKind]map[int64]int64{
			coreauth.KindPlan: {99: 1},
		},
		dependentRows: 3,
	}
	svc := newPlanFixture(store)
	admin := coreauth.Principal{UserID: 10, Role: models.RoleAdmin}

	err := svc.Delete(context.Background(), admin, 99)
	assert.ErrorIs(t, err, apperrors.ErrDependencyConflict)
	assert.NotZero(t, store.countQueries)
}
