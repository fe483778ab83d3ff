package auth

import (
	"context"
	"fmt"

	"github.com/axela/cetpro-backend/internal/pkg/apperrors"
)

// EntityKind names an ownable entity for ownership and integrity checks.
type EntityKind string

// Entity kinds
const (
	KindInstitution      EntityKind = "institution"
	KindFaculty          EntityKind = "faculty"
	KindPlan             EntityKind = "plan"
	KindProgram          EntityKind = "program"
	KindCourse           EntityKind = "course"
	KindAcademicPeriod   EntityKind = "academic_period"
	KindAdmissionProcess EntityKind = "admission_process"
	KindStudent          EntityKind = "student"
	KindTeacher          EntityKind = "teacher"
	KindEnrollment       EntityKind = "enrollment"
	KindAssignment       EntityKind = "assignment"
	KindGrade            EntityKind = "grade"
)

// Ref pairs an entity kind with a row id, for validating foreign key sets.
type Ref struct {
	Kind EntityKind
	ID   int64
}

// OwnershipStore resolves the owning institution of a row, following at most
// one relation hop. It returns apperrors.ErrResourceNotFound when the row
// does not exist.
type OwnershipStore interface {
	InstitutionOf(ctx context.Context, kind EntityKind, id int64) (int64, error)
}

// OwnershipValidator confirms that referenced entities belong to the caller's
// scope. One shared kind -> relation-path table replaces the per-endpoint
// checks this service grew out of.
type OwnershipValidator struct {
	store OwnershipStore
}

// NewOwnershipValidator creates a new OwnershipValidator
func NewOwnershipValidator(store OwnershipStore) *OwnershipValidator {
	return &OwnershipValidator{store: store}
}

// AssertBelongs verifies that one entity belongs to the scope's institution.
// Global scope passes without a lookup.
func (v *OwnershipValidator) AssertBelongs(ctx context.Context, scope Scope, kind EntityKind, id int64) error {
	if scope.Global {
		return nil
	}

	institutionID, err := v.store.InstitutionOf(ctx, kind, id)
	if err != nil {
		return err
	}

	if institutionID != scope.InstitutionID {
		return &apperrors.CustomError{
			Err:     apperrors.ErrNotInScope,
			Message: fmt.Sprintf("%s %d does not belong to your institution", kind, id),
		}
	}

	return nil
}

// AssertAllBelong verifies every reference in a payload against the same
// scope. Each reference is checked independently, so a combination of
// individually valid entities from different institutions is rejected.
func (v *OwnershipValidator) AssertAllBelong(ctx context.Context, scope Scope, refs ...Ref) error {
	for _, ref := range refs {
		if err := v.AssertBelongs(ctx, scope, ref.Kind, ref.ID); err != nil {
			return err
		}
	}
	return nil
}
