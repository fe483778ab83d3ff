package auth

import (
	"context"

	"github.com/axela/cetpro-backend/internal/app/models"
	"github.com/axela/cetpro-backend/internal/pkg/apperrors"
)

// Principal is the authenticated caller identity attached by token
// verification.
type Principal struct {
	UserID int64
	Role   models.RoleType
}

// Scope is the tenancy a principal may act within. Services resolve it once
// at the start of an operation and pass it explicitly from there on.
type Scope struct {
	Role          models.RoleType
	InstitutionID int64
	// Global marks superadmin scope; institution filters are skipped
	// explicitly, never by accident.
	Global bool
}

// ScopeStore looks up the rows scope resolution depends on.
type ScopeStore interface {
	// AdminInstitutionID returns the institution an admin user is assigned
	// to, or apperrors.ErrNoInstitutionScope when no assignment exists.
	AdminInstitutionID(ctx context.Context, userID int64) (int64, error)
	// TeacherByUserID returns the teacher row for a user, or
	// apperrors.ErrNoInstitutionScope when the user has none.
	TeacherByUserID(ctx context.Context, userID int64) (*models.Teacher, error)
	// StudentByUserID returns the student row for a user, or
	// apperrors.ErrNoInstitutionScope when the user has none.
	StudentByUserID(ctx context.Context, userID int64) (*models.Student, error)
}

// ScopeResolver implements the Tenant Resolver. Every resolution failure is
// fail-closed: callers reject the request instead of falling back to an
// unscoped query.
type ScopeResolver struct {
	store ScopeStore
}

// NewScopeResolver creates a new ScopeResolver
func NewScopeResolver(store ScopeStore) *ScopeResolver {
	return &ScopeResolver{store: store}
}

// ResolveInstitution computes the institution scope for a principal.
// Superadmins get global scope; admins get the institution of their
// assignment; any other role has no institution scope.
func (r *ScopeResolver) ResolveInstitution(ctx context.Context, p Principal) (Scope, error) {
	switch p.Role {
	case models.RoleSuperadmin:
		return Scope{Role: p.Role, Global: true}, nil
	case models.RoleAdmin:
		institutionID, err := r.store.AdminInstitutionID(ctx, p.UserID)
		if err != nil {
			return Scope{}, err
		}
		return Scope{Role: p.Role, InstitutionID: institutionID}, nil
	default:
		return Scope{}, apperrors.ErrNoInstitutionScope
	}
}

// ResolveTeacher maps a teacher-role principal to its teacher row. This is
// the narrower resolver used by the teacher-facing endpoints.
func (r *ScopeResolver) ResolveTeacher(ctx context.Context, p Principal) (*models.Teacher, error) {
	if p.Role != models.RoleTeacher {
		return nil, apperrors.ErrPermissionDenied
	}
	return r.store.TeacherByUserID(ctx, p.UserID)
}

// ResolveStudent maps a student-role principal to its student row.
func (r *ScopeResolver) ResolveStudent(ctx context.Context, p Principal) (*models.Student, error) {
	if p.Role != models.RoleStudent {
		return nil, apperrors.ErrPermissionDenied
	}
	return r.store.StudentByUserID(ctx, p.UserID)
}
