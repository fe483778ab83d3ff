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

// fakeAuthStore backs the scope resolver, ownership validator and integrity
// guard in service tests. Entities are keyed by kind and id; missing rows
// behave like the real store. countQueries records dependency-count lookups.
type fakeAuthStore struct {
	adminInstitutions map[int64]int64
	owners            map[coreauth.EntityKind]map[int64]int64
	dependentRows     int64
	countQueries      int
}

func (s *fakeAuthStore) AdminInstitutionID(_ context.Context, userID int64) (int64, error) {
	institutionID, ok := s.adminInstitutions[userID]
	if !ok {
		return 0, apperrors.ErrNoInstitutionScope
	}
	return institutionID, nil
}

func (s *fakeAuthStore) TeacherByUserID(_ context.Context, _ int64) (*models.Teacher, error) {
	return nil, apperrors.ErrNoInstitutionScope
}

func (s *fakeAuthStore) StudentByUserID(_ context.Context, _ int64) (*models.Student, error) {
	return nil, apperrors.ErrNoInstitutionScope
}

func (s *fakeAuthStore) InstitutionOf(_ context.Context, kind coreauth.EntityKind, id int64) (int64, error) {
	institutionID, ok := s.owners[kind][id]
	if !ok {
		return 0, apperrors.ErrResourceNotFound
	}
	return institutionID, nil
}

func (s *fakeAuthStore) CountRows(_ context.Context, _, _ string, _ int64) (int64, error) {
	s.countQueries++
	return s.dependentRows, nil
}

// newEnrollmentFixture wires an EnrollmentService over the fake store. The
// repository is nil on purpose: every test here must fail before a write.
func newEnrollmentFixture(store *fakeAuthStore) *EnrollmentService {
	resolver := coreauth.NewScopeResolver(store)
	validator := coreauth.NewOwnershipValidator(store)
	return NewEnrollmentService(nil, resolver, validator)
}

func TestEnrollmentCreateRejectsCrossInstitutionRefs(t *testing.T) {
	store := &fakeAuthStore{
		adminInstitutions: map[int64]int64{10: 1},
		owners: map[coreauth.EntityKind]map[int64]int64{
			coreauth.KindStudent:          {100: 1},
			coreauth.KindProgram:          {200: 1},
			coreauth.KindAdmissionProcess: {300: 2},
		},
	}
	svc := newEnrollmentFixture(store)
	admin := coreauth.Principal{UserID: 10, Role: models.RoleAdmin}

	// Student and program belong to institution 1, the admission process
	// to institution 2. Each row exists; the combination must not.
	_, err := svc.Create(context.Background(), admin, &dto.CreateEnrollmentRequest{
		StudentID:          100,
		ProgramID:          200,
		AdmissionProcessID: 300,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotInScope)
}

func TestEnrollmentCreateRejectsMissingReference(t *testing.T) {
	store := &fakeAuthStore{
		adminInstitutions: map[int64]int64{10: 1},
		owners: map[coreauth.EntityKind]map[int64]int64{
			coreauth.KindStudent: {100: 1},
		},
	}
	svc := newEnrollmentFixture(store)
	admin := coreauth.Principal{UserID: 10, Role: models.RoleAdmin}

	_, err := svc.Create(context.Background(), admin, &dto.CreateEnrollmentRequest{
		StudentID:          100,
		ProgramID:          999,
		AdmissionProcessID: 300,
	})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestEnrollmentCreateRejectsForbiddenRole(t *testing.T) {
	svc := newEnrollmentFixture(&fakeAuthStore{})

	for _, role := range []models.RoleType{models.RoleTeacher, models.RoleStudent} {
		_, err := svc.Create(context.Background(), coreauth.Principal{UserID: 20, Role: role}, &dto.CreateEnrollmentRequest{
			StudentID:          100,
			ProgramID:          200,
			AdmissionProcessID: 300,
		})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied, "role %s", role)
	}
}

func TestEnrollmentCreateRejectsAdminWithoutAssignment(t *testing.T) {
	svc := newEnrollmentFixture(&fakeAuthStore{adminInstitutions: map[int64]int64{}})

	_, err := svc.Create(context.Background(), coreauth.Principal{UserID: 10, Role: models.RoleAdmin}, &dto.CreateEnrollmentRequest{
		StudentID:          100,
		ProgramID:          200,
		AdmissionProcessID: 300,
	})
	assert.ErrorIs(t, err, apperrors.ErrNoInstitutionScope)
}

func TestRegisterCourseRejectsForeignCourse(t *testing.T) {
	store := &fakeAuthStore{
		adminInstitutions: map[int64]int64{10: 1},
		owners: map[coreauth.EntityKind]map[int64]int64{
			coreauth.KindEnrollment: {400: 1},
			coreauth.KindCourse:     {500: 2},
		},
	}
	svc := newEnrollmentFixture(store)
	admin := coreauth.Principal{UserID: 10, Role: models.RoleAdmin}

	err := svc.RegisterCourse(context.Background(), admin, &dto.RegisterCourseRequest{
		EnrollmentID: 400,
		CourseID:     500,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotInScope)
}

func TestListRegisteredCoursesRejectsForeignEnrollment(t *testing.T) {
	store := &fakeAuthStore{
		adminInstitutions: map[int64]int64{10: 1},
		owners: map[coreauth.EntityKind]map[int64]int64{
			coreauth.KindEnrollment: {400: 2},
		},
	}
	svc := newEnrollmentFixture(store)
	admin := coreauth.Principal{UserID: 10, Role: models.RoleAdmin}

	_, err := svc.ListRegisteredCourses(context.Background(), admin, 400)
	assert.ErrorIs(t, err, apperrors.ErrNotInScope)
}
