package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/axela/cetpro-backend/internal/pkg/apperrors"
)

type fakeCounter struct {
	counts map[string]int64 // "table/column" -> count
}

func (f *fakeCounter) CountRows(_ context.Context, table, column string, _ int64) (int64, error) {
	return f.counts[table+"/"+column], nil
}

func TestAssertDeletable(t *testing.T) {
	tests := []struct {
		name    string
		kind    EntityKind
		counts  map[string]int64
		blocked bool
	}{
		{
			name:    "faculty with programs is blocked",
			kind:    KindFaculty,
			counts:  map[string]int64{"programs/faculty_id": 3},
			blocked: true,
		},
		{
			name:   "faculty without programs is deletable",
			kind:   KindFaculty,
			counts: map[string]int64{},
		},
		{
			name:    "plan with programs is blocked",
			kind:    KindPlan,
			counts:  map[string]int64{"programs/plan_id": 1},
			blocked: true,
		},
		{
			name:    "course with assignments is blocked",
			kind:    KindCourse,
			counts:  map[string]int64{"assignments/course_id": 2},
			blocked: true,
		},
		{
			name:    "admission process with enrollments is blocked",
			kind:    KindAdmissionProcess,
			counts:  map[string]int64{"enrollments/admission_process_id": 12},
			blocked: true,
		},
		{
			name:    "assignment with grades is blocked",
			kind:    KindAssignment,
			counts:  map[string]int64{"grades/assignment_id": 25},
			blocked: true,
		},
		{
			name:    "period with an admission process is blocked",
			kind:    KindAcademicPeriod,
			counts:  map[string]int64{"admission_processes/academic_period_id": 1},
			blocked: true,
		},
		{
			name:    "institution with students is blocked",
			kind:    KindInstitution,
			counts:  map[string]int64{"students/institution_id": 40},
			blocked: true,
		},
		{
			name:   "empty institution is deletable",
			kind:   KindInstitution,
			counts: map[string]int64{},
		},
		{
			name:   "kind without blocking rules is deletable",
			kind:   KindEnrollment,
			counts: map[string]int64{"grades/assignment_id": 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := NewIntegrityGuard(&fakeCounter{counts: tt.counts})
			err := guard.AssertDeletable(context.Background(), tt.kind, 1)
			if tt.blocked {
				assert.ErrorIs(t, err, apperrors.ErrDependencyConflict)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAssertDeletableNamesDependentKind(t *testing.T) {
	guard := NewIntegrityGuard(&fakeCounter{counts: map[string]int64{"programs/faculty_id": 2}})
	err := guard.AssertDeletable(context.Background(), KindFaculty, 7)
	assert.ErrorContains(t, err, "program")
}
