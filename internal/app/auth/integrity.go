package auth

import (
	"context"
	"fmt"

	"github.com/axela/cetpro-backend/internal/pkg/apperrors"
)

// Dependent names a table whose rows block deletion of a parent kind.
type Dependent struct {
	Kind   EntityKind
	Table  string
	Column string
}

// blockingTable lists, per entity kind, the dependents that must not exist
// before a delete is allowed. Institution rows are blocked too; the previous
// implementation deleted them unconditionally and silently orphaned the
// tenant's data.
var blockingTable = map[EntityKind][]Dependent{
	KindInstitution: {
		{KindFaculty, "faculties", "institution_id"},
		{KindPlan, "plans", "institution_id"},
		{KindAcademicPeriod, "academic_periods", "institution_id"},
		{KindStudent, "students", "institution_id"},
		{KindTeacher, "teachers", "institution_id"},
	},
	KindFaculty: {
		{KindProgram, "programs", "faculty_id"},
	},
	KindPlan: {
		{KindProgram, "programs", "plan_id"},
	},
	KindProgram: {
		{KindCourse, "courses", "program_id"},
	},
	KindCourse: {
		{KindAssignment, "assignments", "course_id"},
	},
	KindAcademicPeriod: {
		{KindAdmissionProcess, "admission_processes", "academic_period_id"},
		{KindAssignment, "assignments", "academic_period_id"},
	},
	KindAdmissionProcess: {
		{KindEnrollment, "enrollments", "admission_process_id"},
	},
	KindAssignment: {
		{KindGrade, "grades", "assignment_id"},
	},
}

// DependencyCounter counts rows referencing a parent id.
type DependencyCounter interface {
	CountRows(ctx context.Context, table, column string, id int64) (int64, error)
}

// IntegrityGuard blocks destructive operations while dependent rows exist.
type IntegrityGuard struct {
	counter DependencyCounter
}

// NewIntegrityGuard creates a new IntegrityGuard
func NewIntegrityGuard(counter DependencyCounter) *IntegrityGuard {
	return &IntegrityGuard{counter: counter}
}

// AssertDeletable checks every blocking dependent of an entity kind. A
// positive count rejects the delete naming the dependent kind. Kinds absent
// from the blocking table are deletable without checks.
func (g *IntegrityGuard) AssertDeletable(ctx context.Context, kind EntityKind, id int64) error {
	for _, dep := range blockingTable[kind] {
		count, err := g.counter.CountRows(ctx, dep.Table, dep.Column, id)
		if err != nil {
			return fmt.Errorf("failed to count dependent %s rows: %w", dep.Kind, err)
		}
		if count > 0 {
			return apperrors.NewDependencyConflictError(
				fmt.Sprintf("cannot delete %s: %d dependent %s record(s) exist", kind, count, dep.Kind),
			)
		}
	}
	return nil
}
