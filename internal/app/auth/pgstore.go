package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/axela/cetpro-backend/internal/app/models"
	"github.com/axela/cetpro-backend/internal/pkg/apperrors"
	"github.com/axela/cetpro-backend/internal/pkg/logger"
)

// ownershipPath describes how a kind's row resolves to its institution:
// either a direct institution_id column or a single join to a parent table
// that has one.
type ownershipPath struct {
	table string
	// set for transitive kinds
	parentTable string
	fkColumn    string
}

var ownershipPaths = map[EntityKind]ownershipPath{
	KindFaculty:          {table: "faculties"},
	KindPlan:             {table: "plans"},
	KindProgram:          {table: "programs"},
	KindAcademicPeriod:   {table: "academic_periods"},
	KindStudent:          {table: "students"},
	KindTeacher:          {table: "teachers"},
	KindCourse:           {table: "courses", parentTable: "programs", fkColumn: "program_id"},
	KindAdmissionProcess: {table: "admission_processes", parentTable: "academic_periods", fkColumn: "academic_period_id"},
	KindAssignment:       {table: "assignments", parentTable: "academic_periods", fkColumn: "academic_period_id"},
	KindEnrollment:       {table: "enrollments", parentTable: "students", fkColumn: "student_id"},
}

// PgAuthStore backs the scope resolver, ownership validator and integrity
// guard with PostgreSQL lookups.
type PgAuthStore struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPgAuthStore creates a new PgAuthStore
func NewPgAuthStore(db *pgxpool.Pool) *PgAuthStore {
	return &PgAuthStore{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// AdminInstitutionID implements ScopeStore
func (s *PgAuthStore) AdminInstitutionID(ctx context.Context, userID int64) (int64, error) {
	sql, args, err := s.sb.Select("institution_id").
		From("institution_admins").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build admin scope query: %w", err)
	}

	var institutionID int64
	err = s.db.QueryRow(ctx, sql, args...).Scan(&institutionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNoInstitutionScope
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error resolving admin institution")
		return 0, fmt.Errorf("error resolving admin institution: %w", err)
	}

	return institutionID, nil
}

// TeacherByUserID implements ScopeStore
func (s *PgAuthStore) TeacherByUserID(ctx context.Context, userID int64) (*models.Teacher, error) {
	sql, args, err := s.sb.Select("id", "user_id", "institution_id", "specialty", "phone").
		From("teachers").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build teacher scope query: %w", err)
	}

	teacher := &models.Teacher{}
	err = s.db.QueryRow(ctx, sql, args...).Scan(&teacher.ID, &teacher.UserID, &teacher.InstitutionID, &teacher.Specialty, &teacher.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoInstitutionScope
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error resolving teacher scope")
		return nil, fmt.Errorf("error resolving teacher scope: %w", err)
	}

	return teacher, nil
}

// StudentByUserID implements ScopeStore
func (s *PgAuthStore) StudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	sql, args, err := s.sb.Select("id", "user_id", "institution_id", "document_number", "phone").
		From("students").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student scope query: %w", err)
	}

	student := &models.Student{}
	err = s.db.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.UserID, &student.InstitutionID, &student.DocumentNumber, &student.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoInstitutionScope
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error resolving student scope")
		return nil, fmt.Errorf("error resolving student scope: %w", err)
	}

	return student, nil
}

// InstitutionOf implements OwnershipStore using the kind -> relation-path
// table.
func (s *PgAuthStore) InstitutionOf(ctx context.Context, kind EntityKind, id int64) (int64, error) {
	path, ok := ownershipPaths[kind]
	if !ok {
		return 0, fmt.Errorf("no ownership path for entity kind %q", kind)
	}

	var builder squirrel.SelectBuilder
	if path.parentTable == "" {
		builder = s.sb.Select("t.institution_id").
			From(path.table + " t").
			Where(squirrel.Eq{"t.id": id})
	} else {
		builder = s.sb.Select("p.institution_id").
			From(path.table + " t").
			Join(fmt.Sprintf("%s p ON p.id = t.%s", path.parentTable, path.fkColumn)).
			Where(squirrel.Eq{"t.id": id})
	}

	sql, args, err := builder.Limit(1).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build ownership query: %w", err)
	}

	var institutionID int64
	err = s.db.QueryRow(ctx, sql, args...).Scan(&institutionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NewResourceNotFoundError(fmt.Sprintf("%s %d not found", kind, id))
		}
		logger.Error().Err(err).Str("kind", string(kind)).Int64("id", id).Msg("Error resolving entity institution")
		return 0, fmt.Errorf("error resolving entity institution: %w", err)
	}

	return institutionID, nil
}

// CountRows implements DependencyCounter
func (s *PgAuthStore) CountRows(ctx context.Context, table, column string, id int64) (int64, error) {
	sql, args, err := s.sb.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{column: id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build dependency count query: %w", err)
	}

	var count int64
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error counting dependent rows")
		return 0, fmt.Errorf("error counting dependent rows: %w", err)
	}

	return count, nil
}
