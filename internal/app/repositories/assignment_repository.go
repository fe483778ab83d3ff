package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/axela/cetpro-backend/internal/app/models"
	"github.com/axela/cetpro-backend/internal/db"
	"github.com/axela/cetpro-backend/internal/pkg/logger"
)

// Assignment error types
var (
	ErrAssignmentNotFound      = ErrNotFound
	ErrAssignmentAlreadyExists = errors.New("assignment for this course, period and shift already exists")
	ErrGradeNotFound           = errors.New("grade not found for this assignment")
)

// ScoreUpdate is a single grade write within a bulk update.
type ScoreUpdate struct {
	GradeID int64
	Score   float64
}

// AssignmentRepository handles teaching assignment and grade database
// operations. Assignments reach their institution through the academic
// period, so reads join through academic_periods.
type AssignmentRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(database *db.PostgresDB) *AssignmentRepository {
	return &AssignmentRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new assignment. The unique constraint on the
// (course, period, shift) triple rejects duplicates.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) (int64, error) {
	sql, args, err := r.sb.Insert("assignments").
		Columns("course_id", "teacher_id", "academic_period_id", "shift").
		Values(assignment.CourseID, assignment.TeacherID, assignment.AcademicPeriodID, assignment.Shift).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create assignment query: %w", err)
	}

	var id int64
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, ErrAssignmentAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create assignment query")
		return 0, fmt.Errorf("error creating assignment: %w", err)
	}

	return id, nil
}

// GetByID retrieves an assignment within an institution
func (r *AssignmentRepository) GetByID(ctx context.Context, institutionID, id int64) (*models.Assignment, error) {
	sql, args, err := r.sb.Select(
		"a.id", "a.course_id", "a.teacher_id", "a.academic_period_id", "a.shift",
	).
		From("assignments a").
		Join("academic_periods per ON per.id = a.academic_period_id").
		Where(squirrel.Eq{"a.id": id, "per.institution_id": institutionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get assignment query: %w", err)
	}

	assignment := &models.Assignment{}
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&assignment.ID, &assignment.CourseID, &assignment.TeacherID,
		&assignment.AcademicPeriodID, &assignment.Shift,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAssignmentNotFound
		}
		logger.Error().Err(err).Int64("assignmentID", id).Msg("Error scanning assignment row")
		return nil, fmt.Errorf("error getting assignment: %w", err)
	}

	return assignment, nil
}

// GetAll retrieves all assignments of an institution with course, teacher
// and period detail
func (r *AssignmentRepository) GetAll(ctx context.Context, institutionID int64) ([]*models.Assignment, error) {
	return r.list(ctx, squirrel.Eq{"per.institution_id": institutionID})
}

// ListByTeacher retrieves the assignments of one teacher within an institution
func (r *AssignmentRepository) ListByTeacher(ctx context.Context, institutionID, teacherID int64) ([]*models.Assignment, error) {
	return r.list(ctx, squirrel.Eq{"per.institution_id": institutionID, "a.teacher_id": teacherID})
}

func (r *AssignmentRepository) list(ctx context.Context, pred squirrel.Eq) ([]*models.Assignment, error) {
	sql, args, err := r.sb.Select(
		"a.id", "a.course_id", "a.teacher_id", "a.academic_period_id", "a.shift",
		"c.name", "c.code", "u.first_name", "u.last_name", "per.name", "per.year",
	).
		From("assignments a").
		Join("academic_periods per ON per.id = a.academic_period_id").
		Join("courses c ON c.id = a.course_id").
		Join("teachers t ON t.id = a.teacher_id").
		Join("users u ON u.id = t.user_id").
		Where(pred).
		OrderBy("per.year DESC", "c.name ASC", "a.shift ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list assignments query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying assignments")
		return nil, fmt.Errorf("error querying assignments: %w", err)
	}
	defer rows.Close()

	assignments := []*models.Assignment{}
	for rows.Next() {
		assignment := &models.Assignment{
			Course:         &models.Course{},
			Teacher:        &models.Teacher{User: &models.User{}},
			AcademicPeriod: &models.AcademicPeriod{},
		}
		if err := rows.Scan(
			&assignment.ID, &assignment.CourseID, &assignment.TeacherID,
			&assignment.AcademicPeriodID, &assignment.Shift,
			&assignment.Course.Name, &assignment.Course.Code,
			&assignment.Teacher.User.FirstName, &assignment.Teacher.User.LastName,
			&assignment.AcademicPeriod.Name, &assignment.AcademicPeriod.Year,
		); err != nil {
			return nil, fmt.Errorf("error scanning assignment row: %w", err)
		}
		assignment.Course.ID = assignment.CourseID
		assignment.Teacher.ID = assignment.TeacherID
		assignment.AcademicPeriod.ID = assignment.AcademicPeriodID
		assignments = append(assignments, assignment)
	}

	return assignments, rows.Err()
}

// Update updates an assignment within an institution
func (r *AssignmentRepository) Update(ctx context.Context, institutionID int64, assignment *models.Assignment) error {
	sql, args, err := r.sb.Update("assignments").
		SetMap(map[string]interface{}{
			"teacher_id": assignment.TeacherID,
			"shift":      assignment.Shift,
		}).
		Where(squirrel.Eq{"id": assignment.ID}).
		Where("academic_period_id IN (SELECT id FROM academic_periods WHERE institution_id = ?)", institutionID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update assignment query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrAssignmentAlreadyExists
		}
		logger.Error().Err(err).Int64("assignmentID", assignment.ID).Msg("Error executing update assignment query")
		return fmt.Errorf("error updating assignment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}

// Delete deletes an assignment within an institution
func (r *AssignmentRepository) Delete(ctx context.Context, institutionID, id int64) error {
	sql, args, err := r.sb.Delete("assignments").
		Where(squirrel.Eq{"id": id}).
		Where("academic_period_id IN (SELECT id FROM academic_periods WHERE institution_id = ?)", institutionID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete assignment query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assignmentID", id).Msg("Error executing delete assignment query")
		return fmt.Errorf("error deleting assignment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}

// ListGrades retrieves the grade roster of an assignment with student detail
func (r *AssignmentRepository) ListGrades(ctx context.Context, assignmentID int64) ([]*models.Grade, error) {
	sql, args, err := r.sb.Select(
		"g.id", "g.student_id", "g.assignment_id", "g.score", "g.graded_at",
		"u.first_name", "u.last_name", "s.document_number",
	).
		From("grades g").
		Join("students s ON s.id = g.student_id").
		Join("users u ON u.id = s.user_id").
		Where(squirrel.Eq{"g.assignment_id": assignmentID}).
		OrderBy("u.last_name ASC", "u.first_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list grades query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying grades")
		return nil, fmt.Errorf("error querying grades: %w", err)
	}
	defer rows.Close()

	grades := []*models.Grade{}
	for rows.Next() {
		grade := &models.Grade{Student: &models.Student{User: &models.User{}}}
		if err := rows.Scan(
			&grade.ID, &grade.StudentID, &grade.AssignmentID, &grade.Score, &grade.GradedAt,
			&grade.Student.User.FirstName, &grade.Student.User.LastName,
			&grade.Student.DocumentNumber,
		); err != nil {
			return nil, fmt.Errorf("error scanning grade row: %w", err)
		}
		grade.Student.ID = grade.StudentID
		grades = append(grades, grade)
	}

	return grades, rows.Err()
}

// UpdateScores writes a batch of scores for one assignment in a single
// transaction. A grade id that does not belong to the assignment aborts the
// whole batch.
func (r *AssignmentRepository) UpdateScores(ctx context.Context, assignmentID int64, updates []ScoreUpdate) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		now := time.Now()
		for _, update := range updates {
			sql, args, err := r.sb.Update("grades").
				SetMap(map[string]interface{}{
					"score":     update.Score,
					"graded_at": now,
				}).
				Where(squirrel.Eq{"id": update.GradeID, "assignment_id": assignmentID}).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build update score query: %w", err)
			}

			cmdTag, err := tx.Exec(ctx, sql, args...)
			if err != nil {
				logger.Error().Err(err).Int64("gradeID", update.GradeID).Msg("Error updating grade score")
				return fmt.Errorf("error updating grade score: %w", err)
			}
			if cmdTag.RowsAffected() == 0 {
				return fmt.Errorf("%w: grade %d", ErrGradeNotFound, update.GradeID)
			}
		}

		return nil
	})
}
