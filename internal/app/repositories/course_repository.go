package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/axela/cetpro-backend/internal/app/models"
	"github.com/axela/cetpro-backend/internal/pkg/logger"
)

// Course error types
var (
	ErrCourseNotFound      = ErrNotFound
	ErrCourseAlreadyExists = errors.New("course with this code already exists")
)

// CourseRepository handles course database operations. Courses carry no
// institution column themselves, so every read joins through programs to
// keep other tenants' rows invisible.
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("program_id", "name", "code", "credits", "semester", "weekly_hours").
		Values(course.ProgramID, course.Name, course.Code, course.Credits, course.Semester, course.WeeklyHours).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// GetByID retrieves a course within an institution
func (r *CourseRepository) GetByID(ctx context.Context, institutionID, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select("c.id", "c.program_id", "c.name", "c.code", "c.credits", "c.semester", "c.weekly_hours").
		From("courses c").
		Join("programs p ON p.id = c.program_id").
		Where(squirrel.Eq{"c.id": id, "p.institution_id": institutionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course := &models.Course{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&course.ID, &course.ProgramID, &course.Name, &course.Code,
		&course.Credits, &course.Semester, &course.WeeklyHours,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course: %w", err)
	}

	return course, nil
}

// GetAll retrieves all courses of an institution with program names
func (r *CourseRepository) GetAll(ctx context.Context, institutionID int64) ([]*models.Course, error) {
	return r.list(ctx, squirrel.Eq{"p.institution_id": institutionID})
}

// ListByProgram retrieves the courses of a single program within an institution
func (r *CourseRepository) ListByProgram(ctx context.Context, institutionID, programID int64) ([]*models.Course, error) {
	return r.list(ctx, squirrel.Eq{"p.institution_id": institutionID, "c.program_id": programID})
}

func (r *CourseRepository) list(ctx context.Context, pred squirrel.Eq) ([]*models.Course, error) {
	sql, args, err := r.sb.Select(
		"c.id", "c.program_id", "c.name", "c.code",
		"c.credits", "c.semester", "c.weekly_hours", "p.name",
	).
		From("courses c").
		Join("programs p ON p.id = c.program_id").
		Where(pred).
		OrderBy("p.name ASC", "c.semester ASC", "c.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying courses")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course := &models.Course{Program: &models.Program{}}
		if err := rows.Scan(
			&course.ID, &course.ProgramID, &course.Name, &course.Code,
			&course.Credits, &course.Semester, &course.WeeklyHours,
			&course.Program.Name,
		); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		course.Program.ID = course.ProgramID
		courses = append(courses, course)
	}

	return courses, rows.Err()
}

// Update updates a course within an institution. The subquery keeps the write
// tenant-scoped since courses have no institution column.
func (r *CourseRepository) Update(ctx context.Context, institutionID int64, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"program_id":   course.ProgramID,
			"name":         course.Name,
			"code":         course.Code,
			"credits":      course.Credits,
			"semester":     course.Semester,
			"weekly_hours": course.WeeklyHours,
		}).
		Where(squirrel.Eq{"id": course.ID}).
		Where("program_id IN (SELECT id FROM programs WHERE institution_id = ?)", institutionID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Int64("courseID", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course within an institution
func (r *CourseRepository) Delete(ctx context.Context, institutionID, id int64) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		Where("program_id IN (SELECT id FROM programs WHERE institution_id = ?)", institutionID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}

	return nil
}
