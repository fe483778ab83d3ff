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

// Enrollment error types
var (
	ErrEnrollmentNotFound      = ErrNotFound
	ErrEnrollmentAlreadyExists = errors.New("student is already enrolled in this program for the admission process")
	ErrCourseAlreadyRegistered = errors.New("course is already registered for this enrollment")
	ErrCourseNotRegistered     = errors.New("course is not registered for this enrollment")
	ErrNoAssignmentForCourse   = errors.New("course has no assignment in the enrollment's academic period")
)

// EnrollmentRepository handles enrollment database operations. Course
// registration keeps enrollment_courses and grades in step: both rows are
// written or removed inside one transaction, never separately.
type EnrollmentRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(database *db.PostgresDB) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new enrollment. The unique constraint on the
// (student, program, process) triple rejects duplicates.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) (int64, error) {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("student_id", "program_id", "admission_process_id").
		Values(enrollment.StudentID, enrollment.ProgramID, enrollment.AdmissionProcessID).
		Suffix("RETURNING id, enrolled_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	var id int64
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&id, &enrollment.EnrolledAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, ErrEnrollmentAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create enrollment query")
		return 0, fmt.Errorf("error creating enrollment: %w", err)
	}

	return id, nil
}

// GetAll retrieves all enrollments of an institution with student, program
// and process detail
func (r *EnrollmentRepository) GetAll(ctx context.Context, institutionID int64) ([]*models.Enrollment, error) {
	sql, args, err := r.sb.Select(
		"e.id", "e.student_id", "e.program_id", "e.admission_process_id", "e.enrolled_at",
		"u.first_name", "u.last_name", "s.document_number", "p.name", "ap.name",
	).
		From("enrollments e").
		Join("students s ON s.id = e.student_id").
		Join("users u ON u.id = s.user_id").
		Join("programs p ON p.id = e.program_id").
		Join("admission_processes ap ON ap.id = e.admission_process_id").
		Where(squirrel.Eq{"s.institution_id": institutionID}).
		OrderBy("e.enrolled_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all enrollments query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying enrollments")
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		enrollment := &models.Enrollment{
			Student:          &models.Student{User: &models.User{}},
			Program:          &models.Program{},
			AdmissionProcess: &models.AdmissionProcess{},
		}
		if err := rows.Scan(
			&enrollment.ID, &enrollment.StudentID, &enrollment.ProgramID,
			&enrollment.AdmissionProcessID, &enrollment.EnrolledAt,
			&enrollment.Student.User.FirstName, &enrollment.Student.User.LastName,
			&enrollment.Student.DocumentNumber,
			&enrollment.Program.Name, &enrollment.AdmissionProcess.Name,
		); err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollment.Student.ID = enrollment.StudentID
		enrollment.Program.ID = enrollment.ProgramID
		enrollment.AdmissionProcess.ID = enrollment.AdmissionProcessID
		enrollments = append(enrollments, enrollment)
	}

	return enrollments, rows.Err()
}

// Delete removes an enrollment together with its course registrations and
// the grades those registrations created, all in one transaction. Grades of
// other periods are untouched.
func (r *EnrollmentRepository) Delete(ctx context.Context, institutionID, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		enrollment, err := r.getForUpdate(ctx, tx, institutionID, id)
		if err != nil {
			return err
		}

		const deleteGrades = `
			DELETE FROM grades g
			USING assignments a, enrollment_courses ec, admission_processes ap
			WHERE g.assignment_id = a.id
			  AND ec.enrollment_id = $1
			  AND ec.course_id = a.course_id
			  AND ap.id = $2
			  AND a.academic_period_id = ap.academic_period_id
			  AND g.student_id = $3`
		if _, err := tx.Exec(ctx, deleteGrades, id, enrollment.AdmissionProcessID, enrollment.StudentID); err != nil {
			logger.Error().Err(err).Int64("enrollmentID", id).Msg("Error deleting enrollment grades")
			return fmt.Errorf("error deleting enrollment grades: %w", err)
		}

		sql, args, err := r.sb.Delete("enrollment_courses").
			Where(squirrel.Eq{"enrollment_id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete enrollment courses query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error deleting enrollment courses: %w", err)
		}

		sql, args, err = r.sb.Delete("enrollments").
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete enrollment query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error deleting enrollment: %w", err)
		}

		return nil
	})
}

// getForUpdate loads and locks the enrollment row inside a transaction so
// concurrent registrations against the same enrollment serialize.
func (r *EnrollmentRepository) getForUpdate(ctx context.Context, tx pgx.Tx, institutionID, id int64) (*models.Enrollment, error) {
	sql, args, err := r.sb.Select(
		"e.id", "e.student_id", "e.program_id", "e.admission_process_id", "e.enrolled_at",
	).
		From("enrollments e").
		Join("students s ON s.id = e.student_id").
		Where(squirrel.Eq{"e.id": id, "s.institution_id": institutionID}).
		Suffix("FOR UPDATE OF e").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build lock enrollment query: %w", err)
	}

	enrollment := &models.Enrollment{}
	err = tx.QueryRow(ctx, sql, args...).Scan(
		&enrollment.ID, &enrollment.StudentID, &enrollment.ProgramID,
		&enrollment.AdmissionProcessID, &enrollment.EnrolledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error locking enrollment: %w", err)
	}

	return enrollment, nil
}

// periodOfProcess resolves the academic period an admission process belongs to.
func (r *EnrollmentRepository) periodOfProcess(ctx context.Context, tx pgx.Tx, processID int64) (int64, error) {
	sql, args, err := r.sb.Select("academic_period_id").
		From("admission_processes").
		Where(squirrel.Eq{"id": processID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build period lookup query: %w", err)
	}

	var periodID int64
	if err := tx.QueryRow(ctx, sql, args...).Scan(&periodID); err != nil {
		return 0, fmt.Errorf("error resolving admission process period: %w", err)
	}

	return periodID, nil
}

// RegisterCourse adds a course to an enrollment. The enrollment_courses row
// and the empty grade for the course's assignment are written in the same
// transaction.
func (r *EnrollmentRepository) RegisterCourse(ctx context.Context, institutionID, enrollmentID, courseID int64) (int64, error) {
	var gradeID int64
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		enrollment, err := r.getForUpdate(ctx, tx, institutionID, enrollmentID)
		if err != nil {
			return err
		}

		periodID, err := r.periodOfProcess(ctx, tx, enrollment.AdmissionProcessID)
		if err != nil {
			return err
		}

		sql, args, err := r.sb.Select("id").
			From("assignments").
			Where(squirrel.Eq{"course_id": courseID, "academic_period_id": periodID}).
			OrderBy("id ASC").
			Limit(1).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build assignment lookup query: %w", err)
		}

		var assignmentID int64
		if err := tx.QueryRow(ctx, sql, args...).Scan(&assignmentID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNoAssignmentForCourse
			}
			return fmt.Errorf("error looking up course assignment: %w", err)
		}

		sql, args, err = r.sb.Insert("enrollment_courses").
			Columns("enrollment_id", "course_id").
			Values(enrollmentID, courseID).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build register course query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			if isDuplicateKeyError(err) {
				return ErrCourseAlreadyRegistered
			}
			return fmt.Errorf("error registering course: %w", err)
		}

		sql, args, err = r.sb.Insert("grades").
			Columns("student_id", "assignment_id").
			Values(enrollment.StudentID, assignmentID).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create grade query: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&gradeID); err != nil {
			if isDuplicateKeyError(err) {
				return ErrCourseAlreadyRegistered
			}
			return fmt.Errorf("error creating grade record: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return gradeID, nil
}

// RemoveCourse drops a course from an enrollment, removing the registration
// row and its grade in the same transaction.
func (r *EnrollmentRepository) RemoveCourse(ctx context.Context, institutionID, enrollmentID, courseID int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		enrollment, err := r.getForUpdate(ctx, tx, institutionID, enrollmentID)
		if err != nil {
			return err
		}

		periodID, err := r.periodOfProcess(ctx, tx, enrollment.AdmissionProcessID)
		if err != nil {
			return err
		}

		sql, args, err := r.sb.Delete("enrollment_courses").
			Where(squirrel.Eq{"enrollment_id": enrollmentID, "course_id": courseID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build remove course query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("error removing course registration: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrCourseNotRegistered
		}

		const deleteGrade = `
			DELETE FROM grades g
			USING assignments a
			WHERE g.assignment_id = a.id
			  AND g.student_id = $1
			  AND a.course_id = $2
			  AND a.academic_period_id = $3`
		if _, err := tx.Exec(ctx, deleteGrade, enrollment.StudentID, courseID, periodID); err != nil {
			logger.Error().Err(err).Int64("enrollmentID", enrollmentID).Msg("Error deleting course grade")
			return fmt.Errorf("error deleting course grade: %w", err)
		}

		return nil
	})
}

// ListRegisteredCourses retrieves the courses registered for an enrollment
// with their grade state
func (r *EnrollmentRepository) ListRegisteredCourses(ctx context.Context, institutionID, enrollmentID int64) ([]*RegisteredCourseRow, error) {
	sql, args, err := r.sb.Select(
		"c.id", "c.name", "c.code", "c.credits", "g.id", "g.score", "g.graded_at",
	).
		From("enrollment_courses ec").
		Join("enrollments e ON e.id = ec.enrollment_id").
		Join("students s ON s.id = e.student_id").
		Join("courses c ON c.id = ec.course_id").
		Join("admission_processes ap ON ap.id = e.admission_process_id").
		Join("assignments a ON a.course_id = c.id AND a.academic_period_id = ap.academic_period_id").
		Join("grades g ON g.assignment_id = a.id AND g.student_id = e.student_id").
		Where(squirrel.Eq{"ec.enrollment_id": enrollmentID, "s.institution_id": institutionID}).
		OrderBy("c.semester ASC", "c.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build registered courses query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying registered courses")
		return nil, fmt.Errorf("error querying registered courses: %w", err)
	}
	defer rows.Close()

	courses := []*RegisteredCourseRow{}
	for rows.Next() {
		course := &RegisteredCourseRow{}
		if err := rows.Scan(
			&course.CourseID, &course.Name, &course.Code, &course.Credits,
			&course.GradeID, &course.Score, &course.GradedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning registered course row: %w", err)
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}

// ListAvailableCourses retrieves the program courses an enrollment has not
// registered yet
func (r *EnrollmentRepository) ListAvailableCourses(ctx context.Context, institutionID, enrollmentID int64) ([]*models.Course, error) {
	sql, args, err := r.sb.Select(
		"c.id", "c.program_id", "c.name", "c.code", "c.credits", "c.semester", "c.weekly_hours",
	).
		From("courses c").
		Join("enrollments e ON e.program_id = c.program_id").
		Join("students s ON s.id = e.student_id").
		Where(squirrel.Eq{"e.id": enrollmentID, "s.institution_id": institutionID}).
		Where("c.id NOT IN (SELECT course_id FROM enrollment_courses WHERE enrollment_id = ?)", enrollmentID).
		OrderBy("c.semester ASC", "c.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build available courses query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying available courses")
		return nil, fmt.Errorf("error querying available courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(
			&course.ID, &course.ProgramID, &course.Name, &course.Code,
			&course.Credits, &course.Semester, &course.WeeklyHours,
		); err != nil {
			return nil, fmt.Errorf("error scanning available course row: %w", err)
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}

// RegisteredCourseRow is the repository-level row for a registered course.
type RegisteredCourseRow struct {
	CourseID int64
	Name     string
	Code     string
	Credits  int
	GradeID  int64
	Score    *float64
	GradedAt *time.Time
}
