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

// Personnel error types
var (
	ErrStudentNotFound      = ErrNotFound
	ErrTeacherNotFound      = ErrNotFound
	ErrStudentAlreadyExists = errors.New("user already has a student record")
	ErrTeacherAlreadyExists = errors.New("user already has a teacher record")
)

// PersonnelRepository handles student and teacher database operations.
// Both tables pin a user to an institution; the unique constraint on
// user_id keeps a user in at most one institution per role.
type PersonnelRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPersonnelRepository creates a new PersonnelRepository
func NewPersonnelRepository(db *pgxpool.Pool) *PersonnelRepository {
	return &PersonnelRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateStudent creates a student record for a user
func (r *PersonnelRepository) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("user_id", "institution_id", "document_number", "phone").
		Values(student.UserID, student.InstitutionID, student.DocumentNumber, student.Phone).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, ErrStudentAlreadyExists
		}
		logger.Error().Err(err).Int64("userID", student.UserID).Msg("Error creating student record")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// CreateTeacher creates a teacher record for a user
func (r *PersonnelRepository) CreateTeacher(ctx context.Context, teacher *models.Teacher) (int64, error) {
	sql, args, err := r.sb.Insert("teachers").
		Columns("user_id", "institution_id", "specialty", "phone").
		Values(teacher.UserID, teacher.InstitutionID, teacher.Specialty, teacher.Phone).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create teacher query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, ErrTeacherAlreadyExists
		}
		logger.Error().Err(err).Int64("userID", teacher.UserID).Msg("Error creating teacher record")
		return 0, fmt.Errorf("error creating teacher: %w", err)
	}

	return id, nil
}

// GetStudentByID retrieves a student within an institution with user detail
func (r *PersonnelRepository) GetStudentByID(ctx context.Context, institutionID, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(
		"s.id", "s.user_id", "s.institution_id", "s.document_number", "s.phone",
		"u.first_name", "u.last_name", "u.email",
	).
		From("students s").
		Join("users u ON u.id = s.user_id").
		Where(squirrel.Eq{"s.id": id, "s.institution_id": institutionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{User: &models.User{}}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.UserID, &student.InstitutionID, &student.DocumentNumber, &student.Phone,
		&student.User.FirstName, &student.User.LastName, &student.User.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}
	student.User.ID = student.UserID

	return student, nil
}

// GetTeacherByID retrieves a teacher within an institution with user detail
func (r *PersonnelRepository) GetTeacherByID(ctx context.Context, institutionID, id int64) (*models.Teacher, error) {
	sql, args, err := r.sb.Select(
		"t.id", "t.user_id", "t.institution_id", "t.specialty", "t.phone",
		"u.first_name", "u.last_name", "u.email",
	).
		From("teachers t").
		Join("users u ON u.id = t.user_id").
		Where(squirrel.Eq{"t.id": id, "t.institution_id": institutionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	teacher := &models.Teacher{User: &models.User{}}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&teacher.ID, &teacher.UserID, &teacher.InstitutionID, &teacher.Specialty, &teacher.Phone,
		&teacher.User.FirstName, &teacher.User.LastName, &teacher.User.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeacherNotFound
		}
		logger.Error().Err(err).Int64("teacherID", id).Msg("Error scanning teacher row")
		return nil, fmt.Errorf("error getting teacher: %w", err)
	}
	teacher.User.ID = teacher.UserID

	return teacher, nil
}

// ListStudents retrieves all students of an institution with user detail
func (r *PersonnelRepository) ListStudents(ctx context.Context, institutionID int64) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(
		"s.id", "s.user_id", "s.institution_id", "s.document_number", "s.phone",
		"u.first_name", "u.last_name", "u.email",
	).
		From("students s").
		Join("users u ON u.id = s.user_id").
		Where(squirrel.Eq{"s.institution_id": institutionID}).
		OrderBy("u.last_name ASC", "u.first_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying students")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student := &models.Student{User: &models.User{}}
		if err := rows.Scan(
			&student.ID, &student.UserID, &student.InstitutionID, &student.DocumentNumber, &student.Phone,
			&student.User.FirstName, &student.User.LastName, &student.User.Email,
		); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		student.User.ID = student.UserID
		students = append(students, student)
	}

	return students, rows.Err()
}

// ListTeachers retrieves all teachers of an institution with user detail
func (r *PersonnelRepository) ListTeachers(ctx context.Context, institutionID int64) ([]*models.Teacher, error) {
	sql, args, err := r.sb.Select(
		"t.id", "t.user_id", "t.institution_id", "t.specialty", "t.phone",
		"u.first_name", "u.last_name", "u.email",
	).
		From("teachers t").
		Join("users u ON u.id = t.user_id").
		Where(squirrel.Eq{"t.institution_id": institutionID}).
		OrderBy("u.last_name ASC", "u.first_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list teachers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying teachers")
		return nil, fmt.Errorf("error querying teachers: %w", err)
	}
	defer rows.Close()

	teachers := []*models.Teacher{}
	for rows.Next() {
		teacher := &models.Teacher{User: &models.User{}}
		if err := rows.Scan(
			&teacher.ID, &teacher.UserID, &teacher.InstitutionID, &teacher.Specialty, &teacher.Phone,
			&teacher.User.FirstName, &teacher.User.LastName, &teacher.User.Email,
		); err != nil {
			return nil, fmt.Errorf("error scanning teacher row: %w", err)
		}
		teacher.User.ID = teacher.UserID
		teachers = append(teachers, teacher)
	}

	return teachers, rows.Err()
}
