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

// Faculty error types
var (
	ErrFacultyNotFound      = ErrNotFound
	ErrFacultyAlreadyExists = errors.New("faculty with this name already exists in the institution")
)

// FacultyRepository handles faculty database operations. Every read is
// filtered by institution; rows of other tenants are invisible.
type FacultyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new faculty
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) (int64, error) {
	sql, args, err := r.sb.Insert("faculties").
		Columns("institution_id", "name", "description").
		Values(faculty.InstitutionID, faculty.Name, faculty.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create faculty SQL")
		return 0, fmt.Errorf("failed to build create faculty query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, ErrFacultyAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create faculty query")
		return 0, fmt.Errorf("error creating faculty: %w", err)
	}

	return id, nil
}

// GetByID retrieves a faculty within an institution
func (r *FacultyRepository) GetByID(ctx context.Context, institutionID, id int64) (*models.Faculty, error) {
	sql, args, err := r.sb.Select("id", "institution_id", "name", "description").
		From("faculties").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	faculty := &models.Faculty{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&faculty.ID, &faculty.InstitutionID, &faculty.Name, &faculty.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFacultyNotFound
		}
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error scanning faculty row")
		return nil, fmt.Errorf("error getting faculty: %w", err)
	}

	return faculty, nil
}

// GetAll retrieves all faculties of an institution
func (r *FacultyRepository) GetAll(ctx context.Context, institutionID int64) ([]*models.Faculty, error) {
	sql, args, err := r.sb.Select("id", "institution_id", "name", "description").
		From("faculties").
		Where(squirrel.Eq{"institution_id": institutionID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all faculties query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all faculties query")
		return nil, fmt.Errorf("error querying faculties: %w", err)
	}
	defer rows.Close()

	faculties := []*models.Faculty{}
	for rows.Next() {
		faculty := &models.Faculty{}
		if err := rows.Scan(&faculty.ID, &faculty.InstitutionID, &faculty.Name, &faculty.Description); err != nil {
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		faculties = append(faculties, faculty)
	}

	return faculties, rows.Err()
}

// Update updates a faculty within an institution
func (r *FacultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	sql, args, err := r.sb.Update("faculties").
		SetMap(map[string]interface{}{
			"name":        faculty.Name,
			"description": faculty.Description,
		}).
		Where(squirrel.Eq{"id": faculty.ID, "institution_id": faculty.InstitutionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrFacultyAlreadyExists
		}
		logger.Error().Err(err).Int64("facultyID", faculty.ID).Msg("Error executing update faculty query")
		return fmt.Errorf("error updating faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrFacultyNotFound
	}

	return nil
}

// Delete deletes a faculty within an institution
func (r *FacultyRepository) Delete(ctx context.Context, institutionID, id int64) error {
	sql, args, err := r.sb.Delete("faculties").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error executing delete faculty query")
		return fmt.Errorf("error deleting faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrFacultyNotFound
	}

	return nil
}
