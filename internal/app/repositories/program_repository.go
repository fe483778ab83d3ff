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

// Program error types
var (
	ErrProgramNotFound      = ErrNotFound
	ErrProgramAlreadyExists = errors.New("program with this name already exists in the institution")
)

// ProgramRepository handles study program database operations
type ProgramRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new program
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) (int64, error) {
	sql, args, err := r.sb.Insert("programs").
		Columns("institution_id", "plan_id", "faculty_id", "name", "modality", "duration_semesters").
		Values(program.InstitutionID, program.PlanID, program.FacultyID, program.Name, program.Modality, program.DurationSemesters).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create program query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, ErrProgramAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create program query")
		return 0, fmt.Errorf("error creating program: %w", err)
	}

	return id, nil
}

// GetByID retrieves a program within an institution
func (r *ProgramRepository) GetByID(ctx context.Context, institutionID, id int64) (*models.Program, error) {
	sql, args, err := r.sb.Select("id", "institution_id", "plan_id", "faculty_id", "name", "modality", "duration_semesters").
		From("programs").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get program query: %w", err)
	}

	program := &models.Program{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&program.ID, &program.InstitutionID, &program.PlanID, &program.FacultyID,
		&program.Name, &program.Modality, &program.DurationSemesters,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgramNotFound
		}
		logger.Error().Err(err).Int64("programID", id).Msg("Error scanning program row")
		return nil, fmt.Errorf("error getting program: %w", err)
	}

	return program, nil
}

// GetAll retrieves all programs of an institution with plan and faculty names
func (r *ProgramRepository) GetAll(ctx context.Context, institutionID int64) ([]*models.Program, error) {
	sql, args, err := r.sb.Select(
		"p.id", "p.institution_id", "p.plan_id", "p.faculty_id",
		"p.name", "p.modality", "p.duration_semesters",
		"pl.title", "f.name",
	).
		From("programs p").
		Join("plans pl ON pl.id = p.plan_id").
		Join("faculties f ON f.id = p.faculty_id").
		Where(squirrel.Eq{"p.institution_id": institutionID}).
		OrderBy("p.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all programs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying programs")
		return nil, fmt.Errorf("error querying programs: %w", err)
	}
	defer rows.Close()

	programs := []*models.Program{}
	for rows.Next() {
		program := &models.Program{
			Plan:    &models.Plan{},
			Faculty: &models.Faculty{},
		}
		if err := rows.Scan(
			&program.ID, &program.InstitutionID, &program.PlanID, &program.FacultyID,
			&program.Name, &program.Modality, &program.DurationSemesters,
			&program.Plan.Title, &program.Faculty.Name,
		); err != nil {
			return nil, fmt.Errorf("error scanning program row: %w", err)
		}
		program.Plan.ID = program.PlanID
		program.Faculty.ID = program.FacultyID
		programs = append(programs, program)
	}

	return programs, rows.Err()
}

// Update updates a program within an institution
func (r *ProgramRepository) Update(ctx context.Context, program *models.Program) error {
	sql, args, err := r.sb.Update("programs").
		SetMap(map[string]interface{}{
			"plan_id":            program.PlanID,
			"faculty_id":         program.FacultyID,
			"name":               program.Name,
			"modality":           program.Modality,
			"duration_semesters": program.DurationSemesters,
		}).
		Where(squirrel.Eq{"id": program.ID, "institution_id": program.InstitutionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update program query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrProgramAlreadyExists
		}
		logger.Error().Err(err).Int64("programID", program.ID).Msg("Error executing update program query")
		return fmt.Errorf("error updating program: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrProgramNotFound
	}

	return nil
}

// Delete deletes a program within an institution
func (r *ProgramRepository) Delete(ctx context.Context, institutionID, id int64) error {
	sql, args, err := r.sb.Delete("programs").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete program query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("programID", id).Msg("Error executing delete program query")
		return fmt.Errorf("error deleting program: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrProgramNotFound
	}

	return nil
}
