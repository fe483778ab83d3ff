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

// Admission process error types
var (
	ErrAdmissionProcessNotFound      = ErrNotFound
	ErrAdmissionProcessAlreadyExists = errors.New("academic period already has an admission process")
)

// AdmissionProcessRepository handles admission process database operations.
// Processes reach their institution through the academic period, so reads
// join through academic_periods.
type AdmissionProcessRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdmissionProcessRepository creates a new AdmissionProcessRepository
func NewAdmissionProcessRepository(db *pgxpool.Pool) *AdmissionProcessRepository {
	return &AdmissionProcessRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new admission process. The unique constraint on
// academic_period_id enforces one process per period.
func (r *AdmissionProcessRepository) Create(ctx context.Context, process *models.AdmissionProcess) (int64, error) {
	sql, args, err := r.sb.Insert("admission_processes").
		Columns("academic_period_id", "name", "description", "start_date", "end_date").
		Values(process.AcademicPeriodID, process.Name, process.Description, process.StartDate, process.EndDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create admission process query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, ErrAdmissionProcessAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create admission process query")
		return 0, fmt.Errorf("error creating admission process: %w", err)
	}

	return id, nil
}

// GetByID retrieves an admission process within an institution
func (r *AdmissionProcessRepository) GetByID(ctx context.Context, institutionID, id int64) (*models.AdmissionProcess, error) {
	sql, args, err := r.sb.Select(
		"ap.id", "ap.academic_period_id", "ap.name", "ap.description",
		"ap.start_date", "ap.end_date",
	).
		From("admission_processes ap").
		Join("academic_periods per ON per.id = ap.academic_period_id").
		Where(squirrel.Eq{"ap.id": id, "per.institution_id": institutionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admission process query: %w", err)
	}

	process := &models.AdmissionProcess{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&process.ID, &process.AcademicPeriodID, &process.Name, &process.Description,
		&process.StartDate, &process.EndDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdmissionProcessNotFound
		}
		logger.Error().Err(err).Int64("processID", id).Msg("Error scanning admission process row")
		return nil, fmt.Errorf("error getting admission process: %w", err)
	}

	return process, nil
}

// GetAll retrieves all admission processes of an institution with period names
func (r *AdmissionProcessRepository) GetAll(ctx context.Context, institutionID int64) ([]*models.AdmissionProcess, error) {
	sql, args, err := r.sb.Select(
		"ap.id", "ap.academic_period_id", "ap.name", "ap.description",
		"ap.start_date", "ap.end_date", "per.name", "per.year",
	).
		From("admission_processes ap").
		Join("academic_periods per ON per.id = ap.academic_period_id").
		Where(squirrel.Eq{"per.institution_id": institutionID}).
		OrderBy("per.year DESC", "ap.start_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all admission processes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying admission processes")
		return nil, fmt.Errorf("error querying admission processes: %w", err)
	}
	defer rows.Close()

	processes := []*models.AdmissionProcess{}
	for rows.Next() {
		process := &models.AdmissionProcess{AcademicPeriod: &models.AcademicPeriod{}}
		if err := rows.Scan(
			&process.ID, &process.AcademicPeriodID, &process.Name, &process.Description,
			&process.StartDate, &process.EndDate,
			&process.AcademicPeriod.Name, &process.AcademicPeriod.Year,
		); err != nil {
			return nil, fmt.Errorf("error scanning admission process row: %w", err)
		}
		process.AcademicPeriod.ID = process.AcademicPeriodID
		processes = append(processes, process)
	}

	return processes, rows.Err()
}

// Update updates an admission process within an institution
func (r *AdmissionProcessRepository) Update(ctx context.Context, institutionID int64, process *models.AdmissionProcess) error {
	sql, args, err := r.sb.Update("admission_processes").
		SetMap(map[string]interface{}{
			"name":        process.Name,
			"description": process.Description,
			"start_date":  process.StartDate,
			"end_date":    process.EndDate,
		}).
		Where(squirrel.Eq{"id": process.ID}).
		Where("academic_period_id IN (SELECT id FROM academic_periods WHERE institution_id = ?)", institutionID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update admission process query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("processID", process.ID).Msg("Error executing update admission process query")
		return fmt.Errorf("error updating admission process: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrAdmissionProcessNotFound
	}

	return nil
}

// Delete deletes an admission process within an institution
func (r *AdmissionProcessRepository) Delete(ctx context.Context, institutionID, id int64) error {
	sql, args, err := r.sb.Delete("admission_processes").
		Where(squirrel.Eq{"id": id}).
		Where("academic_period_id IN (SELECT id FROM academic_periods WHERE institution_id = ?)", institutionID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete admission process query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("processID", id).Msg("Error executing delete admission process query")
		return fmt.Errorf("error deleting admission process: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrAdmissionProcessNotFound
	}

	return nil
}
