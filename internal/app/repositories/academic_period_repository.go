package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/axela/cetpro-backend/internal/app/models"
	"github.com/axela/cetpro-backend/internal/db"
	"github.com/axela/cetpro-backend/internal/pkg/logger"
)

// Academic period error types
var (
	ErrAcademicPeriodNotFound      = ErrNotFound
	ErrAcademicPeriodAlreadyExists = errors.New("academic period with this name already exists for the year")
)

// AcademicPeriodRepository handles academic period database operations.
// Like plans, at most one period per institution is active; activating
// writes run inside one transaction with the sibling deactivation.
type AcademicPeriodRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewAcademicPeriodRepository creates a new AcademicPeriodRepository
func NewAcademicPeriodRepository(database *db.PostgresDB) *AcademicPeriodRepository {
	return &AcademicPeriodRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *AcademicPeriodRepository) deactivateSiblings(ctx context.Context, tx pgx.Tx, institutionID, exceptID int64) error {
	builder := r.sb.Update("academic_periods").
		Set("is_active", false).
		Where(squirrel.Eq{"institution_id": institutionID})
	if exceptID > 0 {
		builder = builder.Where(squirrel.NotEq{"id": exceptID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build deactivate periods query: %w", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error deactivating sibling periods: %w", err)
	}

	return nil
}

// Create creates a new academic period. An active period deactivates its
// siblings in the same transaction.
func (r *AcademicPeriodRepository) Create(ctx context.Context, period *models.AcademicPeriod) (int64, error) {
	var id int64
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if period.IsActive {
			if err := r.deactivateSiblings(ctx, tx, period.InstitutionID, 0); err != nil {
				return err
			}
		}

		sql, args, err := r.sb.Insert("academic_periods").
			Columns("institution_id", "name", "year", "start_date", "end_date", "is_active").
			Values(period.InstitutionID, period.Name, period.Year, period.StartDate, period.EndDate, period.IsActive).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create period query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			if isDuplicateKeyError(err) {
				return ErrAcademicPeriodAlreadyExists
			}
			logger.Error().Err(err).Msg("Error executing create period query")
			return fmt.Errorf("error creating academic period: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetByID retrieves an academic period within an institution
func (r *AcademicPeriodRepository) GetByID(ctx context.Context, institutionID, id int64) (*models.AcademicPeriod, error) {
	return r.get(ctx, squirrel.Eq{"id": id, "institution_id": institutionID})
}

// GetActive retrieves the active academic period of an institution
func (r *AcademicPeriodRepository) GetActive(ctx context.Context, institutionID int64) (*models.AcademicPeriod, error) {
	return r.get(ctx, squirrel.Eq{"institution_id": institutionID, "is_active": true})
}

func (r *AcademicPeriodRepository) get(ctx context.Context, pred squirrel.Eq) (*models.AcademicPeriod, error) {
	sql, args, err := r.sb.Select("id", "institution_id", "name", "year", "start_date", "end_date", "is_active").
		From("academic_periods").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get period query: %w", err)
	}

	period := &models.AcademicPeriod{}
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&period.ID, &period.InstitutionID, &period.Name, &period.Year,
		&period.StartDate, &period.EndDate, &period.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAcademicPeriodNotFound
		}
		logger.Error().Err(err).Msg("Error scanning academic period row")
		return nil, fmt.Errorf("error getting academic period: %w", err)
	}

	return period, nil
}

// GetAll retrieves all academic periods of an institution
func (r *AcademicPeriodRepository) GetAll(ctx context.Context, institutionID int64) ([]*models.AcademicPeriod, error) {
	sql, args, err := r.sb.Select("id", "institution_id", "name", "year", "start_date", "end_date", "is_active").
		From("academic_periods").
		Where(squirrel.Eq{"institution_id": institutionID}).
		OrderBy("year DESC", "start_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all periods query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying academic periods")
		return nil, fmt.Errorf("error querying academic periods: %w", err)
	}
	defer rows.Close()

	periods := []*models.AcademicPeriod{}
	for rows.Next() {
		period := &models.AcademicPeriod{}
		if err := rows.Scan(
			&period.ID, &period.InstitutionID, &period.Name, &period.Year,
			&period.StartDate, &period.EndDate, &period.IsActive,
		); err != nil {
			return nil, fmt.Errorf("error scanning academic period row: %w", err)
		}
		periods = append(periods, period)
	}

	return periods, rows.Err()
}

// Update updates an academic period. Activating a period deactivates its
// siblings in the same transaction.
func (r *AcademicPeriodRepository) Update(ctx context.Context, period *models.AcademicPeriod) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if period.IsActive {
			if err := r.deactivateSiblings(ctx, tx, period.InstitutionID, period.ID); err != nil {
				return err
			}
		}

		sql, args, err := r.sb.Update("academic_periods").
			SetMap(map[string]interface{}{
				"name":       period.Name,
				"year":       period.Year,
				"start_date": period.StartDate,
				"end_date":   period.EndDate,
				"is_active":  period.IsActive,
			}).
			Where(squirrel.Eq{"id": period.ID, "institution_id": period.InstitutionID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update period query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			if isDuplicateKeyError(err) {
				return ErrAcademicPeriodAlreadyExists
			}
			logger.Error().Err(err).Int64("periodID", period.ID).Msg("Error executing update period query")
			return fmt.Errorf("error updating academic period: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return ErrAcademicPeriodNotFound
		}

		return nil
	})
}

// Delete deletes an academic period within an institution
func (r *AcademicPeriodRepository) Delete(ctx context.Context, institutionID, id int64) error {
	sql, args, err := r.sb.Delete("academic_periods").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete period query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("periodID", id).Msg("Error executing delete period query")
		return fmt.Errorf("error deleting academic period: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrAcademicPeriodNotFound
	}

	return nil
}
