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

// Plan error types
var (
	ErrPlanNotFound      = ErrNotFound
	ErrPlanAlreadyExists = errors.New("plan with this title already exists in the institution")
)

// PlanRepository handles study plan database operations. Writes that touch
// the single-active invariant run inside one transaction: the bulk sibling
// deactivation takes row locks, so concurrent activations serialize and at
// most one plan per institution stays active.
type PlanRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewPlanRepository creates a new PlanRepository
func NewPlanRepository(database *db.PostgresDB) *PlanRepository {
	return &PlanRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// deactivateSiblings marks every other plan of the institution inactive.
func (r *PlanRepository) deactivateSiblings(ctx context.Context, tx pgx.Tx, institutionID, exceptID int64) error {
	builder := r.sb.Update("plans").
		Set("is_active", false).
		Where(squirrel.Eq{"institution_id": institutionID})
	if exceptID > 0 {
		builder = builder.Where(squirrel.NotEq{"id": exceptID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build deactivate plans query: %w", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error deactivating sibling plans: %w", err)
	}

	return nil
}

// Create creates a new plan. An active plan deactivates its siblings in the
// same transaction.
func (r *PlanRepository) Create(ctx context.Context, plan *models.Plan) (int64, error) {
	var id int64
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if plan.IsActive {
			if err := r.deactivateSiblings(ctx, tx, plan.InstitutionID, 0); err != nil {
				return err
			}
		}

		sql, args, err := r.sb.Insert("plans").
			Columns("institution_id", "title", "description", "start_year", "end_year", "is_active").
			Values(plan.InstitutionID, plan.Title, plan.Description, plan.StartYear, plan.EndYear, plan.IsActive).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create plan query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			if isDuplicateKeyError(err) {
				return ErrPlanAlreadyExists
			}
			logger.Error().Err(err).Msg("Error executing create plan query")
			return fmt.Errorf("error creating plan: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetByID retrieves a plan within an institution
func (r *PlanRepository) GetByID(ctx context.Context, institutionID, id int64) (*models.Plan, error) {
	sql, args, err := r.sb.Select("id", "institution_id", "title", "description", "start_year", "end_year", "is_active").
		From("plans").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get plan query: %w", err)
	}

	plan := &models.Plan{}
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&plan.ID, &plan.InstitutionID, &plan.Title, &plan.Description,
		&plan.StartYear, &plan.EndYear, &plan.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		logger.Error().Err(err).Int64("planID", id).Msg("Error scanning plan row")
		return nil, fmt.Errorf("error getting plan: %w", err)
	}

	return plan, nil
}

// GetAll retrieves all plans of an institution
func (r *PlanRepository) GetAll(ctx context.Context, institutionID int64) ([]*models.Plan, error) {
	sql, args, err := r.sb.Select("id", "institution_id", "title", "description", "start_year", "end_year", "is_active").
		From("plans").
		Where(squirrel.Eq{"institution_id": institutionID}).
		OrderBy("start_year DESC", "title ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all plans query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying plans")
		return nil, fmt.Errorf("error querying plans: %w", err)
	}
	defer rows.Close()

	plans := []*models.Plan{}
	for rows.Next() {
		plan := &models.Plan{}
		if err := rows.Scan(
			&plan.ID, &plan.InstitutionID, &plan.Title, &plan.Description,
			&plan.StartYear, &plan.EndYear, &plan.IsActive,
		); err != nil {
			return nil, fmt.Errorf("error scanning plan row: %w", err)
		}
		plans = append(plans, plan)
	}

	return plans, rows.Err()
}

// Update updates a plan. Activating a plan deactivates its siblings in the
// same transaction.
func (r *PlanRepository) Update(ctx context.Context, plan *models.Plan) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if plan.IsActive {
			if err := r.deactivateSiblings(ctx, tx, plan.InstitutionID, plan.ID); err != nil {
				return err
			}
		}

		sql, args, err := r.sb.Update("plans").
			SetMap(map[string]interface{}{
				"title":       plan.Title,
				"description": plan.Description,
				"start_year":  plan.StartYear,
				"end_year":    plan.EndYear,
				"is_active":   plan.IsActive,
			}).
			Where(squirrel.Eq{"id": plan.ID, "institution_id": plan.InstitutionID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update plan query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			if isDuplicateKeyError(err) {
				return ErrPlanAlreadyExists
			}
			logger.Error().Err(err).Int64("planID", plan.ID).Msg("Error executing update plan query")
			return fmt.Errorf("error updating plan: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return ErrPlanNotFound
		}

		return nil
	})
}

// Delete deletes a plan within an institution
func (r *PlanRepository) Delete(ctx context.Context, institutionID, id int64) error {
	sql, args, err := r.sb.Delete("plans").
		Where(squirrel.Eq{"id": id, "institution_id": institutionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete plan query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("planID", id).Msg("Error executing delete plan query")
		return fmt.Errorf("error deleting plan: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}

	return nil
}
