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

// Institution error types
var (
	ErrInstitutionNotFound      = ErrNotFound
	ErrInstitutionAlreadyExists = errors.New("institution with this code already exists")
)

// InstitutionRepository handles institution database operations
type InstitutionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInstitutionRepository creates a new InstitutionRepository
func NewInstitutionRepository(db *pgxpool.Pool) *InstitutionRepository {
	return &InstitutionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new institution
func (r *InstitutionRepository) Create(ctx context.Context, institution *models.Institution) (int64, error) {
	sql, args, err := r.sb.Insert("institutions").
		Columns("name", "code", "address", "phone", "email", "is_active").
		Values(institution.Name, institution.Code, institution.Address, institution.Phone, institution.Email, institution.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create institution SQL")
		return 0, fmt.Errorf("failed to build create institution query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, ErrInstitutionAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create institution query")
		return 0, fmt.Errorf("error creating institution: %w", err)
	}

	return id, nil
}

// GetByID retrieves an institution by id
func (r *InstitutionRepository) GetByID(ctx context.Context, id int64) (*models.Institution, error) {
	sql, args, err := r.sb.Select("id", "name", "code", "address", "phone", "email", "is_active").
		From("institutions").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get institution query: %w", err)
	}

	institution := &models.Institution{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&institution.ID, &institution.Name, &institution.Code,
		&institution.Address, &institution.Phone, &institution.Email, &institution.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInstitutionNotFound
		}
		logger.Error().Err(err).Int64("institutionID", id).Msg("Error scanning institution row")
		return nil, fmt.Errorf("error getting institution: %w", err)
	}

	return institution, nil
}

// GetAll retrieves all institutions
func (r *InstitutionRepository) GetAll(ctx context.Context) ([]*models.Institution, error) {
	sql, args, err := r.sb.Select("id", "name", "code", "address", "phone", "email", "is_active").
		From("institutions").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all institutions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying institutions")
		return nil, fmt.Errorf("error querying institutions: %w", err)
	}
	defer rows.Close()

	institutions := []*models.Institution{}
	for rows.Next() {
		institution := &models.Institution{}
		if err := rows.Scan(
			&institution.ID, &institution.Name, &institution.Code,
			&institution.Address, &institution.Phone, &institution.Email, &institution.IsActive,
		); err != nil {
			return nil, fmt.Errorf("error scanning institution row: %w", err)
		}
		institutions = append(institutions, institution)
	}

	return institutions, rows.Err()
}

// Update updates an existing institution
func (r *InstitutionRepository) Update(ctx context.Context, institution *models.Institution) error {
	sql, args, err := r.sb.Update("institutions").
		SetMap(map[string]interface{}{
			"name":      institution.Name,
			"code":      institution.Code,
			"address":   institution.Address,
			"phone":     institution.Phone,
			"email":     institution.Email,
			"is_active": institution.IsActive,
		}).
		Where(squirrel.Eq{"id": institution.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update institution query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrInstitutionAlreadyExists
		}
		logger.Error().Err(err).Int64("institutionID", institution.ID).Msg("Error executing update institution query")
		return fmt.Errorf("error updating institution: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrInstitutionNotFound
	}

	return nil
}

// Delete deletes an institution by id. Dependency checks happen in the
// integrity guard before this is called.
func (r *InstitutionRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("institutions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete institution query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("institutionID", id).Msg("Error executing delete institution query")
		return fmt.Errorf("error deleting institution: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrInstitutionNotFound
	}

	return nil
}
