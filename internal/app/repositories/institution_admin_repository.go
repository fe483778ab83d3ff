package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/axela/cetpro-backend/internal/app/models"
	"github.com/axela/cetpro-backend/internal/pkg/logger"
)

// Institution admin error types
var (
	ErrAdminAssignmentNotFound = ErrNotFound
	ErrAdminAlreadyAssigned    = errors.New("user already has an institution assignment")
)

// InstitutionAdminRepository handles admin-to-institution assignments
type InstitutionAdminRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInstitutionAdminRepository creates a new InstitutionAdminRepository
func NewInstitutionAdminRepository(db *pgxpool.Pool) *InstitutionAdminRepository {
	return &InstitutionAdminRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create assigns a user to an institution. The unique constraint on user_id
// enforces at most one assignment per user.
func (r *InstitutionAdminRepository) Create(ctx context.Context, assignment *models.InstitutionAdmin) (int64, error) {
	sql, args, err := r.sb.Insert("institution_admins").
		Columns("user_id", "institution_id").
		Values(assignment.UserID, assignment.InstitutionID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create admin assignment query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, ErrAdminAlreadyAssigned
		}
		logger.Error().Err(err).Int64("userID", assignment.UserID).Msg("Error creating admin assignment")
		return 0, fmt.Errorf("error creating admin assignment: %w", err)
	}

	return id, nil
}

// GetAll retrieves all assignments with user and institution detail
func (r *InstitutionAdminRepository) GetAll(ctx context.Context) ([]*models.InstitutionAdmin, error) {
	sql, args, err := r.sb.Select(
		"ia.id", "ia.user_id", "ia.institution_id",
		"u.first_name", "u.last_name", "u.email",
		"i.name", "i.code",
	).
		From("institution_admins ia").
		Join("users u ON u.id = ia.user_id").
		Join("institutions i ON i.id = ia.institution_id").
		OrderBy("i.name ASC", "u.last_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin assignments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying admin assignments")
		return nil, fmt.Errorf("error querying admin assignments: %w", err)
	}
	defer rows.Close()

	assignments := []*models.InstitutionAdmin{}
	for rows.Next() {
		assignment := &models.InstitutionAdmin{
			User:        &models.User{},
			Institution: &models.Institution{},
		}
		if err := rows.Scan(
			&assignment.ID, &assignment.UserID, &assignment.InstitutionID,
			&assignment.User.FirstName, &assignment.User.LastName, &assignment.User.Email,
			&assignment.Institution.Name, &assignment.Institution.Code,
		); err != nil {
			return nil, fmt.Errorf("error scanning admin assignment row: %w", err)
		}
		assignment.User.ID = assignment.UserID
		assignment.Institution.ID = assignment.InstitutionID
		assignments = append(assignments, assignment)
	}

	return assignments, rows.Err()
}

// Delete removes an assignment
func (r *InstitutionAdminRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("institution_admins").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete admin assignment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assignmentID", id).Msg("Error deleting admin assignment")
		return fmt.Errorf("error deleting admin assignment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrAdminAssignmentNotFound
	}

	return nil
}
