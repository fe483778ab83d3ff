package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/axela/cetpro-backend/internal/app/models"
	"github.com/axela/cetpro-backend/internal/pkg/logger"
)

// Password reset token error types
var (
	ErrResetTokenNotFound = errors.New("password reset token not found")
	ErrResetTokenExpired  = errors.New("password reset token expired")
	ErrResetTokenUsed     = errors.New("password reset token already used")
)

// PasswordResetTokenRepository handles password reset token operations.
// Only token hashes are stored; plaintext tokens never touch the database.
type PasswordResetTokenRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPasswordResetTokenRepository creates a new PasswordResetTokenRepository
func NewPasswordResetTokenRepository(db *pgxpool.Pool) *PasswordResetTokenRepository {
	return &PasswordResetTokenRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create stores a new reset token hash, first dropping any prior tokens for
// the user so only the latest one works.
func (r *PasswordResetTokenRepository) Create(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	if err := r.DeleteUserTokens(ctx, userID); err != nil {
		return err
	}

	sql, args, err := r.sb.Insert("password_reset_tokens").
		Columns("user_id", "token_hash", "expires_at").
		Values(userID, tokenHash, expiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create reset token query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error storing password reset token")
		return fmt.Errorf("error storing password reset token: %w", err)
	}

	return nil
}

// GetByHash retrieves a reset token by its hash, rejecting used or expired
// tokens.
func (r *PasswordResetTokenRepository) GetByHash(ctx context.Context, tokenHash string) (*models.PasswordResetToken, error) {
	sql, args, err := r.sb.Select("id", "user_id", "token_hash", "expires_at", "used", "created_at").
		From("password_reset_tokens").
		Where(squirrel.Eq{"token_hash": tokenHash}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get reset token query: %w", err)
	}

	token := &models.PasswordResetToken{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&token.ID, &token.UserID, &token.TokenHash, &token.ExpiresAt, &token.Used, &token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrResetTokenNotFound
		}
		logger.Error().Err(err).Msg("Error scanning password reset token row")
		return nil, fmt.Errorf("error getting password reset token: %w", err)
	}

	if token.Used {
		return nil, ErrResetTokenUsed
	}
	if time.Now().After(token.ExpiresAt) {
		return nil, ErrResetTokenExpired
	}

	return token, nil
}

// MarkUsed flags a reset token as consumed
func (r *PasswordResetTokenRepository) MarkUsed(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("password_reset_tokens").
		Set("used", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark used query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("tokenID", id).Msg("Error marking reset token used")
		return fmt.Errorf("error marking reset token used: %w", err)
	}

	return nil
}

// DeleteUserTokens removes all reset tokens of a user
func (r *PasswordResetTokenRepository) DeleteUserTokens(ctx context.Context, userID int64) error {
	sql, args, err := r.sb.Delete("password_reset_tokens").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete reset tokens query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error deleting password reset tokens")
		return fmt.Errorf("error deleting password reset tokens: %w", err)
	}

	return nil
}
