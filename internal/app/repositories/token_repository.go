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

// Token error types
var (
	ErrTokenNotFound = errors.New("refresh token not found")
	ErrTokenExpired  = errors.New("refresh token expired")
)

// TokenRepository handles refresh token database operations
type TokenRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateRefreshToken stores a refresh token for a user
func (r *TokenRepository) CreateRefreshToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	sql, args, err := r.sb.Insert("refresh_tokens").
		Columns("user_id", "token", "expires_at").
		Values(userID, token, expiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create refresh token query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error storing refresh token")
		return fmt.Errorf("error storing refresh token: %w", err)
	}

	return nil
}

// GetRefreshToken looks up a refresh token, rejecting expired ones
func (r *TokenRepository) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	sql, args, err := r.sb.Select("id", "user_id", "token", "expires_at", "created_at").
		From("refresh_tokens").
		Where(squirrel.Eq{"token": token}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get refresh token query: %w", err)
	}

	rt := &models.RefreshToken{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&rt.ID, &rt.UserID, &rt.Token, &rt.ExpiresAt, &rt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTokenNotFound
		}
		logger.Error().Err(err).Msg("Error scanning refresh token row")
		return nil, fmt.Errorf("error getting refresh token: %w", err)
	}

	if time.Now().After(rt.ExpiresAt) {
		return nil, ErrTokenExpired
	}

	return rt, nil
}

// DeleteRefreshToken removes one refresh token
func (r *TokenRepository) DeleteRefreshToken(ctx context.Context, token string) error {
	sql, args, err := r.sb.Delete("refresh_tokens").
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete refresh token query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error deleting refresh token")
		return fmt.Errorf("error deleting refresh token: %w", err)
	}

	return nil
}

// DeleteUserRefreshTokens removes all refresh tokens of a user
func (r *TokenRepository) DeleteUserRefreshTokens(ctx context.Context, userID int64) error {
	sql, args, err := r.sb.Delete("refresh_tokens").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete user refresh tokens query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error deleting user refresh tokens")
		return fmt.Errorf("error deleting user refresh tokens: %w", err)
	}

	return nil
}

// CleanupExpiredTokens removes refresh tokens past their expiry
func (r *TokenRepository) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Delete("refresh_tokens").
		Where(squirrel.Lt{"expires_at": time.Now()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build cleanup query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error cleaning up expired refresh tokens")
		return 0, fmt.Errorf("error cleaning up expired tokens: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
