package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adeolu/campusreg/internal/app/models"
	"github.com/adeolu/campusreg/internal/pkg/apperrors"
)

// TokenRepository manages persisted refresh tokens
type TokenRepository struct {
	db *pgxpool.Pool
	sq squirrel.StatementBuilderType
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// StoreRefreshToken persists a refresh token for a user
func (r *TokenRepository) StoreRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	query, args, err := r.sq.Insert("refresh_tokens").
		Columns("user_id", "token", "expires_at", "is_revoked", "created_at").
		Values(token.UserID, token.Token, token.ExpiresAt, false, time.Now()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building insert query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&token.ID)
	if err != nil {
		return fmt.Errorf("error storing refresh token: %w", err)
	}
	return nil
}

// GetRefreshToken finds a refresh token by its value
func (r *TokenRepository) GetRefreshToken(ctx context.Context, tokenValue string) (*models.RefreshToken, error) {
	query, args, err := r.sq.Select("id", "user_id", "token", "expires_at", "is_revoked", "created_at").
		From("refresh_tokens").
		Where(squirrel.Eq{"token": tokenValue}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building select query: %w", err)
	}

	token := &models.RefreshToken{}
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&token.ID, &token.UserID, &token.Token, &token.ExpiresAt, &token.IsRevoked, &token.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, fmt.Errorf("error getting refresh token: %w", err)
	}
	return token, nil
}

// RevokeRefreshToken marks a refresh token as revoked. Revocation is permanent;
// the row is kept so replays keep failing until the expiry purge removes it.
func (r *TokenRepository) RevokeRefreshToken(ctx context.Context, tokenValue string) error {
	query, args, err := r.sq.Update("refresh_tokens").
		Set("is_revoked", true).
		Where(squirrel.Eq{"token": tokenValue}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building update query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error revoking refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTokenNotFound
	}
	return nil
}

// RevokeUserRefreshTokens revokes every refresh token belonging to a user
func (r *TokenRepository) RevokeUserRefreshTokens(ctx context.Context, userID int64) error {
	query, args, err := r.sq.Update("refresh_tokens").
		Set("is_revoked", true).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building update query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error revoking user refresh tokens: %w", err)
	}
	return nil
}

// DeleteExpiredTokens purges refresh tokens past their expiry
func (r *TokenRepository) DeleteExpiredTokens(ctx context.Context) (int64, error) {
	query, args, err := r.sq.Delete("refresh_tokens").
		Where(squirrel.Lt{"expires_at": time.Now()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building delete query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired tokens: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
