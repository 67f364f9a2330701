package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/apperrors"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	portsrepo "github.com/ThotaSridharRao/Ecom-sub000/internal/core/ports/repositories"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/models"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAPITokenRepository struct {
	BaseRepository
}

// newPgxAPITokenRepository creates a new repository for integration tokens.
func newPgxAPITokenRepository(pool *pgxpool.Pool) portsrepo.APITokenRepository {
	return &PgxAPITokenRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.APITokenRepository = (*PgxAPITokenRepository)(nil)

const selectAPITokenFields = `
	id, user_id, name, token_hash, last_used_at, expires_at, created_at, updated_at
`

func scanAPIToken(row pgx.Row) (models.APIToken, error) {
	var m models.APIToken
	err := row.Scan(
		&m.ID, &m.UserID, &m.Name, &m.TokenHash,
		&m.LastUsedAt, &m.ExpiresAt, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func (r *PgxAPITokenRepository) Create(ctx context.Context, token *domain.APIToken) error {
	m := mapping.ToModelAPIToken(*token)

	query := `
		INSERT INTO api_tokens (` + selectAPITokenFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID, m.UserID, m.Name, m.TokenHash,
		m.LastUsedAt, m.ExpiresAt, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: api token %s already exists", apperrors.ErrDuplicate, m.ID)
		}
		return fmt.Errorf("failed to create api token %s: %w", m.ID, err)
	}
	return nil
}

func (r *PgxAPITokenRepository) FindByID(ctx context.Context, id string) (*domain.APIToken, error) {
	query := `SELECT ` + selectAPITokenFields + ` FROM api_tokens WHERE id = $1;`

	m, err := scanAPIToken(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find api token %s: %w", id, err)
	}

	token := mapping.ToDomainAPIToken(m)
	return &token, nil
}

func (r *PgxAPITokenRepository) FindByUserID(ctx context.Context, userID string) ([]domain.APIToken, error) {
	query := `SELECT ` + selectAPITokenFields + ` FROM api_tokens WHERE user_id = $1 ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list api tokens for user %s: %w", userID, err)
	}
	defer rows.Close()

	var tokens []domain.APIToken
	for rows.Next() {
		m, err := scanAPIToken(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan api token row: %w", err)
		}
		tokens = append(tokens, mapping.ToDomainAPIToken(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading api token rows: %w", err)
	}
	return tokens, nil
}

func (r *PgxAPITokenRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*domain.APIToken, error) {
	query := `SELECT ` + selectAPITokenFields + ` FROM api_tokens WHERE token_hash = $1;`

	m, err := scanAPIToken(r.Pool.QueryRow(ctx, query, tokenHash))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find api token by hash: %w", err)
	}

	token := mapping.ToDomainAPIToken(m)
	return &token, nil
}

func (r *PgxAPITokenRepository) Update(ctx context.Context, token *domain.APIToken) error {
	m := mapping.ToModelAPIToken(*token)

	query := `
		UPDATE api_tokens SET name = $2, last_used_at = $3, expires_at = $4, updated_at = $5
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.ID, m.Name, m.LastUsedAt, m.ExpiresAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update api token %s: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAPITokenRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM api_tokens WHERE id = $1;`

	tag, err := r.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete api token %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAPITokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	query := `DELETE FROM api_tokens WHERE user_id = $1;`

	if _, err := r.Pool.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete api tokens for user %s: %w", userID, err)
	}
	return nil
}

func (r *PgxAPITokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM api_tokens WHERE expires_at IS NOT NULL AND expires_at < $1;`

	tag, err := r.Pool.Exec(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired api tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
