package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"journal-api/internal/common"
	"journal-api/internal/dbx"
	"journal-api/internal/server/models"
)

// PostgresRepository implements the session store over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert relies on the unique index on owner_email: a concurrent double
// login resolves to a single row holding the last-written token.
func (r *PostgresRepository) Upsert(ctx context.Context, owner models.Owner, refreshToken string) error {
	query := `
		INSERT INTO sessions (owner_name, owner_email, refresh_token)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner_email)
		DO UPDATE SET owner_name = EXCLUDED.owner_name, refresh_token = EXCLUDED.refresh_token
	`
	if _, err := r.db.ExecContext(ctx, query, owner.Name, owner.Email, refreshToken); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindByToken(ctx context.Context, refreshToken string) (*Session, error) {
	query := `
		SELECT owner_name, owner_email, refresh_token
		FROM sessions
		WHERE refresh_token = $1
	`
	s := &Session{}
	err := r.db.QueryRowContext(ctx, query, refreshToken).Scan(&s.Owner.Name, &s.Owner.Email, &s.RefreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) DeleteByToken(ctx context.Context, refreshToken string) error {
	query := `
		DELETE FROM sessions
		WHERE refresh_token = $1
	`
	if _, err := r.db.ExecContext(ctx, query, refreshToken); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) CountByOwner(ctx context.Context, owner models.Owner) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM sessions
		WHERE owner_email = $1
	`
	var n int
	if err := r.db.QueryRowContext(ctx, query, owner.Email).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
