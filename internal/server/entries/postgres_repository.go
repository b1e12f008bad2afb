package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"journal-api/internal/common"
	"journal-api/internal/dbx"
	"journal-api/internal/server/models"
)

// PostgresRepository implements the entry store over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FetchAll(ctx context.Context, owner models.Owner) ([]*Entry, error) {
	query := `
		SELECT id, entry_date, content
		FROM entries
		WHERE owner_name = $1 AND owner_email = $2
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, owner.Name, owner.Email)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*Entry
	for rows.Next() {
		e := &Entry{}
		if err := rows.Scan(&e.ID, &e.Date, &e.Content); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if len(result) == 0 {
		return nil, common.ErrorNotFound
	}
	return result, nil
}

func (r *PostgresRepository) FetchOne(ctx context.Context, owner models.Owner, date string) (*Entry, error) {
	query := `
		SELECT id, entry_date, content
		FROM entries
		WHERE owner_name = $1 AND owner_email = $2 AND entry_date = $3
		ORDER BY id
		LIMIT 1
	`
	e := &Entry{}
	err := r.db.QueryRowContext(ctx, query, owner.Name, owner.Email, date).Scan(&e.ID, &e.Date, &e.Content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) Save(ctx context.Context, owner models.Owner, date string, content string) error {
	query := `
		INSERT INTO entries (owner_name, owner_email, entry_date, content)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query, owner.Name, owner.Email, date, content); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Update replaces the content of the oldest entry matching (owner, date).
func (r *PostgresRepository) Update(ctx context.Context, owner models.Owner, date string, content string) error {
	query := `
		UPDATE entries SET content = $4
		WHERE id = (
			SELECT id FROM entries
			WHERE owner_name = $1 AND owner_email = $2 AND entry_date = $3
			ORDER BY id
			LIMIT 1
		)
	`
	res, err := r.db.ExecContext(ctx, query, owner.Name, owner.Email, date, content)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// Delete removes every entry matching (owner, date), duplicates included.
func (r *PostgresRepository) Delete(ctx context.Context, owner models.Owner, date string) error {
	query := `
		DELETE FROM entries
		WHERE owner_name = $1 AND owner_email = $2 AND entry_date = $3
	`
	res, err := r.db.ExecContext(ctx, query, owner.Name, owner.Email, date)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}
