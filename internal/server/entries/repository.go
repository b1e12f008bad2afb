// Package entries implements per-owner storage of dated journal entries.
package entries

import (
	"context"

	"journal-api/internal/server/models"
)

// Repository defines the entry store contract. All operations are scoped by
// the owner identity. Implementations return common.ErrorNotFound when a
// fetch, update, or delete matches nothing; FetchAll treats an owner with
// zero entries the same way.
//
// Save performs no date-uniqueness check: appending a second entry for an
// existing date is allowed. Delete removes every entry matching the date,
// duplicates included. Update touches only the oldest matching entry.
type Repository interface {
	FetchAll(ctx context.Context, owner models.Owner) ([]*Entry, error)
	FetchOne(ctx context.Context, owner models.Owner, date string) (*Entry, error)
	Save(ctx context.Context, owner models.Owner, date string, content string) error
	Update(ctx context.Context, owner models.Owner, date string, content string) error
	Delete(ctx context.Context, owner models.Owner, date string) error
}
