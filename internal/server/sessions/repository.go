// Package sessions declares the server-side session store: at most one
// refresh token per owner identity.
package sessions

import (
	"context"

	"journal-api/internal/server/models"
)

// Repository defines operations on stored refresh-token sessions.
type Repository interface {
	// Upsert stores refreshToken as the owner's single live session,
	// creating the record or replacing the previous token atomically.
	Upsert(ctx context.Context, owner models.Owner, refreshToken string) error

	// FindByToken looks a session up by its refresh-token string.
	// Implementations return common.ErrorNotFound when the token is absent.
	FindByToken(ctx context.Context, refreshToken string) (*Session, error)

	// DeleteByToken removes the session holding refreshToken. Deleting an
	// absent token is not an error.
	DeleteByToken(ctx context.Context, refreshToken string) error

	// CountByOwner reports how many session records exist for owner.
	CountByOwner(ctx context.Context, owner models.Owner) (int, error)
}
