package users

import (
	"context"
	"time"
)

// Repository is the credential store contract. Implementations should return
// common.ErrorNotFound for missing rows and common.ErrorAlreadyExists when a
// create collides on email.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	SetPasswordHash(ctx context.Context, userID string, passwordHash string) error
	SetResetToken(ctx context.Context, userID string, digest string, expiresAt time.Time) error
	ClearResetToken(ctx context.Context, userID string) error

	// GetByResetDigest looks a user up by the stored reset-token digest.
	GetByResetDigest(ctx context.Context, digest string) (*User, error)
}
