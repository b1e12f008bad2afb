package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"journal-api/internal/common"
)

// InMemoryRepository is a map-backed credential store used in tests.
type InMemoryRepository struct {
	mu    sync.Mutex
	users map[string]*User // keyed by id
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]*User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	stored := *user
	r.users[user.ID] = &stored
	return user, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) GetByResetDigest(ctx context.Context, digest string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if digest == "" {
		return nil, common.ErrorNotFound
	}
	for _, u := range r.users {
		if u.ResetTokenDigest == digest {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) SetPasswordHash(ctx context.Context, userID string, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return common.ErrorNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *InMemoryRepository) SetResetToken(ctx context.Context, userID string, digest string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return common.ErrorNotFound
	}
	u.ResetTokenDigest = digest
	u.ResetExpiresAt = expiresAt
	return nil
}

func (r *InMemoryRepository) ClearResetToken(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return common.ErrorNotFound
	}
	u.ResetTokenDigest = ""
	u.ResetExpiresAt = time.Time{}
	return nil
}
