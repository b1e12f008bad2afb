package sessions

import (
	"context"
	"sync"

	"journal-api/internal/common"
	"journal-api/internal/server/models"
)

// InMemoryRepository is a map-backed session store used in tests.
// The owner-keyed map gives the same one-session-per-owner guarantee as the
// unique index in the Postgres implementation.
type InMemoryRepository struct {
	mu      sync.Mutex
	byOwner map[string]*Session // keyed by owner email
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byOwner: make(map[string]*Session)}
}

func (r *InMemoryRepository) Upsert(ctx context.Context, owner models.Owner, refreshToken string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byOwner[owner.Email] = &Session{Owner: owner, RefreshToken: refreshToken}
	return nil
}

func (r *InMemoryRepository) FindByToken(ctx context.Context, refreshToken string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.byOwner {
		if s.RefreshToken == refreshToken {
			cp := *s
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) DeleteByToken(ctx context.Context, refreshToken string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for email, s := range r.byOwner {
		if s.RefreshToken == refreshToken {
			delete(r.byOwner, email)
			return nil
		}
	}
	return nil
}

func (r *InMemoryRepository) CountByOwner(ctx context.Context, owner models.Owner) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byOwner[owner.Email]; ok {
		return 1, nil
	}
	return 0, nil
}
