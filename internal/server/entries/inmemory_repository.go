package entries

import (
	"context"
	"sync"

	"journal-api/internal/common"
	"journal-api/internal/server/models"
)

// InMemoryRepository is a map-backed entry store used in tests. Entries keep
// insertion order per owner, matching the ORDER BY id semantics of the
// Postgres implementation.
type InMemoryRepository struct {
	mu      sync.Mutex
	nextID  int64
	byOwner map[string][]*Entry // keyed by owner email
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byOwner: make(map[string][]*Entry)}
}

func (r *InMemoryRepository) FetchAll(ctx context.Context, owner models.Owner) ([]*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.byOwner[owner.Email]
	if len(stored) == 0 {
		return nil, common.ErrorNotFound
	}
	result := make([]*Entry, 0, len(stored))
	for _, e := range stored {
		cp := *e
		result = append(result, &cp)
	}
	return result, nil
}

func (r *InMemoryRepository) FetchOne(ctx context.Context, owner models.Owner, date string) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.byOwner[owner.Email] {
		if e.Date == date {
			cp := *e
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) Save(ctx context.Context, owner models.Owner, date string, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.byOwner[owner.Email] = append(r.byOwner[owner.Email], &Entry{ID: r.nextID, Date: date, Content: content})
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, owner models.Owner, date string, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.byOwner[owner.Email] {
		if e.Date == date {
			e.Content = content
			return nil
		}
	}
	return common.ErrorNotFound
}

func (r *InMemoryRepository) Delete(ctx context.Context, owner models.Owner, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.byOwner[owner.Email]
	kept := stored[:0]
	removed := false
	for _, e := range stored {
		if e.Date == date {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return common.ErrorNotFound
	}
	r.byOwner[owner.Email] = kept
	return nil
}
