package db

import (
	"context"
	"database/sql"

	"journal-api/internal/server/entries"
	"journal-api/internal/server/sessions"
	"journal-api/internal/server/users"
)

// InMemoryRepositoryManager backs the repositories with in-process maps.
// Used in tests and for running the server without a database.
type InMemoryRepositoryManager struct {
	users    users.Repository
	sessions sessions.Repository
	entries  entries.Repository
}

func (m InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m InMemoryRepositoryManager) Sessions() sessions.Repository {
	return m.sessions
}

func (m InMemoryRepositoryManager) Entries() entries.Repository {
	return m.entries
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return InMemoryRepositoryManager{
		users:    users.NewInMemoryRepository(),
		sessions: sessions.NewInMemoryRepository(),
		entries:  entries.NewInMemoryRepository(),
	}
}
