// Package db wires repositories to their storage backend and owns schema
// migrations.
package db

import (
	"context"
	"database/sql"

	"journal-api/internal/server/entries"
	"journal-api/internal/server/sessions"
	"journal-api/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Sessions() sessions.Repository
	Entries() entries.Repository
}
