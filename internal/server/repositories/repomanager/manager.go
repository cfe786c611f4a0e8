// Package repomanager wires repositories to a database handle and owns
// schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"moodblog/internal/dbx"
	"moodblog/internal/server/repositories/posts"
	"moodblog/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a specific DBTX, so
// services can run the same repository code against *sql.DB or an open
// transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Posts(db dbx.DBTX) posts.Repository
}
