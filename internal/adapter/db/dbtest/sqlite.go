// Package dbtest provides throwaway SQLite databases for tests.
package dbtest

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	dbadapter "tasktracker/internal/adapter/db"
	"tasktracker/internal/core/domain"
)

// NewSQLite returns an isolated in-memory database with the schema applied.
func NewSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := dbadapter.ConnectSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func CreateUser(t *testing.T, db *sqlx.DB, username string) domain.User {
	t.Helper()

	result, err := db.Exec(`INSERT INTO users (username, email) VALUES (?, ?)`, username, username+"@example.com")
	require.NoError(t, err)
	id, err := result.LastInsertId()
	require.NoError(t, err)

	return domain.User{ID: uint64(id), Username: username, Email: username + "@example.com"}
}

func CreateCategory(t *testing.T, db *sqlx.DB, name string) domain.Category {
	t.Helper()

	createdAt := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	result, err := db.Exec(
		`INSERT INTO categories (name, description, color, created_at) VALUES (?, ?, ?, ?)`,
		name, name+" work", domain.DefaultCategoryColor, createdAt,
	)
	require.NoError(t, err)
	id, err := result.LastInsertId()
	require.NoError(t, err)

	return domain.Category{ID: uint64(id), Name: name, Description: name + " work", Color: domain.DefaultCategoryColor, CreatedAt: createdAt}
}
