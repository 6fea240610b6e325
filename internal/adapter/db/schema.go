package db

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:embed schema/sqlite.sql
var sqliteSchema string

// ApplySQLiteSchema creates missing tables. MySQL deployments use the
// migrations under db/migrations instead.
func ApplySQLiteSchema(db *sqlx.DB) error {
	for _, statement := range strings.Split(sqliteSchema, ";") {
		statement = strings.TrimSpace(statement)
		if statement == "" {
			continue
		}
		if _, err := db.Exec(statement); err != nil {
			return fmt.Errorf("apply sqlite schema: %w", err)
		}
	}
	return nil
}
