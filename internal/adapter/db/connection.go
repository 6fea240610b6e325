package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"tasktracker/internal/config"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"

	// sqliteUnicodeDriver is go-sqlite3 with lower() folding every script,
	// the built-in one only folds ASCII.
	sqliteUnicodeDriver = "sqlite3_unicode"
)

func init() {
	sql.Register(sqliteUnicodeDriver, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("lower", strings.ToLower, true)
		},
	})
	sqlx.BindDriver(sqliteUnicodeDriver, sqlx.QUESTION)
}

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	switch conf.DbDriver {
	case DriverSQLite:
		return ConnectSQLite(conf.SqlitePath)
	case DriverMySQL, "":
		return connectMySQL(conf)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.DbDriver)
	}
}

func connectMySQL(conf *config.Config) (*sqlx.DB, error) {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true"
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)

	return sqlx.Connect(DriverMySQL, dsn)
}

// ConnectSQLite opens a SQLite database and creates the schema if needed.
// It is meant for local runs and tests.
func ConnectSQLite(path string) (*sqlx.DB, error) {
	if path == "" {
		path = "file:tasktracker.db"
	}
	dsn := path + "?_foreign_keys=on"
	if strings.Contains(path, "?") {
		dsn = path + "&_foreign_keys=on"
	}

	db, err := sqlx.Connect(sqliteUnicodeDriver, dsn)
	if err != nil {
		return nil, err
	}
	// SQLite serialises writers; a single connection keeps in-memory databases
	// and transactions consistent.
	db.SetMaxOpenConns(1)

	if err := ApplySQLiteSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
