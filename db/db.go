package db

import (
	"database/sql"
	"strings"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

const dbDriver = "sqlite3"

// DB is the global database connection pool.
var DB *sql.DB

// InitDB opens the SQLite database at the given source and creates the
// tables if they don't exist.
func InitDB(source string) error {
	var err error
	DB, err = sql.Open(dbDriver, source)
	if err != nil {
		return err
	}

	// An anonymous in-memory database exists per connection, so the pool
	// must be capped to a single one for the schema to be shared.
	if strings.Contains(source, ":memory:") || strings.Contains(source, "mode=memory") {
		DB.SetMaxOpenConns(1)
	}

	if err := createTables(); err != nil {
		return err
	}

	log.Info("database connection initialized", "source", source)
	return nil
}
