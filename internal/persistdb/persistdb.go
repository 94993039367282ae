package persistdb

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

var (
	db     *sql.DB
	dbPath = "mqscope.db"
)

// SetDbPath overrides the database file location. Call before InitDB/OpenDB.
func SetDbPath(path string) {
	dbPath = path
}

func OpenDB() error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	return db.Ping()
}

func CloseDB() error {
	if db == nil {
		return nil
	}
	err := db.Close()
	db = nil
	return err
}

// InitDB creates the schema. Safe to call on an existing database.
func InitDB() error {
	if err := OpenDB(); err != nil {
		return err
	}
	schema := []string{
		`CREATE TABLE IF NOT EXISTS roles (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role_id INTEGER NOT NULL REFERENCES roles(id)
		)`,
		`CREATE TABLE IF NOT EXISTS connections (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			queue_manager TEXT NOT NULL,
			host TEXT NOT NULL,
			port INTEGER NOT NULL,
			channel TEXT NOT NULL,
			user TEXT NOT NULL DEFAULT ''
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

// AddDefaultRoles seeds the admin and viewer roles.
func AddDefaultRoles() error {
	_, err := db.Exec(`INSERT OR IGNORE INTO roles (id, name) VALUES (1, 'admin'), (2, 'viewer')`)
	if err != nil {
		return fmt.Errorf("seeding roles: %w", err)
	}
	return nil
}
