package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"tutorlink/internal/app/server/config"
	"tutorlink/internal/infrastructure/migration"
)

type Storage struct {
	db *sql.DB
}

// New opens the database and brings the schema up to date.
func New(cfg *config.Config) (*Storage, error) {
	db, err := sql.Open("sqlite3", cfg.DB.DatabasePath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	mg := migration.NewMigration(cfg, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) DB() *sql.DB {
	return s.db
}
