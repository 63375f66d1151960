package client

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"tutorlink/internal/domain/course"
)

type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	storage := &SQLiteStorage{db: db}
	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init tables: %w", err)
	}
	return storage, nil
}

func (s *SQLiteStorage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS drafts (
			local_id   TEXT PRIMARY KEY,
			server_id  INTEGER NOT NULL DEFAULT 0,
			title      TEXT NOT NULL,
			data       TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_drafts_server ON drafts(server_id);
		CREATE INDEX IF NOT EXISTS idx_drafts_updated ON drafts(updated_at);
	`)
	return err
}

// SaveDraft upserts the whole tree as one JSON document. The draft is small
// and always read back whole; relational decomposition would buy nothing.
func (s *SQLiteStorage) SaveDraft(d *course.Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("serialize draft: %w", err)
	}

	now := time.Now()
	var exists bool
	if err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM drafts WHERE local_id = ?)", d.LocalID).Scan(&exists); err != nil {
		return fmt.Errorf("check draft existence: %w", err)
	}

	if exists {
		_, err = s.db.Exec(`
			UPDATE drafts
			SET server_id = ?, title = ?, data = ?, updated_at = ?
			WHERE local_id = ?
		`, d.ServerID, d.Title, data, now, d.LocalID)
	} else {
		_, err = s.db.Exec(`
			INSERT INTO drafts (local_id, server_id, title, data, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, d.LocalID, d.ServerID, d.Title, data, now, now)
	}
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) GetDraft(localID string) (*course.Draft, error) {
	return s.scanDraft(s.db.QueryRow("SELECT data FROM drafts WHERE local_id = ?", localID))
}

func (s *SQLiteStorage) GetDraftByServerID(serverID int64) (*course.Draft, error) {
	return s.scanDraft(s.db.QueryRow("SELECT data FROM drafts WHERE server_id = ?", serverID))
}

func (s *SQLiteStorage) scanDraft(row *sql.Row) (*course.Draft, error) {
	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, course.ErrNotFound
		}
		return nil, fmt.Errorf("read draft: %w", err)
	}

	var d course.Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("deserialize draft: %w", err)
	}
	return &d, nil
}

func (s *SQLiteStorage) ListDrafts() ([]DraftInfo, error) {
	rows, err := s.db.Query("SELECT local_id, server_id, title, updated_at FROM drafts ORDER BY updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()

	var out []DraftInfo
	for rows.Next() {
		var info DraftInfo
		if err := rows.Scan(&info.LocalID, &info.ServerID, &info.Title, &info.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan draft row: %w", err)
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

func (s *SQLiteStorage) DeleteDraft(localID string) error {
	_, err := s.db.Exec("DELETE FROM drafts WHERE local_id = ?", localID)
	if err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
