package persona

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS overlays (
	overlay_id      TEXT PRIMARY KEY,
	conversation_id TEXT NOT NULL,
	name            TEXT NOT NULL,
	content         TEXT NOT NULL,
	active          INTEGER NOT NULL DEFAULT 1,
	created_at      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_overlays_conversation
	ON overlays (conversation_id, active);

CREATE TABLE IF NOT EXISTS fusion_log (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	conversation_id TEXT,
	strategy        TEXT NOT NULL,
	weights_json    TEXT NOT NULL,
	conflict_count  INTEGER NOT NULL DEFAULT 0,
	prompt_sha      TEXT,
	created_at      TEXT NOT NULL
);
`
// #endregion schema

// #region types

// Overlay is one persona definition scoped to a conversation. At most one
// overlay per conversation is active at a time.
type Overlay struct {
	OverlayID      string
	ConversationID string
	Name           string
	Content        string
	Active         bool
	CreatedAt      time.Time
}

// #endregion types

// #region store-struct

// Store persists persona overlays in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor

// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region save

// Save stores a new overlay for the conversation and atomically deactivates
// any previously active one.
func (s *Store) Save(conversationID, name, content string) (Overlay, error) {
	ov := Overlay{
		OverlayID:      uuid.New().String(),
		ConversationID: conversationID,
		Name:           name,
		Content:        content,
		Active:         true,
		CreatedAt:      time.Now().UTC(),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Overlay{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`UPDATE overlays SET active = 0 WHERE conversation_id = ? AND active = 1`,
		conversationID,
	)
	if err != nil {
		return Overlay{}, fmt.Errorf("deactivate previous: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO overlays (overlay_id, conversation_id, name, content, active, created_at)
		 VALUES (?, ?, ?, ?, 1, ?)`,
		ov.OverlayID, ov.ConversationID, ov.Name, ov.Content,
		ov.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Overlay{}, fmt.Errorf("insert overlay: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Overlay{}, fmt.Errorf("commit: %w", err)
	}
	return ov, nil
}

// #endregion save

// #region active

// Active returns the conversation's active overlay, or nil if none exists.
func (s *Store) Active(conversationID string) (*Overlay, error) {
	row := s.db.QueryRow(
		`SELECT overlay_id, conversation_id, name, content, active, created_at
		 FROM overlays WHERE conversation_id = ? AND active = 1
		 ORDER BY created_at DESC LIMIT 1`,
		conversationID,
	)
	ov, err := scanOverlay(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get active overlay: %w", err)
	}
	return &ov, nil
}

// #endregion active

// #region deactivate

// Deactivate clears the active overlay for a conversation. A conversation
// with no active overlay is a no-op, not an error.
func (s *Store) Deactivate(conversationID string) error {
	_, err := s.db.Exec(
		`UPDATE overlays SET active = 0 WHERE conversation_id = ? AND active = 1`,
		conversationID,
	)
	if err != nil {
		return fmt.Errorf("deactivate overlay: %w", err)
	}
	return nil
}

// #endregion deactivate

// #region list

// List returns the most recent overlays for a conversation, newest first.
func (s *Store) List(conversationID string, limit int) ([]Overlay, error) {
	rows, err := s.db.Query(
		`SELECT overlay_id, conversation_id, name, content, active, created_at
		 FROM overlays WHERE conversation_id = ?
		 ORDER BY created_at DESC LIMIT ?`,
		conversationID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list overlays: %w", err)
	}
	defer rows.Close()

	var overlays []Overlay
	for rows.Next() {
		ov, err := scanOverlay(rows)
		if err != nil {
			return nil, fmt.Errorf("scan overlay: %w", err)
		}
		overlays = append(overlays, ov)
	}
	return overlays, rows.Err()
}

// #endregion list

// #region helpers

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOverlay(row rowScanner) (Overlay, error) {
	var ov Overlay
	var active int
	var createdStr string
	if err := row.Scan(&ov.OverlayID, &ov.ConversationID, &ov.Name, &ov.Content, &active, &createdStr); err != nil {
		return Overlay{}, err
	}
	ov.Active = active != 0
	ov.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return ov, nil
}

// #endregion helpers
