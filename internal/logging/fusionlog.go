package logging

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"
)

// #region log-fusion

// LogFusion writes a provenance entry to the fusion_log table.
func LogFusion(db *sql.DB, entry FusionEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO fusion_log (conversation_id, strategy, weights_json, conflict_count, prompt_sha, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		nullIfEmpty(entry.ConversationID),
		entry.Strategy,
		entry.WeightsJSON,
		entry.ConflictCount,
		nullIfEmpty(entry.PromptSHA),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log fusion: %w", err)
	}
	return nil
}

// #endregion log-fusion

// #region recent

// Recent returns the latest fusion_log entries, newest first.
func Recent(db *sql.DB, limit int) ([]FusionEntry, error) {
	rows, err := db.Query(
		`SELECT conversation_id, strategy, weights_json, conflict_count, prompt_sha, created_at
		 FROM fusion_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query fusion log: %w", err)
	}
	defer rows.Close()

	var entries []FusionEntry
	for rows.Next() {
		var e FusionEntry
		var convID, promptSHA sql.NullString
		var createdStr string
		if err := rows.Scan(&convID, &e.Strategy, &e.WeightsJSON, &e.ConflictCount, &promptSHA, &createdStr); err != nil {
			return nil, fmt.Errorf("scan fusion log: %w", err)
		}
		if convID.Valid {
			e.ConversationID = convID.String
		}
		if promptSHA.Valid {
			e.PromptSHA = promptSHA.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion recent

// #region helpers

// PromptSHA computes the hex SHA-256 of a fused prompt for the log.
func PromptSHA(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
