package sqlite

import (
	"database/sql"
	"time"

	"github.com/strikerhq/striker/internal/domain"
)

// ─── Progress State ─────────────────────────────────────────────────────────
// Implements domain.StateStore: one JSON document per user with a
// revision counter for optimistic concurrency.

// LoadState returns the raw snapshot document and its revision.
// A user with no persisted state yields (nil, 0, nil).
func (d *DB) LoadState(userID string) ([]byte, int64, error) {
	var doc string
	var revision int64
	err := d.db.QueryRow(
		`SELECT doc, revision FROM progress_state WHERE user_id = ?`, userID,
	).Scan(&doc, &revision)
	if err == sql.ErrNoRows {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	return []byte(doc), revision, nil
}

// SaveState writes the document if the stored revision still equals
// expected, and returns the new revision. expected == 0 means "no
// prior state"; the insert fails if a row appeared meanwhile.
func (d *DB) SaveState(userID string, doc []byte, expected int64) (int64, error) {
	now := time.Now().Unix()

	if expected == 0 {
		_, err := d.db.Exec(
			`INSERT INTO progress_state (user_id, doc, revision, updated_at)
			 VALUES (?, ?, 1, ?)`,
			userID, string(doc), now,
		)
		if err != nil {
			// A concurrent writer created the row first.
			if exists, _ := d.stateExists(userID); exists {
				return 0, domain.ErrRevisionConflict
			}
			return 0, err
		}
		return 1, nil
	}

	result, err := d.db.Exec(
		`UPDATE progress_state
		 SET doc = ?, revision = revision + 1, updated_at = ?
		 WHERE user_id = ? AND revision = ?`,
		string(doc), now, userID, expected,
	)
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, domain.ErrRevisionConflict
	}
	return expected + 1, nil
}

// DeleteState discards the user's persisted snapshot. Deleting a user
// with no state is not an error.
func (d *DB) DeleteState(userID string) error {
	_, err := d.db.Exec(`DELETE FROM progress_state WHERE user_id = ?`, userID)
	return err
}

func (d *DB) stateExists(userID string) (bool, error) {
	var count int
	err := d.db.QueryRow(
		`SELECT COUNT(*) FROM progress_state WHERE user_id = ?`, userID,
	).Scan(&count)
	return count > 0, err
}
