package store

import (
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/mod/semver"
)

// FormatVersion is the on-disk format version written to new databases.
// A database whose major version differs is refused rather than
// silently migrated.
const FormatVersion = "v1.0.0"

// checkFormatVersion reads or initializes the store format version and
// rejects databases written by an incompatible major version.
func checkFormatVersion(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS store_meta (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		format_version TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create meta table: %w", err)
	}

	var existing string
	err = db.QueryRow(`SELECT format_version FROM store_meta WHERE id = 1`).Scan(&existing)
	if errors.Is(err, sql.ErrNoRows) {
		_, err = db.Exec(`INSERT INTO store_meta (id, format_version) VALUES (1, ?)`, FormatVersion)
		if err != nil {
			return fmt.Errorf("write format version: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("read format version: %w", err)
	}

	if !semver.IsValid(existing) {
		return &CorruptStateError{Kind: "store", ID: existing, Reason: "invalid format version"}
	}
	if semver.Major(existing) != semver.Major(FormatVersion) {
		return &CorruptStateError{
			Kind:   "store",
			ID:     existing,
			Reason: fmt.Sprintf("incompatible format version (want %s.x)", semver.Major(FormatVersion)),
		}
	}
	return nil
}
