// journal/sqlite.go
package journal

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"
)

// Archive stores full-session snapshots in SQLite so finished sessions can be
// kept and reviewed after the autosave file moves on to the next day.
type Archive struct {
	db *sql.DB
}

func OpenArchive(path string) (*Archive, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(archiveSchema); err != nil {
		db.Close()
		return nil, err
	}
	return &Archive{db: db}, nil
}

// SaveSnapshot writes the session under a fresh ULID and returns the id.
// ULIDs sort by generation time, so snapshot ids list chronologically.
func (a *Archive) SaveSnapshot(s Session, label string, savedAt time.Time) (string, error) {
	id := ulid.Make().String()

	tx, err := a.db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO snapshots (snapshot_id, label, saved_at)
		VALUES (?, ?, ?)`,
		id, label, savedAt.UTC(),
	); err != nil {
		return "", err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO observations (snapshot_id, bar, ts, category, position, text)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for _, bar := range BarOrder {
		rec, ok := s[bar]
		if !ok {
			continue
		}
		for _, cat := range Categories {
			for pos, text := range rec.List(cat) {
				if _, err := stmt.Exec(id, string(bar), rec.TS, string(cat), pos, text); err != nil {
					return "", err
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}
