// journal/query.go
package journal

import (
	"database/sql"
	"fmt"
	"time"
)

// SnapshotInfo summarizes one archived session.
type SnapshotInfo struct {
	ID           string
	Label        string
	SavedAt      time.Time
	Observations int
}

// ListSnapshots returns every archived snapshot, oldest first.
func (a *Archive) ListSnapshots() ([]SnapshotInfo, error) {
	rows, err := a.db.Query(`
		SELECT s.snapshot_id, s.label, s.saved_at, COUNT(o.text)
		FROM snapshots s
		LEFT JOIN observations o ON o.snapshot_id = s.snapshot_id
		GROUP BY s.snapshot_id, s.label, s.saved_at
		ORDER BY s.snapshot_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SnapshotInfo
	for rows.Next() {
		var info SnapshotInfo
		if err := rows.Scan(&info.ID, &info.Label, &info.SavedAt, &info.Observations); err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadSnapshot rebuilds a full session from an archived snapshot. Bars without
// observations come back as fresh empty records.
func (a *Archive) LoadSnapshot(id string) (Session, error) {
	var label string
	err := a.db.QueryRow(`SELECT label FROM snapshots WHERE snapshot_id = ?`, id).Scan(&label)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("snapshot %q not found", id)
		}
		return nil, err
	}

	rows, err := a.db.Query(`
		SELECT bar, ts, category, position, text
		FROM observations
		WHERE snapshot_id = ?
		ORDER BY bar, category, position ASC`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sess := NewSession()
	for rows.Next() {
		var (
			bar, ts, category, text string
			position                int
		)
		if err := rows.Scan(&bar, &ts, &category, &position, &text); err != nil {
			return nil, err
		}
		rec, ok := sess[BarKey(bar)]
		if !ok {
			continue
		}
		rec.TS = ts
		cat := Category(category)
		rec.setList(cat, append(rec.List(cat), text))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sess, nil
}

// DeleteSnapshot removes a snapshot and its observations.
func (a *Archive) DeleteSnapshot(id string) error {
	res, err := a.db.Exec(`DELETE FROM snapshots WHERE snapshot_id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("snapshot %q not found", id)
	}
	_, err = a.db.Exec(`DELETE FROM observations WHERE snapshot_id = ?`, id)
	return err
}
