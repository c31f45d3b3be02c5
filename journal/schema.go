// journal/schema.go
package journal

const archiveSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
	snapshot_id TEXT PRIMARY KEY,
	label TEXT NOT NULL,
	saved_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS observations (
	snapshot_id TEXT NOT NULL,
	bar TEXT NOT NULL,
	ts TEXT NOT NULL,
	category TEXT NOT NULL,
	position INTEGER NOT NULL,
	text TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_observations_snapshot ON observations(snapshot_id);
`
