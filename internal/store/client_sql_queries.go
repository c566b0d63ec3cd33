package store

const (
	createPreferencesTable = `CREATE TABLE IF NOT EXISTS preferences (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	getPreference = `SELECT value FROM preferences WHERE key = ?;`

	upsertPreference = `INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP;`

	deletePreference = `DELETE FROM preferences WHERE key = ?;`
)
