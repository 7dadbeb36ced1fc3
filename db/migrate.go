package db

// createTables creates the necessary tables if they don't exist in the database.
func createTables() error {
	createUsersTableSQL := `
	CREATE TABLE IF NOT EXISTS users (
		user_id TEXT PRIMARY KEY,
		is_moderator INTEGER NOT NULL DEFAULT 0
	);`

	if _, err := DB.Exec(createUsersTableSQL); err != nil {
		return err
	}

	createSubmissionsTableSQL := `
	CREATE TABLE IF NOT EXISTS submissions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		owner_id TEXT NOT NULL,
		attachment_path TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	);`

	if _, err := DB.Exec(createSubmissionsTableSQL); err != nil {
		return err
	}

	// The CHECK constraint pins the settings table to a single row, which is
	// what makes a concurrent double-bootstrap impossible.
	createSettingsTableSQL := `
	CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		initialized INTEGER NOT NULL DEFAULT 0,
		initializer_id TEXT NOT NULL DEFAULT '',
		target_channel TEXT NOT NULL DEFAULT ''
	);`

	if _, err := DB.Exec(createSettingsTableSQL); err != nil {
		return err
	}

	return nil
}
