package db

import (
	"github.com/flatywop/predlojkabot/model"
)

// EnsureSettings inserts the singleton settings row if it is absent.
// Called once at startup.
func EnsureSettings() error {
	_, err := DB.Exec("INSERT INTO settings (id) VALUES (1) ON CONFLICT(id) DO NOTHING")
	return err
}

// GetSettings reads the singleton settings row.
func GetSettings() (*model.Settings, error) {
	var s model.Settings
	err := DB.QueryRow("SELECT initialized, initializer_id, target_channel FROM settings WHERE id = 1").
		Scan(&s.Initialized, &s.InitializerID, &s.TargetChannel)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Initialize flips the bootstrap flag. The WHERE clause makes the false→true
// transition happen exactly once system-wide: only the first caller gets
// true, every later (or concurrent) invocation is a no-op.
func Initialize(initializerID, targetChannel string) (bool, error) {
	res, err := DB.Exec(
		"UPDATE settings SET initialized = 1, initializer_id = ?, target_channel = ? WHERE id = 1 AND initialized = 0",
		initializerID, targetChannel,
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// SetTargetChannel updates the publish destination. Any moderator may do
// this after bootstrap.
func SetTargetChannel(channelID string) error {
	_, err := DB.Exec("UPDATE settings SET target_channel = ? WHERE id = 1", channelID)
	return err
}
