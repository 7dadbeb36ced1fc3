package db

import (
	"database/sql"

	"github.com/flatywop/predlojkabot/model"
)

// EnsureUser creates a user row if one doesn't exist yet. It never touches
// the moderator flag of an existing row.
func EnsureUser(userID string) error {
	_, err := DB.Exec("INSERT INTO users (user_id) VALUES (?) ON CONFLICT(user_id) DO NOTHING", userID)
	return err
}

// GetUser retrieves a user by id. It returns nil, nil if no user is found.
func GetUser(userID string) (*model.User, error) {
	var user model.User
	err := DB.QueryRow("SELECT user_id, is_moderator FROM users WHERE user_id = ?", userID).
		Scan(&user.ID, &user.IsModerator)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// IsModerator reports whether the user holds moderator privilege. An unknown
// user is simply not a moderator.
func IsModerator(userID string) (bool, error) {
	user, err := GetUser(userID)
	if err != nil {
		return false, err
	}
	return user != nil && user.IsModerator, nil
}

// GrantModerator gives the user moderator privilege, creating the row if
// needed. Granting an existing moderator is idempotent.
func GrantModerator(userID string) error {
	_, err := DB.Exec("INSERT INTO users (user_id, is_moderator) VALUES (?, 1) ON CONFLICT(user_id) DO UPDATE SET is_moderator = 1", userID)
	return err
}

// RevokeModerator removes moderator privilege. It returns false when the
// user wasn't a moderator in the first place, so the caller can report that
// instead of treating it as an error.
func RevokeModerator(userID string) (bool, error) {
	res, err := DB.Exec("UPDATE users SET is_moderator = 0 WHERE user_id = ? AND is_moderator = 1", userID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ListModerators returns the ids of all moderators, ordered by id.
func ListModerators() ([]string, error) {
	rows, err := DB.Query("SELECT user_id FROM users WHERE is_moderator = 1 ORDER BY user_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var moderators []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		moderators = append(moderators, id)
	}
	return moderators, rows.Err()
}

// FirstModerator returns the current reviewer: the first moderator by id.
// The selection is a documented policy, not store iteration order; with a
// single moderator (the intended setup) it is simply that moderator.
// An empty id means nobody can review yet.
func FirstModerator() (string, error) {
	var id string
	err := DB.QueryRow("SELECT user_id FROM users WHERE is_moderator = 1 ORDER BY user_id LIMIT 1").Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return id, nil
}
