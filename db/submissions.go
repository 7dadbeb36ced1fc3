package db

import (
	"database/sql"
	"time"

	"github.com/flatywop/predlojkabot/model"
)

// AddSubmission persists a new pending submission and returns its id.
func AddSubmission(ownerID, attachmentPath, content string) (int64, error) {
	res, err := DB.Exec(
		"INSERT INTO submissions (owner_id, attachment_path, content, created_at) VALUES (?, ?, ?, ?)",
		ownerID, attachmentPath, content, time.Now().Unix(),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetSubmission retrieves a pending submission by its id.
// It returns nil, nil if no submission is found.
func GetSubmission(id int64) (*model.Submission, error) {
	var sub model.Submission
	err := DB.QueryRow(
		"SELECT id, owner_id, attachment_path, content, created_at FROM submissions WHERE id = ?", id,
	).Scan(&sub.ID, &sub.OwnerID, &sub.AttachmentPath, &sub.Content, &sub.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

// DeleteSubmission removes a submission and reports whether this call was
// the one that removed it. Under a double-press race exactly one caller gets
// true, which is the single-attempt guard behind decision idempotency.
func DeleteSubmission(id int64) (bool, error) {
	res, err := DB.Exec("DELETE FROM submissions WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
