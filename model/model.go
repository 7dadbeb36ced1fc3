package model

// User represents a user known to the bot. A row is created lazily on the
// user's first interaction; only the moderator flag is ever mutated.
type User struct {
	ID          string
	IsModerator bool
}

// Submission is a pending post awaiting a moderation decision. The record
// exists exactly while the decision is pending; resolving it deletes the row.
type Submission struct {
	ID             int64
	OwnerID        string
	AttachmentPath string
	Content        string
	CreatedAt      int64
}

// Settings is the singleton bootstrap record.
type Settings struct {
	Initialized   bool
	InitializerID string
	TargetChannel string
}
