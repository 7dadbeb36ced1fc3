package model

// Action is a moderator's verdict on a submission.
type Action string

const (
	ActionAccept  Action = "accept"
	ActionDecline Action = "decline"
	ActionBan     Action = "ban"
	ActionUnknown Action = "unknown"
)

// ParseAction maps a raw action token from a button custom ID to an Action.
// Anything unrecognized collapses to ActionUnknown.
func ParseAction(raw string) Action {
	switch Action(raw) {
	case ActionAccept, ActionDecline, ActionBan:
		return Action(raw)
	default:
		return ActionUnknown
	}
}
