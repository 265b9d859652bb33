package content

import "strings"

// Class is the derived three-bucket status classification. The raw status
// string stays free text; only the class is used for tallies and filters.
type Class int

const (
	ClassOther Class = iota
	ClassCompleted
	ClassInProgress
	ClassPending
)

// Status vocabularies. Membership is checked on the lower-cased, trimmed
// status; anything outside all three buckets is ClassOther.
var (
	completedStatuses  = []string{"completed", "done", "published", "posted"}
	inProgressStatuses = []string{"in progress", "draft", "editing", "in edit", "edit"}
	pendingStatuses    = []string{"pending", "todo", "backlog", "not started", "assign"}
)

// NormalizeStatus lower-cases and trims a raw status for vocabulary lookup.
func NormalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ClassOf classifies a raw status string.
func ClassOf(status string) Class {
	s := NormalizeStatus(status)
	switch {
	case contains(completedStatuses, s):
		return ClassCompleted
	case contains(inProgressStatuses, s):
		return ClassInProgress
	case contains(pendingStatuses, s):
		return ClassPending
	default:
		return ClassOther
	}
}

func contains(vocab []string, s string) bool {
	for _, v := range vocab {
		if v == s {
			return true
		}
	}
	return false
}

// Stable filter tokens exposed to callers (and persisted in preferences).
const (
	TokenAll        = ""
	TokenCompleted  = "completed"
	TokenInProgress = "in-progress"
	TokenPending    = "pending"
	TokenOther      = "other"
)

// ClassForToken maps a status-filter token to its class. ok is false for the
// empty "all" token and for unrecognised tokens.
func ClassForToken(token string) (Class, bool) {
	switch token {
	case TokenCompleted:
		return ClassCompleted, true
	case TokenInProgress:
		return ClassInProgress, true
	case TokenPending:
		return ClassPending, true
	case TokenOther:
		return ClassOther, true
	}
	return ClassOther, false
}

func (c Class) String() string {
	switch c {
	case ClassCompleted:
		return "completed"
	case ClassInProgress:
		return "in-progress"
	case ClassPending:
		return "pending"
	default:
		return "other"
	}
}
