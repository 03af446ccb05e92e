package constants

// TaskStatus is the canonical status for rows in import_tasks.
type TaskStatus string

// Stable values (store these exact strings in DB). Transitions are
// forward-only: PENDING -> IN_PROGRESS -> {SUCCESS, FAILURE}.
const (
	TaskPending    TaskStatus = "PENDING"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskSuccess    TaskStatus = "SUCCESS"
	TaskFailure    TaskStatus = "FAILURE"
)

// Terminal reports whether no further transition is allowed from s.
func (s TaskStatus) Terminal() bool {
	return s == TaskSuccess || s == TaskFailure
}

// CanTransition reports whether s -> next is a legal forward transition.
func CanTransition(s, next TaskStatus) bool {
	switch s {
	case TaskPending:
		return next == TaskInProgress || next == TaskSuccess || next == TaskFailure
	case TaskInProgress:
		return next == TaskSuccess || next == TaskFailure
	default:
		return false
	}
}

// ExtractionStatus is the overall status of an extraction result.
type ExtractionStatus string

const (
	ExtractionSuccess ExtractionStatus = "success"
	ExtractionError   ExtractionStatus = "error"
)
