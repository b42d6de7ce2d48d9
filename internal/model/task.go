package model

import "time"

// Intent is the operation a command asks for.
type Intent string

const (
	IntentCreateTask Intent = "create_task"
	IntentUpdateTask Intent = "update_task"
	IntentUnknown    Intent = "unknown"
)

// IsValid reports whether i is one of the declared intents.
func (i Intent) IsValid() bool {
	switch i {
	case IntentCreateTask, IntentUpdateTask, IntentUnknown:
		return true
	default:
		return false
	}
}

func (i Intent) String() string {
	if !i.IsValid() {
		return string(IntentUnknown)
	}
	return string(i)
}

// Priority is the urgency level of a task. The zero value is not a valid level;
// callers fall back to PriorityMedium.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists every level from most to least urgent.
var Priorities = []Priority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}

// ParsePriority converts a level name into a Priority.
func ParsePriority(s string) (Priority, bool) {
	switch p := Priority(s); p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return p, true
	default:
		return "", false
	}
}

func (p Priority) String() string {
	if _, ok := ParsePriority(string(p)); !ok {
		return string(PriorityMedium)
	}
	return string(p)
}

// TaskOperation is the structured result of parsing one command.
// It is built fresh for every call and never mutated afterwards.
type TaskOperation struct {
	Intent         Intent
	Title          string
	Description    *string
	Priority       Priority
	Assignees      []string
	WorkOrder      *string
	Project        *string
	Client         *string
	DueDate        *time.Time
	StartDate      *time.Time
	EstimatedHours *float64
	Entities       []EntityMatch
	Confidence     float64
}
