package domain

// Status represents the lifecycle state of a pomodoro.
type Status string

const (
	StatusInFocus   Status = "in_focus"  // Focus interval running
	StatusInBreak   Status = "in_break"  // Break interval running
	StatusCompleted Status = "completed" // Cycle finished (terminal)
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{StatusInFocus, StatusInBreak, StatusCompleted}
}

// transitions defines the allowed status transitions.
// Flow: in_focus → in_break → completed, with a shortcut
// in_focus → completed when the break is skipped.
var transitions = map[Status][]Status{
	StatusInFocus:   {StatusInBreak, StatusCompleted},
	StatusInBreak:   {StatusCompleted},
	StatusCompleted: {},
}

// CanTransitionTo returns true if the status can transition to the target status.
func (s Status) CanTransitionTo(target Status) bool {
	allowed, ok := transitions[s]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the status is a terminal state.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusInFocus, StatusInBreak, StatusCompleted:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusInFocus:
		return "In Focus"
	case StatusInBreak:
		return "On Break"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}
