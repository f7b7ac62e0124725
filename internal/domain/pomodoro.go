package domain

import "time"

// Pomodoro is one focus/break work cycle under a session.
//
// FocusDuration and BreakDuration are declared intents in seconds, not
// self-enforced countdowns: the engine records them verbatim together with
// the instants at which the caller asserts a transition, and never runs a
// timer itself. SessionID must reference a session with the same OwnerID;
// the linkage is validated at creation and immutable afterwards. OwnerID is
// denormalized from the session so ownership checks need no join.
// Fields are ordered to minimize memory padding.
type Pomodoro struct {
	StartTime     time.Time `json:"startTime"`
	BreakStart    time.Time `json:"breakStart,omitzero"` // when status became in_break
	EndTime       time.Time `json:"endTime,omitzero"`    // set on completion
	ID            string    `json:"id"`
	OwnerID       Identity  `json:"ownerID"`
	SessionID     string    `json:"sessionID"`
	Status        Status    `json:"status"`
	FocusDuration int       `json:"focusDuration"` // seconds, > 0
	BreakDuration int       `json:"breakDuration"` // seconds, >= 0
}

// ValidateDurations checks the declared focus/break durations.
func ValidateDurations(focusSeconds, breakSeconds int) error {
	if focusSeconds <= 0 {
		return ErrInvalidFocus
	}
	if breakSeconds < 0 {
		return ErrInvalidBreak
	}
	return nil
}
