package domain

import "time"

// Preset is a named, reusable (focus, break) duration template. Presets are
// independent of sessions and only supply default durations when starting a
// new pomodoro. Duplicate names are permitted; presets are distinguished by
// id. Fields are ordered to minimize memory padding.
type Preset struct {
	Created       time.Time `json:"created"`
	ID            string    `json:"id"`
	OwnerID       Identity  `json:"ownerID"`
	Name          string    `json:"name"`
	FocusDuration int       `json:"focusDuration"` // seconds, > 0
	BreakDuration int       `json:"breakDuration"` // seconds, >= 0
}
