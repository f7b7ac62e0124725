// Package domain contains core business entities and interfaces.
package domain

import "time"

// Session is a top-level container for a bounded span of focused work.
// It holds an ordered history of pomodoros and is owned exclusively by
// OwnerID. Fields are ordered to minimize memory padding.
type Session struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime,omitzero"` // zero until the owner ends the session
	ID        string    `json:"id"`
	OwnerID   Identity  `json:"ownerID"`
	Name      string    `json:"name"`
}

// Ended returns true if the owner has ended the session.
func (s *Session) Ended() bool {
	return !s.EndTime.IsZero()
}
