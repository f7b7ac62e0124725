package domain

import "time"

// Task is a sub-item of intended work logged against a pomodoro.
// Tasks are ordered by insertion; Seq is assigned by the store and is
// strictly increasing within a store. Fields are ordered to minimize
// memory padding.
type Task struct {
	Created     time.Time `json:"created"`
	ID          string    `json:"id"`
	PomodoroID  string    `json:"pomodoroID"`
	Description string    `json:"description"`
	Seq         int64     `json:"seq"`
	Completed   bool      `json:"completed"`
}
