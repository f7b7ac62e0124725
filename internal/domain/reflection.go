package domain

// Rating bounds for reflections.
const (
	MinRating = 1
	MaxRating = 5
)

// Reflection is the post-cycle note attached to a pomodoro. At most one
// reflection exists per pomodoro; writes are upserts keyed by PomodoroID.
type Reflection struct {
	Rating      *int   `json:"rating,omitempty"` // nil = not rated
	ID          string `json:"id"`
	PomodoroID  string `json:"pomodoroID"`
	Description string `json:"description,omitempty"`
}

// ValidateRating checks an optional rating against the allowed range.
func ValidateRating(rating *int) error {
	if rating == nil {
		return nil
	}
	if *rating < MinRating || *rating > MaxRating {
		return ErrInvalidRating
	}
	return nil
}
