package attendance

import "errors"

var (
	// ErrInvalidCode means the input is not exactly 4 digits after trimming.
	ErrInvalidCode = errors.New("code must be exactly 4 digits")
	// ErrPlayerNotFound means no player owns the given code.
	ErrPlayerNotFound = errors.New("no player with that code")
)

// Recorder defines the interface for recording and reading attendance.
type Recorder interface {
	// CheckIn appends an attendance record for the player owning the
	// code, stamped with the current local date and time. Multiple
	// check-ins per player per day simply accumulate.
	CheckIn(code string) (CheckIn, error)
	// Verify looks a code up without recording anything. Used by the
	// kiosk front-end to confirm before committing. A malformed code
	// verifies as not-existing rather than erroring.
	Verify(code string) (Verification, error)
	// RecentAttendees returns today's attendance, most recent first,
	// capped at limit (clamped to a minimum of 1).
	RecentAttendees(limit int) ([]Attendee, error)
}
