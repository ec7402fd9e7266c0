package attendance

import (
	"database/sql"
	"sync"

	"github.com/suarezvoley/checkin/internal/clock"
)

// store handles all database operations for attendance records.
type store struct {
	db    *sql.DB
	mu    sync.RWMutex
	clock clock.Clock
}

// CheckIn is the confirmation returned after a successful check-in.
type CheckIn struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Time string `json:"time"`
}

// Verification is the result of a side-effect-free code lookup.
type Verification struct {
	Exists bool   `json:"exists"`
	Name   string `json:"name,omitempty"`
	Code   string `json:"code"`
}

// Attendee is one row of the "who checked in today" listing.
type Attendee struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Time string `json:"time"`
}

// DefaultRecentLimit caps the recent-attendees listing when the caller
// does not ask for a specific size.
const DefaultRecentLimit = 5

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)
