package club

import (
	"database/sql"
	"sync"

	"github.com/suarezvoley/checkin/internal/codes"
)

// store handles all database operations for the player roster.
type store struct {
	db        *sql.DB
	mu        sync.RWMutex
	allocator *codes.Allocator
}

// Player is a registered club member. Code is the public 4-digit
// check-in token; it is assigned at creation and never changes.
type Player struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Tenure int    `json:"tenure"`
	Code   string `json:"code"`
}

// Bounds enforced on player fields before anything is persisted.
// The schema carries matching CHECK constraints as a backstop.
const (
	MaxNameLength = 100
	MinAge        = 1
	MaxAge        = 120
	MinTenure     = 0
	MaxTenure     = 80
)
