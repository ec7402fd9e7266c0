package club

import "errors"

var (
	// ErrInvalidName means the name is empty after trimming or too long.
	ErrInvalidName = errors.New("invalid player name")
	// ErrInvalidAge means age is outside 1-120.
	ErrInvalidAge = errors.New("age out of range")
	// ErrInvalidTenure means tenure is outside 0-80.
	ErrInvalidTenure = errors.New("tenure out of range")
	// ErrDuplicateName means another player already uses the name,
	// compared case-insensitively.
	ErrDuplicateName = errors.New("player name already exists")
	// ErrDuplicateCode surfaces a lost code-allocation race: the
	// unique index rejected an insert two writers raced on.
	ErrDuplicateCode = errors.New("player code already exists")
	// ErrPlayerNotFound means no player has the given id.
	ErrPlayerNotFound = errors.New("player not found")
)
