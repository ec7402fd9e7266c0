package codes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/suarezvoley/checkin/internal/random"
)

// CodeLength is the fixed length of a check-in code.
const CodeLength = 4

// DefaultMaxAttempts bounds the collision retry loop. The code space
// holds 10,000 values, so even near exhaustion the expected number of
// collisions before a hit stays small.
const DefaultMaxAttempts = 20000

// ErrExhausted is returned when no free code could be found within the
// retry ceiling. It indicates the 4-digit code space is (nearly) full,
// which is a capacity problem rather than a user error.
var ErrExhausted = errors.New("no free 4-digit codes available")

// Allocator hands out unique 4-digit check-in codes.
type Allocator struct {
	rng         random.Random
	maxAttempts int
}

// New creates an Allocator with the default retry ceiling.
func New(rng random.Random) *Allocator {
	return NewWithMaxAttempts(rng, DefaultMaxAttempts)
}

// NewWithMaxAttempts creates an Allocator with a custom retry ceiling.
func NewWithMaxAttempts(rng random.Random, maxAttempts int) *Allocator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Allocator{rng: rng, maxAttempts: maxAttempts}
}

// Allocate returns a zero-padded 4-digit code not present in inUse and
// records it there, so repeated calls against the same set never hand
// out the same code twice.
func (a *Allocator) Allocate(inUse map[string]struct{}) (string, error) {
	for i := 0; i < a.maxAttempts; i++ {
		code := fmt.Sprintf("%04d", a.rng.Intn(10000))
		if _, taken := inUse[code]; taken {
			continue
		}
		inUse[code] = struct{}{}
		return code, nil
	}
	return "", ErrExhausted
}

// Normalize cleans up a stored code: surrounding whitespace is
// stripped and short all-digit values are zero-padded to 4 digits.
// It returns "" for anything that cannot become a valid code.
func Normalize(code string) string {
	code = strings.TrimSpace(code)
	if code == "" || len(code) > CodeLength || !IsValid(zeroPad(code)) {
		return ""
	}
	return zeroPad(code)
}

// IsValid reports whether code is exactly 4 ASCII digits.
func IsValid(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

func zeroPad(code string) string {
	for len(code) < CodeLength {
		code = "0" + code
	}
	return code
}
