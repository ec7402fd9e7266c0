package attendance

import (
	"database/sql"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/suarezvoley/checkin/internal/clock"
	"github.com/suarezvoley/checkin/internal/codes"
)

// New creates a new Recorder backed by the given database.
func New(db *sql.DB, clk clock.Clock) Recorder {
	return &store{
		db:    db,
		clock: clk,
	}
}

func (s *store) CheckIn(code string) (CheckIn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code = strings.TrimSpace(code)
	if !codes.IsValid(code) {
		return CheckIn{}, ErrInvalidCode
	}

	tx, err := s.db.Begin()
	if err != nil {
		return CheckIn{}, err
	}

	var playerID int64
	var name string
	err = tx.QueryRow("SELECT id, name FROM players WHERE code = ?", code).Scan(&playerID, &name)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return CheckIn{}, ErrPlayerNotFound
	}
	if err != nil {
		tx.Rollback()
		return CheckIn{}, err
	}

	now := s.clock.Now()
	date := now.Format(dateLayout)
	at := now.Format(timeLayout)

	if _, err := tx.Exec(
		"INSERT INTO attendance (player_id, date, time) VALUES (?, ?, ?)",
		playerID, date, at,
	); err != nil {
		tx.Rollback()
		return CheckIn{}, err
	}
	if err := tx.Commit(); err != nil {
		return CheckIn{}, err
	}

	log.Info("Recorded check-in", "name", name, "code", code, "date", date, "time", at)
	return CheckIn{Name: name, Code: code, Time: at}, nil
}

func (s *store) Verify(code string) (Verification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	code = strings.TrimSpace(code)
	if !codes.IsValid(code) {
		return Verification{Exists: false, Code: code}, nil
	}

	var name string
	err := s.db.QueryRow("SELECT name FROM players WHERE code = ?", code).Scan(&name)
	if err == sql.ErrNoRows {
		return Verification{Exists: false, Code: code}, nil
	}
	if err != nil {
		return Verification{}, err
	}
	return Verification{Exists: true, Name: name, Code: code}, nil
}

func (s *store) RecentAttendees(limit int) ([]Attendee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit < 1 {
		limit = DefaultRecentLimit
	}
	today := s.clock.Now().Format(dateLayout)

	rows, err := s.db.Query(`
		SELECT p.name, p.code, a.time
		FROM attendance a
		JOIN players p ON a.player_id = p.id
		WHERE a.date = ?
		ORDER BY a.id DESC
		LIMIT ?
	`, today, limit)
	if err != nil {
		log.Error("Failed to query recent attendees", "error", err)
		return nil, err
	}
	defer rows.Close()

	attendees := []Attendee{}
	for rows.Next() {
		var a Attendee
		if err := rows.Scan(&a.Name, &a.Code, &a.Time); err != nil {
			return nil, err
		}
		attendees = append(attendees, a)
	}
	return attendees, rows.Err()
}

var _ Recorder = (*store)(nil)
