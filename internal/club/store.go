package club

import (
	"database/sql"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/suarezvoley/checkin/internal/codes"
)

// New creates a new PlayerStore backed by the given database.
func New(db *sql.DB, allocator *codes.Allocator) PlayerStore {
	return &store{
		db:        db,
		allocator: allocator,
	}
}

func validateFields(name string, age, tenure int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameLength {
		return "", ErrInvalidName
	}
	if age < MinAge || age > MaxAge {
		return "", ErrInvalidAge
	}
	if tenure < MinTenure || tenure > MaxTenure {
		return "", ErrInvalidTenure
	}
	return name, nil
}

// CreatePlayer validates the fields, allocates a unique code and
// inserts the row, all inside a single transaction so the collision
// check and the insert cannot be split by another writer.
func (s *store) CreatePlayer(name string, age, tenure int) (Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, err := validateFields(name, age, tenure)
	if err != nil {
		return Player{}, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Player{}, err
	}

	var existing int64
	err = tx.QueryRow("SELECT id FROM players WHERE LOWER(name) = LOWER(?)", name).Scan(&existing)
	if err == nil {
		tx.Rollback()
		return Player{}, ErrDuplicateName
	}
	if err != sql.ErrNoRows {
		tx.Rollback()
		return Player{}, err
	}

	inUse, err := codesInUse(tx)
	if err != nil {
		tx.Rollback()
		return Player{}, err
	}
	code, err := s.allocator.Allocate(inUse)
	if err != nil {
		tx.Rollback()
		return Player{}, err
	}

	res, err := tx.Exec(
		"INSERT INTO players (name, age, tenure, code) VALUES (?, ?, ?, ?)",
		name, age, tenure, code,
	)
	if err != nil {
		tx.Rollback()
		if isUniqueViolation(err, "players.code") {
			return Player{}, ErrDuplicateCode
		}
		if isUniqueViolation(err, "players.name") {
			return Player{}, ErrDuplicateName
		}
		return Player{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return Player{}, err
	}
	if err := tx.Commit(); err != nil {
		return Player{}, err
	}

	log.Info("Registered new player", "id", id, "name", name, "code", code)
	return Player{ID: id, Name: name, Age: age, Tenure: tenure, Code: code}, nil
}

func (s *store) GetPlayer(id int64) (Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p Player
	err := s.db.QueryRow(
		"SELECT id, name, age, tenure, code FROM players WHERE id = ?", id,
	).Scan(&p.ID, &p.Name, &p.Age, &p.Tenure, &p.Code)
	if err == sql.ErrNoRows {
		return Player{}, ErrPlayerNotFound
	}
	if err != nil {
		return Player{}, err
	}
	return p, nil
}

func (s *store) ListPlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, age, tenure, code FROM players ORDER BY id ASC")
	if err != nil {
		log.Error("Failed to query players", "error", err)
		return nil, err
	}
	defer rows.Close()

	players := []Player{}
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Age, &p.Tenure, &p.Code); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (s *store) UpdatePlayer(id int64, name string, age, tenure int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, err := validateFields(name, age, tenure)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	var current int64
	err = tx.QueryRow("SELECT id FROM players WHERE id = ?", id).Scan(&current)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return ErrPlayerNotFound
	}
	if err != nil {
		tx.Rollback()
		return err
	}

	var other int64
	err = tx.QueryRow("SELECT id FROM players WHERE LOWER(name) = LOWER(?) AND id != ?", name, id).Scan(&other)
	if err == nil {
		tx.Rollback()
		return ErrDuplicateName
	}
	if err != sql.ErrNoRows {
		tx.Rollback()
		return err
	}

	if _, err := tx.Exec(
		"UPDATE players SET name = ?, age = ?, tenure = ? WHERE id = ?",
		name, age, tenure, id,
	); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	log.Info("Updated player", "id", id, "name", name)
	return nil
}

// DeletePlayer removes the player's attendance records and then the
// player row in one transaction, so a failure leaves both intact.
func (s *store) DeletePlayer(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	var current int64
	err = tx.QueryRow("SELECT id FROM players WHERE id = ?", id).Scan(&current)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return ErrPlayerNotFound
	}
	if err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.Exec("DELETE FROM attendance WHERE player_id = ?", id); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec("DELETE FROM players WHERE id = ?", id); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	log.Info("Deleted player and attendance records", "id", id)
	return nil
}

// codesInUse snapshots the claimed codes inside the current transaction.
func codesInUse(tx *sql.Tx) (map[string]struct{}, error) {
	rows, err := tx.Query("SELECT code FROM players WHERE code IS NOT NULL")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inUse := make(map[string]struct{})
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		inUse[code] = struct{}{}
	}
	return inUse, rows.Err()
}

func isUniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") && strings.Contains(msg, column)
}

var _ PlayerStore = (*store)(nil)
