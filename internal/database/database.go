package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/suarezvoley/checkin/internal/codes"
)

//go:embed migrations/*.sql
var migrations embed.FS

// InitDB opens the database, applies migrations and repairs the code
// column. Safe to call on every process start: migrations are
// versioned and the backfill leaves valid codes untouched.
func InitDB(dbPath string, primaryURL string, authToken string, allocator *codes.Allocator) (*sql.DB, func(), error) {
	var db *sql.DB
	var err error

	if primaryURL == "" {
		log.Info("Initializing local SQLite database", "path", dbPath)
		db, err = sql.Open("sqlite3", dbPath)
	} else {
		log.Info("Initializing libsql database", "url", primaryURL)
		db, err = sql.Open("libsql", primaryURL+"?authToken="+authToken)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Single writer keeps SQLite happy under concurrent requests and
	// pins :memory: databases to one connection.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err = ensureSchema(db, allocator); err != nil {
		db.Close()
		return nil, nil, err
	}

	teardown := func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}
	return db, teardown, nil
}

// ensureSchema runs the embedded migrations and then the code backfill.
func ensureSchema(db *sql.DB, allocator *codes.Allocator) error {
	// Foreign key support is not enabled by default in SQLite.
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := backfillCodes(db, allocator); err != nil {
		return fmt.Errorf("failed to backfill player codes: %w", err)
	}

	log.Info("Database schema ready")
	return nil
}

// backfillCodes guarantees every player row carries a valid unique
// 4-digit code. Rows predating the code feature (or carrying junk) get
// a freshly allocated one; the pass walks rows in id order so the
// earliest owner of a duplicated code keeps it.
func backfillCodes(db *sql.DB, allocator *codes.Allocator) error {
	hasCode, err := columnExists(db, "players", "code")
	if err != nil {
		return err
	}
	if !hasCode {
		log.Info("Adding missing code column to players table")
		if _, err := db.Exec("ALTER TABLE players ADD COLUMN code TEXT"); err != nil {
			return err
		}
	}

	rows, err := db.Query("SELECT id, code FROM players ORDER BY id ASC")
	if err != nil {
		return err
	}
	defer rows.Close()

	type update struct {
		id   int64
		code string
	}
	inUse := make(map[string]struct{})
	var updates []update

	for rows.Next() {
		var id int64
		var stored sql.NullString
		if err := rows.Scan(&id, &stored); err != nil {
			return err
		}

		code := codes.Normalize(stored.String)
		if _, claimed := inUse[code]; code == "" || claimed {
			code, err = allocator.Allocate(inUse)
			if err != nil {
				return err
			}
		} else {
			inUse[code] = struct{}{}
		}

		if !stored.Valid || stored.String != code {
			updates = append(updates, update{id: id, code: code})
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if len(updates) > 0 {
		log.Info("Backfilling player codes", "count", len(updates))
		tx, err := db.Begin()
		if err != nil {
			return err
		}
		stmt, err := tx.Prepare("UPDATE players SET code = ? WHERE id = ?")
		if err != nil {
			tx.Rollback()
			return err
		}
		defer stmt.Close()
		for _, u := range updates {
			if _, err := stmt.Exec(u.code, u.id); err != nil {
				tx.Rollback()
				return err
			}
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}

	_, err = db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_players_code ON players(code)")
	return err
}

func columnExists(db *sql.DB, table, column string) (bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var cid int
		var name, colType string
		var notNull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
