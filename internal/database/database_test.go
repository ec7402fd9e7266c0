package database

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suarezvoley/checkin/internal/codes"
	"github.com/suarezvoley/checkin/internal/random"
)

func newTestAllocator() *codes.Allocator {
	return codes.New(random.New())
}

func TestInitDB_CreatesTables(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "", newTestAllocator())
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	for _, table := range []string{"players", "attendance"} {
		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "querying for %s table should not produce an error", table)
		assert.Equal(t, table, name)
	}

	var index string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='index' AND name='idx_players_code'").Scan(&index)
	require.NoError(t, err)
	assert.Equal(t, "idx_players_code", index)
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "", newTestAllocator())
	require.NoError(t, err)
	defer teardown()

	_, err = db.Exec("INSERT INTO players (name, age, tenure, code) VALUES ('Ana', 22, 6, '1234')")
	require.NoError(t, err)

	// Running the full schema setup again must not disturb valid codes.
	require.NoError(t, ensureSchema(db, newTestAllocator()))

	var code string
	require.NoError(t, db.QueryRow("SELECT code FROM players WHERE name = 'Ana'").Scan(&code))
	assert.Equal(t, "1234", code)

	var columns int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM pragma_table_info('players') WHERE name = 'code'").Scan(&columns))
	assert.Equal(t, 1, columns, "code column should not be duplicated")
}

// legacyDB builds a players table the way the pre-code revision of the
// schema looked, without going through migrations.
func legacyDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE players (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		age INTEGER NOT NULL CHECK(age > 0 AND age <= 120),
		tenure INTEGER NOT NULL CHECK(tenure >= 0 AND tenure <= 80)
	)`)
	require.NoError(t, err)
	return db
}

func TestBackfillCodes_AddsColumnAndFillsLegacyRows(t *testing.T) {
	db := legacyDB(t)

	_, err := db.Exec(`INSERT INTO players (name, age, tenure) VALUES
		('Ana', 22, 6), ('Luis', 30, 12), ('Carla', 19, 0)`)
	require.NoError(t, err)

	require.NoError(t, backfillCodes(db, newTestAllocator()))

	rows, err := db.Query("SELECT code FROM players ORDER BY id ASC")
	require.NoError(t, err)
	defer rows.Close()

	seen := map[string]bool{}
	for rows.Next() {
		var code string
		require.NoError(t, rows.Scan(&code))
		assert.Regexp(t, `^\d{4}$`, code)
		assert.False(t, seen[code], "codes must be unique")
		seen[code] = true
	}
	require.NoError(t, rows.Err())
	assert.Len(t, seen, 3)
}

func TestBackfillCodes_NormalizesAndResolvesDuplicates(t *testing.T) {
	db := legacyDB(t)
	_, err := db.Exec("ALTER TABLE players ADD COLUMN code TEXT")
	require.NoError(t, err)

	// Row 1 keeps its short numeric code (padded); row 2 carries junk;
	// rows 3 and 4 collide so the later one must be reassigned.
	_, err = db.Exec(`INSERT INTO players (name, age, tenure, code) VALUES
		('Ana', 22, 6, ' 7 '),
		('Luis', 30, 12, 'abcd'),
		('Carla', 19, 0, '5555'),
		('Diego', 27, 3, '5555')`)
	require.NoError(t, err)

	require.NoError(t, backfillCodes(db, newTestAllocator()))

	var code string
	require.NoError(t, db.QueryRow("SELECT code FROM players WHERE name = 'Ana'").Scan(&code))
	assert.Equal(t, "0007", code)

	require.NoError(t, db.QueryRow("SELECT code FROM players WHERE name = 'Luis'").Scan(&code))
	assert.Regexp(t, `^\d{4}$`, code)

	require.NoError(t, db.QueryRow("SELECT code FROM players WHERE name = 'Carla'").Scan(&code))
	assert.Equal(t, "5555", code, "earliest owner of a duplicated code keeps it")

	require.NoError(t, db.QueryRow("SELECT code FROM players WHERE name = 'Diego'").Scan(&code))
	assert.NotEqual(t, "5555", code)
	assert.Regexp(t, `^\d{4}$`, code)
}
