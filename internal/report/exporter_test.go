package report_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/suarezvoley/checkin/internal/club"
	"github.com/suarezvoley/checkin/internal/codes"
	"github.com/suarezvoley/checkin/internal/database"
	"github.com/suarezvoley/checkin/internal/metrics"
	"github.com/suarezvoley/checkin/internal/random"
	"github.com/suarezvoley/checkin/internal/report"
)

func TestXLSXExporter_Refresh(t *testing.T) {
	allocator := codes.New(random.New())
	db, teardown, err := database.InitDB(":memory:", "", "", allocator)
	require.NoError(t, err)
	defer teardown()

	store := club.New(db, allocator)
	ana, err := store.CreatePlayer("Ana", 22, 6)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO attendance (player_id, date, time) VALUES (?, '2026-03-14', '18:30')", ana.ID)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.xlsx")
	exporter := report.NewXLSX(db, path)
	require.NoError(t, exporter.Refresh())

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Players", "Attendance"}, f.GetSheetList())

	players, err := f.GetRows("Players")
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, []string{"ID", "Name", "Age", "Tenure", "Code"}, players[0])
	assert.Equal(t, "Ana", players[1][1])
	assert.Equal(t, ana.Code, players[1][4])

	records, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"ID", "Player", "Code", "Date", "Time"}, records[0])
	assert.Equal(t, "Ana", records[1][1])
	assert.Equal(t, "2026-03-14", records[1][3])
}

func TestXLSXExporter_RefreshOverwrites(t *testing.T) {
	allocator := codes.New(random.New())
	db, teardown, err := database.InitDB(":memory:", "", "", allocator)
	require.NoError(t, err)
	defer teardown()

	store := club.New(db, allocator)
	path := filepath.Join(t.TempDir(), "report.xlsx")
	exporter := report.NewXLSX(db, path)

	require.NoError(t, exporter.Refresh())

	_, err = store.CreatePlayer("Luis", 30, 12)
	require.NoError(t, err)
	require.NoError(t, exporter.Refresh())

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	players, err := f.GetRows("Players")
	require.NoError(t, err)
	assert.Len(t, players, 2, "header plus one player after regeneration")
}

func TestSafe_SwallowsFailures(t *testing.T) {
	mock := report.NewMock()
	mock.RefreshFunc = func() error { return errors.New("file locked") }
	m := metrics.NewMock()

	safe := report.NewSafe(mock, m)
	safe.Refresh()
	safe.Refresh()

	assert.Equal(t, 2, mock.Calls())
	assert.Equal(t, 2, m.ExportFailureCount)
}
