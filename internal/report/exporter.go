package report

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/xuri/excelize/v2"
)

// Exporter snapshots the store into a spreadsheet artifact consumed by
// humans outside the API.
type Exporter interface {
	// Refresh regenerates the artifact from the current store contents.
	Refresh() error
	// Path returns the location of the artifact.
	Path() string
}

const (
	playersSheet    = "Players"
	attendanceSheet = "Attendance"
)

// XLSXExporter writes two labeled sheets (Players, Attendance) to an
// xlsx file. The file may be open in Excel at any time, so writes can
// fail; callers are expected to treat that as best-effort (see Safe).
type XLSXExporter struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

var _ Exporter = (*XLSXExporter)(nil)

// NewXLSX creates an exporter writing to the given path.
func NewXLSX(db *sql.DB, path string) *XLSXExporter {
	return &XLSXExporter{db: db, path: path}
}

func (e *XLSXExporter) Path() string {
	return e.path
}

func (e *XLSXExporter) Refresh() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes Players so the workbook has exactly
	// the two labeled tables.
	if err := f.SetSheetName("Sheet1", playersSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(attendanceSheet); err != nil {
		return err
	}

	if err := e.writePlayers(f); err != nil {
		return fmt.Errorf("failed to write players sheet: %w", err)
	}
	if err := e.writeAttendance(f); err != nil {
		return fmt.Errorf("failed to write attendance sheet: %w", err)
	}

	if err := f.SaveAs(e.path); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

func (e *XLSXExporter) writePlayers(f *excelize.File) error {
	if err := f.SetSheetRow(playersSheet, "A1", &[]any{"ID", "Name", "Age", "Tenure", "Code"}); err != nil {
		return err
	}

	rows, err := e.db.Query("SELECT id, name, age, tenure, code FROM players ORDER BY id ASC")
	if err != nil {
		return err
	}
	defer rows.Close()

	line := 2
	for rows.Next() {
		var id int64
		var age, tenure int
		var name string
		var code sql.NullString
		if err := rows.Scan(&id, &name, &age, &tenure, &code); err != nil {
			return err
		}
		cell := fmt.Sprintf("A%d", line)
		if err := f.SetSheetRow(playersSheet, cell, &[]any{id, name, age, tenure, code.String}); err != nil {
			return err
		}
		line++
	}
	return rows.Err()
}

func (e *XLSXExporter) writeAttendance(f *excelize.File) error {
	if err := f.SetSheetRow(attendanceSheet, "A1", &[]any{"ID", "Player", "Code", "Date", "Time"}); err != nil {
		return err
	}

	rows, err := e.db.Query(`
		SELECT a.id, p.name, p.code, a.date, a.time
		FROM attendance a
		JOIN players p ON a.player_id = p.id
		ORDER BY a.date DESC, a.time DESC
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	line := 2
	for rows.Next() {
		var id int64
		var name, date, at string
		var code sql.NullString
		if err := rows.Scan(&id, &name, &code, &date, &at); err != nil {
			return err
		}
		cell := fmt.Sprintf("A%d", line)
		if err := f.SetSheetRow(attendanceSheet, cell, &[]any{id, name, code.String, date, at}); err != nil {
			return err
		}
		line++
	}
	return rows.Err()
}
