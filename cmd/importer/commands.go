package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

const maxSeedPlayers = 300

func init() {
	rootCmd.AddCommand(manualCmd)
	rootCmd.AddCommand(csvCmd)
	rootCmd.AddCommand(xlsxCmd)
	rootCmd.AddCommand(checkinsCmd)
	rootCmd.AddCommand(seedCmd)
}

var manualCmd = &cobra.Command{
	Use:   "manual",
	Short: "Read 'name,age,tenure' lines from stdin until a blank line",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Enter one player per line as 'name,age,tenure'. Blank line finishes.")

		var tally importTally
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				break
			}
			tally.record(line, importPlayerRow(strings.Split(line, ",")))
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		tally.report()
		return nil
	},
}

var csvCmd = &cobra.Command{
	Use:   "csv <file>",
	Short: "Import players from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open CSV file: %w", err)
		}
		defer f.Close()

		reader := csv.NewReader(f)
		reader.FieldsPerRecord = -1
		records, err := reader.ReadAll()
		if err != nil {
			return fmt.Errorf("failed to parse CSV file: %w", err)
		}

		var tally importTally
		for i, record := range records {
			if i == 0 && isHeaderRow(record) {
				continue
			}
			tally.record(strings.Join(record, ","), importPlayerRow(record))
		}

		tally.report()
		return nil
	},
}

var xlsxCmd = &cobra.Command{
	Use:   "xlsx <file>",
	Short: "Import players from the 'Players' sheet of an XLSX file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := sheetRows(args[0], "Players")
		if err != nil {
			return err
		}

		var tally importTally
		for i, row := range rows {
			if i == 0 && isHeaderRow(row) {
				continue
			}
			// Sheets exported by the server carry ID/Name/Age/Tenure/Code;
			// hand-made ones just name/age/tenure.
			if len(row) >= 5 {
				row = row[1:4]
			}
			tally.record(strings.Join(row, ","), importPlayerRow(row))
		}

		tally.report()
		return nil
	},
}

var checkinsCmd = &cobra.Command{
	Use:   "checkins <file>",
	Short: "Replay check-ins from the codes in the 'Attendance' sheet of an XLSX file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := sheetRows(args[0], "Attendance")
		if err != nil {
			return err
		}

		var tally importTally
		for i, row := range rows {
			if i == 0 && isHeaderRow(row) {
				continue
			}
			// Attendance rows are ID, Player, Code, Date, Time.
			if len(row) < 3 {
				tally.record(strings.Join(row, ","), fmt.Errorf("row has no code column"))
				continue
			}
			tally.record(row[2], postCheckIn(row[2]))
		}

		tally.report()
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed <n>",
	Short: fmt.Sprintf("Register n random test players (capped at %d)", maxSeedPlayers),
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("n must be a positive number")
		}
		if n > maxSeedPlayers {
			log.Warn("Capping seed count", "requested", n, "cap", maxSeedPlayers)
			n = maxSeedPlayers
		}

		var tally importTally
		for i := 0; i < n; i++ {
			name := "Test Player " + uuid.NewString()[:8]
			err := postPlayer(name, 18+rand.Intn(40), rand.Intn(10))
			tally.record(name, err)
		}

		tally.report()
		return nil
	},
}

// importPlayerRow registers one name/age/tenure record against the server.
func importPlayerRow(fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("expected 3 fields (name,age,tenure), got %d", len(fields))
	}
	name := strings.TrimSpace(fields[0])
	age, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return fmt.Errorf("age must be a number: %w", err)
	}
	tenure, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return fmt.Errorf("tenure must be a number: %w", err)
	}
	return postPlayer(name, age, tenure)
}

// isHeaderRow tolerates Spanish and English column titles.
func isHeaderRow(fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(fields[0])) {
	case "id", "name", "nombre", "code", "codigo":
		return true
	}
	return false
}

type importTally struct {
	ok     int
	failed int
}

func (t *importTally) record(label string, err error) {
	if err != nil {
		t.failed++
		log.Error("ERROR", "row", label, "error", err)
		return
	}
	t.ok++
	log.Info("OK", "row", label)
}

func (t *importTally) report() {
	log.Info("Import finished", "ok", t.ok, "failed", t.failed)
}

func sheetRows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}
