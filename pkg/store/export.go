package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tableflip.dev/punch/pkg/entry"
	"tableflip.dev/punch/pkg/timeutil"
)

// ExportJSON writes the log to path as a JSON array of wire-shaped records.
func ExportJSON(entries []*entry.Entry, path string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode export: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("store: write export: %w", err)
	}
	return nil
}

// ImportJSON reads a JSON export back into an ordered log.
func ImportJSON(path string) ([]*entry.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("store: read import: %w", err)
	}
	var entries []*entry.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("store: decode import: %w", err)
	}
	out := entries[:0]
	for _, e := range entries {
		if e != nil {
			out = append(out, e)
		}
	}
	return out, nil
}

// ExportCSV writes the log to path as a spreadsheet-friendly table.
func ExportCSV(entries []*entry.Entry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Sector", "Project", "Description", "Start", "End", "Duration"}); err != nil {
		return err
	}

	now := time.Now()
	for _, e := range entries {
		if e == nil {
			continue
		}
		end := e.End.String()
		if e.End.IsOpen() {
			end = "running"
		}
		row := []string{
			e.Sector,
			e.Project,
			e.Description,
			e.Start.String(),
			end,
			timeutil.FormatClock(e.Duration(now)),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// Export writes entries to path, picking the format from the file extension.
// Anything that is not .csv exports as JSON.
func Export(entries []*entry.Entry, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ExportCSV(entries, path)
	}
	return ExportJSON(entries, path)
}
