package store

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/punch/pkg/entry"
)

func sampleLog() []*entry.Entry {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	closed := entry.New("work", "site", "build feature", entry.At(start))
	closed.End = entry.At(start.Add(90 * time.Minute))
	open := entry.New("home", "chores", "laundry", entry.At(start.Add(2*time.Hour)))
	return []*entry.Entry{closed, open}
}

func TestJSONExportImportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	original := sampleLog()

	if err := ExportJSON(original, path); err != nil {
		t.Fatalf("export: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if len(got) != len(original) {
		t.Fatalf("expected %d entries, got %d", len(original), len(got))
	}
	for i := range original {
		if got[i].Description != original[i].Description {
			t.Fatalf("position %d: %q vs %q", i, got[i].Description, original[i].Description)
		}
		if !got[i].Start.Equal(original[i].Start) || !got[i].End.Equal(original[i].End) {
			t.Fatalf("position %d: boundaries differ", i)
		}
	}
	if !got[1].End.IsOpen() {
		t.Fatalf("open entry lost in round trip")
	}
}

func TestCSVExportMarksRunningEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")

	if err := ExportCSV(sampleLog(), path); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus two rows, got %d", len(rows))
	}
	if rows[2][4] != "running" {
		t.Fatalf("expected running marker, got %q", rows[2][4])
	}
}

func TestExportPicksFormatByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "out.json")
	if err := Export(sampleLog(), jsonPath); err != nil {
		t.Fatalf("json export: %v", err)
	}
	if _, err := ImportJSON(jsonPath); err != nil {
		t.Fatalf("json path did not produce json: %v", err)
	}

	csvPath := filepath.Join(dir, "out.CSV")
	if err := Export(sampleLog(), csvPath); err != nil {
		t.Fatalf("csv export: %v", err)
	}
	data, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) == 0 || data[0] == '[' {
		t.Fatalf("expected csv content, got %q", data[:1])
	}
}
