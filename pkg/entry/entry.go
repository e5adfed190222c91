package entry

import (
	"fmt"
	"time"
)

// Entry is one recorded (or in-progress) activity interval. The short JSON
// keys are the persisted wire shape shared with the store.
type Entry struct {
	Start       Boundary `json:"s"`
	End         Boundary `json:"e"`
	Sector      string   `json:"c"`
	Project     string   `json:"t"`
	Description string   `json:"d"`
}

// New creates an in-progress entry starting at the given boundary.
func New(sector, project, description string, start Boundary) *Entry {
	return &Entry{
		Start:       start,
		End:         Open(),
		Sector:      sector,
		Project:     project,
		Description: description,
	}
}

// Running reports whether the entry has not been ended yet.
func (e *Entry) Running() bool {
	return e.End.IsOpen()
}

// Clone returns a copy of the entry.
func (e *Entry) Clone() *Entry {
	cp := *e
	return &cp
}

// Duration returns the span covered by the entry, measuring in-progress
// entries up to now. Entries with invalid boundaries report zero.
func (e *Entry) Duration(now time.Time) time.Duration {
	if !e.Start.IsValid() || e.Start.IsOpen() {
		return 0
	}
	end := now
	if !e.End.IsOpen() {
		if !e.End.IsValid() {
			return 0
		}
		end = e.End.Time()
	}
	d := end.Sub(e.Start.Time())
	if d < 0 {
		return 0
	}
	return d
}

// Label renders the sector/project pair for notifications.
func (e *Entry) Label() string {
	switch {
	case e.Sector == "" && e.Project == "":
		return "(unlabeled)"
	case e.Project == "":
		return e.Sector
	default:
		return fmt.Sprintf("%s/%s", e.Sector, e.Project)
	}
}
