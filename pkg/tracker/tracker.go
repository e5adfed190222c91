// Package tracker owns the ordered activity log and the mutations that
// preserve its single-open-entry invariant.
package tracker

import (
	"fmt"
	"time"

	"tableflip.dev/punch/pkg/entry"
	"tableflip.dev/punch/pkg/timeutil"
)

// Notifier receives user-facing messages. Fire and forget.
type Notifier interface {
	Notify(message string)
}

// Palette is the pair of display colours the invert and set operations
// mutate. Implemented by the store config.
type Palette interface {
	Invert()
	Set(attr, value string) bool
}

// Tracker applies operations to the log. At most one entry is running at any
// time, and if one exists it is always the last entry appended. Collaborator
// fields are optional; nil hooks are skipped.
type Tracker struct {
	Entries []*entry.Entry

	Now         func() time.Time
	Notifier    Notifier
	OnChange    func()
	CancelClock func()
	Palette     Palette

	ImportFunc func() ([]*entry.Entry, error)
	ExportFunc func(entries []*entry.Entry) error
}

func (t *Tracker) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

func (t *Tracker) notifyf(format string, args ...interface{}) {
	if t.Notifier != nil {
		t.Notifier.Notify(fmt.Sprintf(format, args...))
	}
}

func (t *Tracker) changed() {
	if t.OnChange != nil {
		t.OnChange()
	}
}

// Running returns the in-progress entry, or nil. Only the last entry is ever
// inspected.
func (t *Tracker) Running() *entry.Entry {
	if len(t.Entries) == 0 {
		return nil
	}
	if last := t.Entries[len(t.Entries)-1]; last.Running() {
		return last
	}
	return nil
}

// Start appends a new in-progress entry unless one is already running.
func (t *Tracker) Start(sector, project, description string) Outcome {
	if t.Running() != nil {
		return OutcomeIgnored
	}
	e := entry.New(sector, project, description, entry.At(t.now()))
	t.Entries = append(t.Entries, e)
	t.notifyf("started %s", e.Label())
	t.changed()
	return OutcomeApplied
}

// Stop closes the running entry and cancels the ticking clock.
func (t *Tracker) Stop() Outcome {
	e := t.Running()
	if e == nil {
		return OutcomeIgnored
	}
	now := t.now()
	e.End = entry.At(now)
	if t.CancelClock != nil {
		t.CancelClock()
	}
	t.notifyf("stopped %s after %s", e.Label(), timeutil.FormatClock(e.Duration(now)))
	t.changed()
	return OutcomeApplied
}

// Resume appends a fresh in-progress copy of the most recent entry's labels.
// The referenced entry is not mutated.
func (t *Tracker) Resume() Outcome {
	if len(t.Entries) == 0 || t.Running() != nil {
		return OutcomeIgnored
	}
	last := t.Entries[len(t.Entries)-1]
	e := entry.New(last.Sector, last.Project, last.Description, entry.At(t.now()))
	t.Entries = append(t.Entries, e)
	t.notifyf("resumed %s", e.Label())
	t.changed()
	return OutcomeApplied
}

// Add appends a manual entry with boundaries parsed from user text. Manual
// entries may be historical or overlap closed ones. An empty end keeps the
// new entry open only while nothing else is running, so the log never holds
// two open entries; otherwise, and for unparsable text, the end is stored as
// an invalid boundary for the caller to repair with edit.
func (t *Tracker) Add(sector, project, description, startText, endText string) Outcome {
	e := entry.New(sector, project, description, t.parseBoundary(startText))
	if endText != "" || t.Running() != nil {
		e.End = t.parseBoundary(endText)
	}
	t.Entries = append(t.Entries, e)
	t.notifyf("added %s", e.Label())
	t.changed()
	return OutcomeApplied
}

func (t *Tracker) parseBoundary(text string) entry.Boundary {
	at, err := timeutil.ParseUserText(text, t.now())
	if err != nil {
		return entry.Boundary{}
	}
	return entry.At(at)
}

// Edit overwrites one field of the entry at index. Unknown attributes and
// out-of-range indices are no-ops.
func (t *Tracker) Edit(index int, attr, value string) Outcome {
	if index < 0 || index >= len(t.Entries) {
		return OutcomeIgnored
	}
	e := t.Entries[index]
	switch FieldForAlias(attr) {
	case FieldSector:
		e.Sector = value
	case FieldProject:
		e.Project = value
	case FieldDescription:
		e.Description = value
	case FieldStart:
		e.Start = t.parseBoundary(value)
	case FieldEnd:
		e.End = t.parseBoundary(value)
	default:
		return OutcomeIgnored
	}
	t.notifyf("edited entry %d", index+1)
	t.changed()
	return OutcomeApplied
}

// Delete removes the entry at index. Out-of-range indices are no-ops.
func (t *Tracker) Delete(index int) Outcome {
	if index < 0 || index >= len(t.Entries) {
		return OutcomeIgnored
	}
	t.Entries = append(t.Entries[:index], t.Entries[index+1:]...)
	t.notifyf("deleted entry %d", index+1)
	t.changed()
	return OutcomeApplied
}

// Rename rewrites the sector or project label on every entry matching
// oldName. A category other than sector/project is ignored; zero matches
// notify without mutating.
func (t *Tracker) Rename(category, oldName, newName string) Outcome {
	field := FieldForAlias(category)
	if field != FieldSector && field != FieldProject {
		return OutcomeIgnored
	}

	matched := 0
	for _, e := range t.Entries {
		switch {
		case field == FieldSector && e.Sector == oldName:
			e.Sector = newName
			matched++
		case field == FieldProject && e.Project == oldName:
			e.Project = newName
			matched++
		}
	}
	if matched == 0 {
		t.notifyf("no %s named %q", field, oldName)
		return OutcomeNotFound
	}
	t.notifyf("renamed %s %q to %q (%d entries)", field, oldName, newName, matched)
	t.changed()
	return OutcomeApplied
}

// Invert swaps the palette background and foreground colours.
func (t *Tracker) Invert() Outcome {
	if t.Palette == nil {
		return OutcomeIgnored
	}
	t.Palette.Invert()
	t.notifyf("palette inverted")
	t.changed()
	return OutcomeApplied
}

// Set assigns one configuration attribute.
func (t *Tracker) Set(attr, value string) Outcome {
	if t.Palette == nil || !t.Palette.Set(attr, value) {
		return OutcomeIgnored
	}
	t.notifyf("set %s", attr)
	t.changed()
	return OutcomeApplied
}

// Import replaces the log with entries loaded by the import hook.
func (t *Tracker) Import() Outcome {
	if t.ImportFunc == nil {
		return OutcomeIgnored
	}
	entries, err := t.ImportFunc()
	if err != nil {
		t.notifyf("import failed: %v", err)
		return OutcomeIgnored
	}
	t.Entries = entries
	t.notifyf("imported %d entries", len(entries))
	t.changed()
	return OutcomeApplied
}

// Export hands the log to the export hook.
func (t *Tracker) Export() Outcome {
	if t.ExportFunc == nil {
		return OutcomeIgnored
	}
	if err := t.ExportFunc(t.Entries); err != nil {
		t.notifyf("export failed: %v", err)
		return OutcomeIgnored
	}
	t.notifyf("exported %d entries", len(t.Entries))
	return OutcomeApplied
}
