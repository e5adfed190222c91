// Package printers renders the log and delivers notifications on the
// terminal.
package printers

import (
	"fmt"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/punch/pkg/entry"
	"tableflip.dev/punch/pkg/timeutil"
)

// Console delivers tracker notifications to stdout.
type Console struct{}

// Notify prints a single user-facing message.
func (c *Console) Notify(message string) {
	n := color.New(color.FgHiCyan)
	_, _ = n.Println(message)
}

type PrettyPrint struct {
	ShowIndex bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Log renders the entries as a table, most recent last. Row numbers are the
// 1-based indices edit and delete accept.
func (pp *PrettyPrint) Log(now time.Time, entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.Wrap = true
	if pp.ShowIndex {
		table.AddRow("#", "SECTOR", "PROJECT", "DESCRIPTION", "START", "END", "SPENT")
	} else {
		table.AddRow("SECTOR", "PROJECT", "DESCRIPTION", "START", "END", "SPENT")
	}

	running := color.New(color.FgHiGreen, color.Italic).Sprint("running")
	for i, e := range entries {
		if e == nil {
			continue
		}
		end := e.End.String()
		if e.End.IsOpen() {
			end = running
		}
		spent := timeutil.FormatClock(e.Duration(now))
		if pp.ShowIndex {
			table.AddRow(fmt.Sprintf("%d", i+1), e.Sector, e.Project, e.Description, e.Start.String(), end, spent)
		} else {
			table.AddRow(e.Sector, e.Project, e.Description, e.Start.String(), end, spent)
		}
	}
	fmt.Println(table)
}

// Report totals time per sector/project over the given window ending now.
func (pp *PrettyPrint) Report(now time.Time, window time.Duration, entries ...*entry.Entry) {
	since := now.Add(-window)
	totals := make(map[string]time.Duration)
	for _, e := range entries {
		if e == nil || !e.Start.IsValid() {
			continue
		}
		if !e.End.IsOpen() && e.End.IsValid() && e.End.Time().Before(since) {
			continue
		}
		totals[e.Label()] += e.Duration(now)
	}

	if len(totals) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" nothing recorded\n\n")
		return
	}

	labels := make([]string, 0, len(totals))
	for label := range totals {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	table := uitable.New()
	table.AddRow("ACTIVITY", "SPENT")
	for _, label := range labels {
		table.AddRow(label, timeutil.FormatClock(totals[label]))
	}
	fmt.Println(table)
	fmt.Printf("window: %s\n", timeutil.FormatWindow(window))
}
