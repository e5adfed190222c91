package tracker

import (
	"strconv"
	"strings"

	"tableflip.dev/punch/pkg/command"
)

// Outcome classifies what an operation did. User-facing behavior stays
// silent for rejected and ignored operations; the variants exist so callers
// and tests can observe the distinction.
type Outcome int

const (
	// OutcomeRejected means the command never reached an operation.
	OutcomeRejected Outcome = iota
	// OutcomeIgnored means the operation declined to act (invariant held,
	// index out of range, unknown attribute).
	OutcomeIgnored
	// OutcomeNotFound means a lookup matched nothing; the user was told.
	OutcomeNotFound
	// OutcomeApplied means the log or configuration was mutated.
	OutcomeApplied
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeIgnored:
		return "ignored"
	case OutcomeNotFound:
		return "not found"
	default:
		return "rejected"
	}
}

// Field tags one editable attribute of a log entry.
type Field int

const (
	FieldNone Field = iota
	FieldSector
	FieldProject
	FieldDescription
	FieldStart
	FieldEnd
)

var fieldAliases = map[string]Field{
	"sector":      FieldSector,
	"sec":         FieldSector,
	"c":           FieldSector,
	"project":     FieldProject,
	"title":       FieldProject,
	"t":           FieldProject,
	"description": FieldDescription,
	"desc":        FieldDescription,
	"d":           FieldDescription,
	"start":       FieldStart,
	"s":           FieldStart,
	"end":         FieldEnd,
	"e":           FieldEnd,
}

// FieldForAlias resolves an attribute name to its field tag, FieldNone when
// unknown.
func FieldForAlias(attr string) Field {
	return fieldAliases[strings.ToLower(strings.TrimSpace(attr))]
}

func (f Field) String() string {
	switch f {
	case FieldSector:
		return "sector"
	case FieldProject:
		return "project"
	case FieldDescription:
		return "description"
	case FieldStart:
		return "start"
	case FieldEnd:
		return "end"
	default:
		return "none"
	}
}

// Apply routes a parsed command to its operation, binding arguments
// positionally. Missing trailing arguments bind as empty strings; extras are
// ignored. Row numbers are 1-based on the way in and non-numeric input maps
// to an index no operation accepts.
func (t *Tracker) Apply(cmd *command.Command) Outcome {
	if cmd == nil {
		return OutcomeRejected
	}

	arg := func(i int) string {
		if i < len(cmd.Args) {
			return cmd.Args[i]
		}
		return ""
	}

	switch cmd.Op {
	case command.OpStart:
		return t.Start(arg(0), arg(1), arg(2))
	case command.OpStop:
		return t.Stop()
	case command.OpResume:
		return t.Resume()
	case command.OpAdd:
		return t.Add(arg(0), arg(1), arg(2), arg(3), arg(4))
	case command.OpEdit:
		return t.Edit(rowIndex(arg(0)), strings.ToLower(arg(1)), arg(2))
	case command.OpDelete:
		return t.Delete(rowIndex(arg(0)))
	case command.OpSet:
		return t.Set(strings.ToLower(arg(0)), arg(1))
	case command.OpRename:
		return t.Rename(arg(0), arg(1), arg(2))
	case command.OpInvert:
		return t.Invert()
	case command.OpImport:
		return t.Import()
	case command.OpExport:
		return t.Export()
	}
	return OutcomeRejected
}

func rowIndex(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return -1
	}
	return n - 1
}
