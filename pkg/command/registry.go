package command

import "strings"

// Op is a canonical operation kind.
type Op int

const (
	OpUnknown Op = iota
	OpStart
	OpStop
	OpResume
	OpAdd
	OpEdit
	OpDelete
	OpSet
	OpImport
	OpExport
	OpRename
	OpInvert
)

// Spec describes one operation: its canonical noun, the literal aliases it
// accepts on the command line, and a short help line.
type Spec struct {
	Op      Op
	Noun    string
	Aliases []string
	Help    string
}

// Registry returns the operation table. "continue" belongs to resume, not
// add; add only accepts "add" and "new".
func Registry() []Spec {
	return []Spec{
		{Op: OpStart, Noun: "start", Aliases: []string{"start", "begin"},
			Help: `start "sector" "project" "description"`},
		{Op: OpStop, Noun: "stop", Aliases: []string{"stop", "end", "pause"},
			Help: "stop the running entry"},
		{Op: OpResume, Noun: "resume", Aliases: []string{"resume", "continue"},
			Help: "restart the most recent entry"},
		{Op: OpAdd, Noun: "add", Aliases: []string{"add", "new"},
			Help: `add "sector" "project" "description" "start" "end"`},
		{Op: OpEdit, Noun: "edit", Aliases: []string{"edit"},
			Help: `edit "row" "attr" "value"`},
		{Op: OpDelete, Noun: "delete", Aliases: []string{"delete"},
			Help: `delete "row"`},
		{Op: OpSet, Noun: "set", Aliases: []string{"set"},
			Help: `set "attr" "value"`},
		{Op: OpImport, Noun: "import", Aliases: []string{"import"},
			Help: "import the log from a file"},
		{Op: OpExport, Noun: "export", Aliases: []string{"export"},
			Help: "export the log to a file"},
		{Op: OpRename, Noun: "rename", Aliases: []string{"rename"},
			Help: `rename "sector|project" "old" "new"`},
		{Op: OpInvert, Noun: "invert", Aliases: []string{"invert"},
			Help: "swap the palette colours"},
	}
}

var aliasIndex = func() map[string]Op {
	idx := make(map[string]Op)
	for _, s := range Registry() {
		for _, a := range s.Aliases {
			idx[a] = s.Op
		}
	}
	return idx
}()

// OpForAlias resolves a lower-cased token against the alias table.
func OpForAlias(token string) (Op, bool) {
	op, ok := aliasIndex[strings.ToLower(token)]
	return op, ok
}

func (o Op) String() string {
	for _, s := range Registry() {
		if s.Op == o {
			return s.Noun
		}
	}
	return "unknown"
}
