// Package command parses free-form input lines into structured commands.
package command

import (
	"errors"
	"strings"
	"unicode"
)

// ErrUnknownOperation is returned when the first token of an input line does
// not match any registered operation alias. Callers treat it as silence; the
// variant exists so rejection is observable in tests.
var ErrUnknownOperation = errors.New("command: unknown operation")

// Command is a parsed instruction: a canonical operation plus the ordered
// quoted arguments that followed it. Args are uncoerced strings.
type Command struct {
	Op   Op
	Name string
	Args []string
}

// Parse turns a raw input line into a Command. The first whitespace-delimited
// token is lower-cased and resolved through the operation registry; anything
// unrecognized rejects the whole line. The remainder is scanned rune by rune:
// a double quote toggles argument mode, runes inside quotes accumulate, each
// closing quote commits one argument, and everything outside quotes is
// discarded. A dangling unterminated quote drops its partial argument.
func Parse(raw string) (*Command, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrUnknownOperation
	}

	name, rest := trimmed, ""
	if i := strings.IndexFunc(trimmed, unicode.IsSpace); i >= 0 {
		name, rest = trimmed[:i], trimmed[i:]
	}
	name = strings.ToLower(name)

	op, ok := OpForAlias(name)
	if !ok {
		return nil, ErrUnknownOperation
	}

	return &Command{Op: op, Name: name, Args: scanArgs(rest)}, nil
}

func scanArgs(s string) []string {
	args := []string{}
	var buf strings.Builder
	quoted := false
	for _, r := range s {
		if r == '"' {
			if quoted {
				args = append(args, buf.String())
				buf.Reset()
			}
			quoted = !quoted
			continue
		}
		if quoted {
			buf.WriteRune(r)
		}
	}
	return args
}

// String reconstructs the canonical textual form of the command. Arguments
// can never contain a double quote, so re-parsing the result yields an equal
// Command.
func (c *Command) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	for _, a := range c.Args {
		b.WriteString(` "`)
		b.WriteString(a)
		b.WriteString(`"`)
	}
	return b.String()
}
