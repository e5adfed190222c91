package timeutil

import (
	"fmt"
	"strings"
	"time"
)

var userLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseUserText parses a user-typed date/time string. Full dates are taken
// as written; a bare clock time ("15:04") is placed on ref's date. The result
// is normalized to UTC.
func ParseUserText(input string, ref time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty time string")
	}

	for _, layout := range userLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UTC(), nil
		}
	}

	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, trimmed); err == nil {
			local := ref.Local()
			t = time.Date(local.Year(), local.Month(), local.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, local.Location())
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time %q", trimmed)
}
