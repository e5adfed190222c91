package entry

import (
	"encoding/json"
	"fmt"
	"time"
)

// Boundary is one edge of a recorded interval: either a concrete instant or
// Open, meaning the interval has not ended yet. The zero Boundary is a
// closed-but-invalid marker, produced when user-supplied time text did not
// parse; callers decide how to recover.
type Boundary struct {
	at   time.Time
	open bool
}

// Open returns the boundary of an interval that is still in progress.
func Open() Boundary {
	return Boundary{open: true}
}

// At returns a closed boundary at the given instant.
func At(t time.Time) Boundary {
	return Boundary{at: t.UTC()}
}

// IsOpen reports whether the boundary marks an in-progress interval.
func (b Boundary) IsOpen() bool {
	return b.open
}

// IsValid reports whether the boundary carries a usable instant or is Open.
func (b Boundary) IsValid() bool {
	return b.open || !b.at.IsZero()
}

// Time returns the boundary instant. It is the zero time for Open or
// invalid boundaries.
func (b Boundary) Time() time.Time {
	if b.open {
		return time.Time{}
	}
	return b.at
}

// Equal reports whether two boundaries are the same edge.
func (b Boundary) Equal(other Boundary) bool {
	if b.open || other.open {
		return b.open == other.open
	}
	return b.at.Equal(other.at)
}

func (b Boundary) String() string {
	if b.open {
		return ""
	}
	return b.at.UTC().Format(time.RFC3339)
}

// MarshalJSON encodes a closed boundary as an RFC3339 string and Open as the
// empty string, which no valid instant encodes to.
func (b Boundary) MarshalJSON() ([]byte, error) {
	if b.open {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", b.String())), nil
}

func (b *Boundary) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*b = Open()
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return err
	}
	*b = At(t)
	return nil
}
