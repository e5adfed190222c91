package entry

import (
	"encoding/json"
	"testing"
	"time"
)

func TestBoundaryJSONRoundTrip(t *testing.T) {
	e := New("work", "site", "build feature", At(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)))

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded := &Entry{}
	if err := json.Unmarshal(data, decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Start.Equal(e.Start) {
		t.Fatalf("start mismatch: %v vs %v", decoded.Start, e.Start)
	}
	if !decoded.End.IsOpen() {
		t.Fatalf("open end did not survive round trip")
	}
	if decoded.Sector != "work" || decoded.Project != "site" || decoded.Description != "build feature" {
		t.Fatalf("labels mismatch: %#v", decoded)
	}
}

func TestBoundaryWireKeys(t *testing.T) {
	e := New("work", "site", "x", At(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)))
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var wire map[string]string
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("unmarshal wire: %v", err)
	}
	if wire["s"] != "2024-03-01T09:00:00Z" {
		t.Fatalf("unexpected start encoding: %q", wire["s"])
	}
	if wire["e"] != "" {
		t.Fatalf("open sentinel must encode as empty string, got %q", wire["e"])
	}
	if wire["c"] != "work" || wire["t"] != "site" || wire["d"] != "x" {
		t.Fatalf("unexpected label keys: %#v", wire)
	}
}

func TestOpenDistinguishableFromInstants(t *testing.T) {
	if Open().Equal(At(time.Now())) {
		t.Fatalf("open boundary equals a concrete instant")
	}
	if !Open().Equal(Open()) {
		t.Fatalf("open boundaries must compare equal")
	}
	if Open().IsValid() != true {
		t.Fatalf("open is a valid boundary")
	}
	var invalid Boundary
	if invalid.IsValid() {
		t.Fatalf("zero boundary should be the invalid marker")
	}
}

func TestDuration(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	now := start.Add(2 * time.Hour)

	closed := New("w", "p", "d", At(start))
	closed.End = At(start.Add(time.Hour))
	if got := closed.Duration(now); got != time.Hour {
		t.Fatalf("expected 1h, got %v", got)
	}

	open := New("w", "p", "d", At(start))
	if got := open.Duration(now); got != 2*time.Hour {
		t.Fatalf("expected 2h to now, got %v", got)
	}

	var invalid Entry
	if got := invalid.Duration(now); got != 0 {
		t.Fatalf("expected zero for invalid boundaries, got %v", got)
	}
}
