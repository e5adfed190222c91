package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/punch/pkg/entry"
)

func TestPersistenceWatchEmitsLogChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(&Config{Path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	e := entry.New("work", "site", "hello", entry.At(time.Now()))
	if err := p.Append(e); err != nil {
		t.Fatalf("append entry: %v", err)
	}

	select {
	case evt := <-ch:
		if evt.Type != EventLogChanged {
			t.Fatalf("unexpected event type: %v", evt.Type)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for log change event")
	}
}

func TestPersistenceWatchClosesOnCancel(t *testing.T) {
	base := t.TempDir()
	p, err := Load(&Config{Path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for channel close")
		}
	}
}
