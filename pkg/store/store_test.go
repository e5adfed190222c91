package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"

	"tableflip.dev/punch/pkg/entry"
)

func TestAppendListPreservesOrder(t *testing.T) {
	p, err := Load(&Config{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	descriptions := []string{"one", "two", "three"}
	for i, d := range descriptions {
		e := entry.New("work", "site", d, entry.At(start.Add(time.Duration(i)*time.Hour)))
		if err := p.Append(e); err != nil {
			t.Fatalf("append %q: %v", d, err)
		}
	}

	got := p.List(context.Background())
	if len(got) != len(descriptions) {
		t.Fatalf("expected %d entries, got %d", len(descriptions), len(got))
	}
	for i, d := range descriptions {
		if got[i].Description != d {
			t.Fatalf("position %d: expected %q, got %q", i, d, got[i].Description)
		}
	}
}

func TestRewriteReplacesLog(t *testing.T) {
	p, err := Load(&Config{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	now := time.Now()
	for i := 0; i < 3; i++ {
		if err := p.Append(entry.New("old", "old", "old", entry.At(now))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	replacement := []*entry.Entry{
		entry.New("work", "site", "kept", entry.At(now)),
	}
	if err := p.Rewrite(replacement); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	got := p.List(context.Background())
	if len(got) != 1 {
		t.Fatalf("expected one entry after rewrite, got %d", len(got))
	}
	if got[0].Description != "kept" {
		t.Fatalf("unexpected entry: %#v", got[0])
	}
}

func TestOpenEntrySurvivesRoundTrip(t *testing.T) {
	p, err := Load(&Config{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if err := p.Append(entry.New("work", "site", "running", entry.At(time.Now()))); err != nil {
		t.Fatalf("append: %v", err)
	}

	got := p.List(context.Background())
	if len(got) != 1 {
		t.Fatalf("expected one entry, got %d", len(got))
	}
	if !got[0].End.IsOpen() {
		t.Fatalf("open end lost in round trip")
	}
}

func TestConfigSetAndInvert(t *testing.T) {
	cfg := &Config{Background: "#000000", Colour: "#ffffff"}

	cfg.Invert()
	if cfg.Background != "#ffffff" || cfg.Colour != "#000000" {
		t.Fatalf("invert did not swap: %#v", cfg)
	}

	if !cfg.Set("BACKGROUND", "#123456") {
		t.Fatalf("case-insensitive attr rejected")
	}
	if cfg.Background != "#123456" {
		t.Fatalf("background not assigned: %q", cfg.Background)
	}
	if !cfg.Set("color", "#abcdef") {
		t.Fatalf("colour spelling variant rejected")
	}
	if cfg.Colour != "#abcdef" {
		t.Fatalf("colour not assigned: %q", cfg.Colour)
	}
	if cfg.Set("flavor", "vanilla") {
		t.Fatalf("unknown attr accepted")
	}
}

func TestConfigSavePersistsPalette(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".punch.yaml")
	cfg := &Config{
		Path:       "/tmp/punch.db",
		ExportPath: "punch-export.json",
		Background: "#000000",
		Colour:     "#ffffff",
		File:       file,
	}

	cfg.Invert()
	if !cfg.Set("background", "#123456") {
		t.Fatalf("background attr rejected")
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	if got := v.GetString("background"); got != "#123456" {
		t.Fatalf("background not persisted: %q", got)
	}
	if got := v.GetString("colour"); got != "#000000" {
		t.Fatalf("colour not persisted: %q", got)
	}
	if got := v.GetString("path"); got != "/tmp/punch.db" {
		t.Fatalf("path not persisted: %q", got)
	}
}

func TestConfigSaveWithoutFileIsNoop(t *testing.T) {
	cfg := &Config{Background: "#000000"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("expected no error for in-memory config, got %v", err)
	}
}
