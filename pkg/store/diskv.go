package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/punch/pkg/entry"
)

// Persistence is the storage contract for the activity log. The log is an
// ordered sequence; keys carry a sequence number so append order survives a
// round trip.
type Persistence interface {
	List(ctx context.Context) []*entry.Entry
	Append(e *entry.Entry) error
	Rewrite(entries []*entry.Entry) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg *Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) keys(ctx context.Context) []string {
	var keys []string
	for key := range p.d.Keys(ctx.Done()) {
		if strings.HasPrefix(key, "log-") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func (p *persistence) read(key string) (*entry.Entry, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	e := &entry.Entry{}
	if err := json.Unmarshal(val, e); err != nil {
		return nil, err
	}
	return e, nil
}

// List returns the log in append order. Unreadable records are skipped with
// a note on stderr rather than failing the whole log.
func (p *persistence) List(ctx context.Context) []*entry.Entry {
	all := make([]*entry.Entry, 0)
	for _, key := range p.keys(ctx) {
		e, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, e)
	}
	return all
}

func (p *persistence) Append(e *entry.Entry) error {
	if e == nil {
		return errors.New("store: nil entry")
	}
	next := len(p.keys(context.Background()))
	return p.write(next, e)
}

// Rewrite replaces the whole persisted log, renumbering from zero.
func (p *persistence) Rewrite(entries []*entry.Entry) error {
	for _, key := range p.keys(context.Background()) {
		if err := p.d.Erase(key); err != nil {
			return fmt.Errorf("store: erase %s: %w", key, err)
		}
	}
	for i, e := range entries {
		if e == nil {
			continue
		}
		if err := p.write(i, e); err != nil {
			return err
		}
	}
	return nil
}

func (p *persistence) write(seq int, e *entry.Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(seq), data)
}

// toKey makes `log-<seq>`, zero padded so lexical order is append order.
func toKey(seq int) string {
	return fmt.Sprintf("log-%08d", seq)
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
