// Package cache implements the persistent change-detection cache: a
// digest-keyed mapping to CacheEntry, backed by a single JSON file with a
// file-level advisory lock serializing writers, following the same
// xdg.CacheHome convention the teacher uses for config search paths.
package cache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/gofrs/flock"

	"github.com/clnrm/clnrm/pkg/clnrmerr"
)

// Verdict is the outcome recorded for a cached scenario.
type Verdict string

// The closed set of recorded verdicts.
const (
	VerdictPass Verdict = "pass"
	VerdictFail Verdict = "fail"
)

// Entry is the value stored per digest key.
type Entry struct {
	Digest     string    `json:"digest"`
	Verdict    Verdict   `json:"verdict"`
	ReportPath string    `json:"report_path"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Store is a digest-keyed cache backed by a single JSON file.
type Store struct {
	path string
	mu   sync.Mutex // serializes in-process access; flock serializes cross-process
}

// DefaultPath returns the conventional cache file location, under
// xdg.CacheHome/clnrm/cache.json, mirroring pkg/config.DefaultConfigPath's
// use of the XDG base directory spec.
func DefaultPath() string {
	return filepath.Join(xdg.CacheHome, "clnrm", "cache.json")
}

// Open loads (or lazily creates) the cache file at path.
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, clnrmerr.New(clnrmerr.KindCache, "creating cache directory", err)
	}
	return &Store{path: path}, nil
}

func (s *Store) load() (map[string]Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]Entry{}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return map[string]Entry{}, nil
	}
	var entries map[string]Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Get returns the cache entry for digest, if present. Any corruption or
// read failure is treated as CacheError and recovered as a miss by the
// caller (per §7's propagation policy), not returned as fatal.
func (s *Store) Get(digestKey string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return Entry{}, false
	}
	e, ok := entries[digestKey]
	return e, ok
}

// Put writes or overwrites the entry for digest, serialized against both
// other goroutines in this process (via mu) and other processes (via a
// file lock held for the read-modify-write).
func (s *Store) Put(digestKey string, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return clnrmerr.New(clnrmerr.KindCache, "acquiring cache lock", err)
	}
	defer lock.Unlock() //nolint:errcheck

	entries, err := s.load()
	if err != nil {
		entries = map[string]Entry{}
	}
	entry.Digest = digestKey
	entry.UpdatedAt = time.Now().UTC()
	entries[digestKey] = entry

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return clnrmerr.New(clnrmerr.KindCache, "marshaling cache", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return clnrmerr.New(clnrmerr.KindCache, "writing cache temp file", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return clnrmerr.New(clnrmerr.KindCache, "replacing cache file", err)
	}
	return nil
}

// ShouldExecute implements the cache's should_execute contract: true when
// the digest is absent, when the cached verdict was a fail, or when force
// is set.
func (s *Store) ShouldExecute(digestKey string, force bool) bool {
	if force {
		return true
	}
	entry, ok := s.Get(digestKey)
	if !ok {
		return true
	}
	return entry.Verdict == VerdictFail
}
