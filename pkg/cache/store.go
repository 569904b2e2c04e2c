package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/standings/pkg/observability"
)

// commentLayout renders expirations like "Tue Oct 20 2026 04:00:00 GMT-0400 (EDT)".
const commentLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// entry is the on-disk form of a cached value.
type entry struct {
	Expiration int64           `json:"expiration"` // Unix epoch milliseconds
	Comment    string          `json:"comment"`
	Item       json.RawMessage `json:"item"`
}

func (e entry) live(now time.Time) bool {
	return e.Expiration > now.UnixMilli()
}

// EntryInfo describes a stored entry without its value.
type EntryInfo struct {
	Key     string
	Expires time.Time
	Comment string
	Size    int // encoded item size in bytes
}

// Option configures a [Store].
type Option func(*Store)

// WithLogger sets the logger used for load diagnostics and trace output.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithVerbose enables per-operation trace logging (hit, miss, set, purge).
func WithVerbose(v bool) Option {
	return func(s *Store) { s.verbose = v }
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Store is a TTL cache mirrored to a single JSON file.
//
// Every Set, Delete and Clear rewrites the whole file and syncs it to disk
// before returning. Writes are therefore O(entries) but an acknowledged write
// survives a crash.
//
// A Store is safe for use by multiple goroutines within one process.
type Store struct {
	mu      sync.Mutex
	path    string
	entries map[string]entry
	now     func() time.Time
	logger  *log.Logger
	verbose bool
}

// NewStore loads the snapshot file at path and returns a ready Store.
//
// NewStore never fails: if the file is absent, unreadable or not valid JSON,
// the problem is logged and the store starts empty. Entries whose expiration
// has already passed are discarded during the load.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:    path,
		entries: make(map[string]entry),
		now:     time.Now,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.trace("initializing new cache")
		return
	}
	if err != nil {
		s.logger.Warn("cache file unreadable, starting empty", "path", s.path, "err", err)
		return
	}

	var stored map[string]entry
	if err := json.Unmarshal(data, &stored); err != nil {
		s.logger.Warn("cache file corrupt, starting empty", "path", s.path, "err", err)
		return
	}

	now := s.now()
	for key, e := range stored {
		if !e.live(now) {
			s.trace("load: expired, dropping", "key", key)
			continue
		}
		s.trace("load: still good", "key", key)
		s.entries[key] = e
	}
	s.trace("loaded stored data", "entries", len(s.entries))
}

// Get decodes the value stored under key into v.
// It returns false when the key is absent, expired, or cannot be decoded
// into v. Expired entries are left in place until the next load.
func (s *Store) Get(key string, v any) bool {
	s.mu.Lock()
	e, ok := s.entries[key]
	s.mu.Unlock()

	switch {
	case !ok:
		s.trace("get: miss", "key", key)
	case !e.live(s.now()):
		s.trace("get: expired", "key", key)
		ok = false
	default:
		if err := json.Unmarshal(e.Item, v); err != nil {
			s.logger.Warn("cache entry undecodable, treating as miss", "key", key, "err", err)
			ok = false
		} else {
			s.trace("get: hit", "key", key)
		}
	}

	if ok {
		observability.Cache().OnCacheHit(key)
	} else {
		observability.Cache().OnCacheMiss(key)
	}
	return ok
}

// Set stores v under key until expires and writes the store to disk.
// An expiration that is not in the future is accepted; the entry is simply
// never visible to Get. If the write fails, the previous value for key (or
// its absence) is restored.
func (s *Store) Set(key string, v any, expires time.Time) error {
	if key == "" {
		return ErrEmptyKey
	}
	item, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: encode %q: %w", key, err)
	}

	comment := expires.Format(commentLayout)
	s.trace("set", "key", key, "exp", comment)

	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.entries[key]
	s.entries[key] = entry{
		Expiration: expires.UnixMilli(),
		Comment:    comment,
		Item:       item,
	}
	if err := s.persistLocked(); err != nil {
		if had {
			s.entries[key] = prev
		} else {
			delete(s.entries, key)
		}
		return err
	}
	observability.Cache().OnCacheSet(key, len(item))
	return nil
}

// Delete removes key and writes the store to disk. Deleting a missing key
// is not an error. On a failed write the entry is kept.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.entries[key]
	if !ok {
		return nil
	}
	delete(s.entries, key)
	if err := s.persistLocked(); err != nil {
		s.entries[key] = prev
		return err
	}
	return nil
}

// Clear removes every entry and writes the now empty store to disk.
// It returns the number of entries removed. On a failed write nothing is
// removed.
func (s *Store) Clear() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.entries
	s.entries = make(map[string]entry)
	if err := s.persistLocked(); err != nil {
		s.entries = prev
		return 0, err
	}
	return len(prev), nil
}

// Entries lists the stored entries sorted by key, including entries that
// expired after the store was loaded.
func (s *Store) Entries() []EntryInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]EntryInfo, 0, len(s.entries))
	for key, e := range s.entries {
		out = append(out, EntryInfo{
			Key:     key,
			Expires: time.UnixMilli(e.Expiration),
			Comment: e.Comment,
			Size:    len(e.Item),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// persistLocked rewrites the backing file and flushes it before returning.
// The caller must hold s.mu.
func (s *Store) persistLocked() error {
	data, err := json.MarshalIndent(s.entries, "", "    ")
	if err != nil {
		return fmt.Errorf("cache: encode store: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("cache: create dir: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("cache: open %s: %w", s.path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("cache: write %s: %w", s.path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("cache: sync %s: %w", s.path, err)
	}
	return f.Close()
}

func (s *Store) trace(msg string, keyvals ...any) {
	if s.verbose {
		s.logger.Debug("cache: "+msg, append([]any{"file", filepath.Base(s.path)}, keyvals...)...)
	}
}

// Ensure Store implements Cache.
var _ Cache = (*Store)(nil)
