package cache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/critique-dev/critique/internal/analyzer"
)

// Key identifies one cached review. The code it carries must already be
// redacted: both the entry filename and the stored metadata derive from it.
type Key struct {
	Provider string
	Model    string
	Language string
	Code     string
}

// digest collapses the key fields into the entry filename. Newline
// separators keep adjacent fields from colliding.
func (k Key) digest() string {
	h := sha256.New()
	for _, part := range []string{k.Provider, k.Model, k.Language, k.Code} {
		h.Write([]byte(part))
		h.Write([]byte{'\n'})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// entry is the on-disk shape of one cached review.
type entry struct {
	Provider  string          `json:"provider"`
	Model     string          `json:"model"`
	Language  string          `json:"language"`
	Review    analyzer.Result `json:"review"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Cache stores parsed provider reviews on disk, one JSON file per entry.
// The heuristic path never consults it; a local text scan is cheaper than
// a disk read.
type Cache struct {
	dir     string
	ttl     time.Duration
	enabled bool
}

// New opens the cache rooted at dir, defaulting to a "critique" folder in
// the per-user cache directory. A disabled cache is a no-op on every method.
func New(enabled bool, dir string, ttlSeconds int) (*Cache, error) {
	if !enabled {
		return &Cache{}, nil
	}
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("locating cache directory: %w", err)
		}
		dir = filepath.Join(base, "critique")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	return &Cache{
		dir:     dir,
		ttl:     time.Duration(ttlSeconds) * time.Second,
		enabled: true,
	}, nil
}

// Get returns the cached review for k, or false on a miss. Entries past
// their TTL and entries that no longer decode are removed on the way out.
func (c *Cache) Get(k Key) (*analyzer.Result, bool) {
	if !c.enabled {
		return nil, false
	}
	path := c.path(k)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		os.Remove(path)
		return nil, false
	}
	if c.expired(e) {
		os.Remove(path)
		return nil, false
	}
	return &e.Review, true
}

// Put stores a parsed review under k.
func (c *Cache) Put(k Key, res *analyzer.Result) error {
	if !c.enabled {
		return nil
	}
	data, err := json.Marshal(entry{
		Provider:  k.Provider,
		Model:     k.Model,
		Language:  k.Language,
		Review:    *res,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}
	return os.WriteFile(c.path(k), data, 0o644)
}

// Clear deletes every entry.
func (c *Cache) Clear() error {
	if !c.enabled {
		return nil
	}
	paths, err := filepath.Glob(filepath.Join(c.dir, "*.json"))
	if err != nil {
		return fmt.Errorf("listing cache entries: %w", err)
	}
	for _, p := range paths {
		os.Remove(p)
	}
	return nil
}

// Info summarizes the cache contents.
type Info struct {
	Dir        string `json:"dir"`
	Entries    int    `json:"entries"`
	TotalBytes int64  `json:"totalBytes"`
	Expired    int    `json:"expired"`
}

// Stats walks the cache directory and counts entries, their total size,
// and how many are past their TTL.
func (c *Cache) Stats() (Info, error) {
	info := Info{Dir: c.dir}
	if !c.enabled {
		return info, nil
	}
	paths, err := filepath.Glob(filepath.Join(c.dir, "*.json"))
	if err != nil {
		return info, fmt.Errorf("listing cache entries: %w", err)
	}
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			continue
		}
		info.Entries++
		info.TotalBytes += fi.Size()

		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		var e entry
		if err := json.Unmarshal(data, &e); err != nil {
			continue
		}
		if c.expired(e) {
			info.Expired++
		}
	}
	return info, nil
}

// Dir returns the cache directory path.
func (c *Cache) Dir() string { return c.dir }

// Enabled reports whether the cache persists anything.
func (c *Cache) Enabled() bool { return c.enabled }

func (c *Cache) expired(e entry) bool {
	return c.ttl > 0 && time.Since(e.CreatedAt) > c.ttl
}

func (c *Cache) path(k Key) string {
	return filepath.Join(c.dir, k.digest()+".json")
}
