package driver

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"ezc/internal/project"
	"ezc/internal/source"
)

// Increment when DiskPayload changes shape or the emitted text format changes.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores the emitted instructions of clean units, keyed by a
// digest of path and content. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the msgpack record of one cached unit.
type DiskPayload struct {
	Schema uint16
	Path   string
	Hash   project.Digest

	Lines        []string
	Temps        uint64
	Labels       uint64
	Declarations int
	Statements   int
	MaxFrame     uint64

	// Broken marks a unit that produced diagnostics. Such entries are never
	// served, so the diagnostics are reported again on the next build.
	Broken bool
}

func newDiskPayload(res *CompileResult) *DiskPayload {
	return &DiskPayload{
		Schema:       diskCacheSchemaVersion,
		Path:         res.Path,
		Hash:         project.Digest(res.File.Hash),
		Lines:        res.Lines,
		Temps:        res.Temps,
		Labels:       res.Labels,
		Declarations: res.Parse.Declarations,
		Statements:   res.Parse.Statements,
		MaxFrame:     res.Parse.MaxFrame,
		Broken:       res.Bag.Len() > 0,
	}
}

func (p *DiskPayload) usable(path string) bool {
	return p.Schema == diskCacheSchemaVersion && p.Path == path && !p.Broken
}

func cacheKey(file *source.File) project.Digest {
	var schema [2]byte
	binary.BigEndian.PutUint16(schema[:], diskCacheSchemaVersion)
	return project.Combine(project.Digest(file.Hash), []byte(file.Path), schema[:])
}

// OpenDiskCache opens the cache under $XDG_CACHE_HOME/<app>, falling back
// to ~/.cache/<app>.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens a cache rooted at dir.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	return filepath.Join(c.dir, "units", hex.EncodeToString(key[:])+".mp")
}

// Put writes payload atomically: encode into a temp file, then rename.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get decodes the payload stored under key into out.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll removes every cached unit.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
