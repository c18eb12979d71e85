package offline

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/zeebo/xxh3"
)

// DiskStorage keeps one directory per cache generation under dir. Entry files
// are named by the xxh3 hash of their request key.
type DiskStorage struct {
	mu  sync.Mutex
	dir string
}

type diskRecord struct {
	Key   string `json:"key"`
	Entry Entry  `json:"entry"`
}

// NewDiskStorage creates dir if needed.
func NewDiskStorage(dir string) (*DiskStorage, error) {
	if dir == "" {
		return nil, fmt.Errorf("cache dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &DiskStorage{dir: dir}, nil
}

func (d *DiskStorage) cacheDir(cache string) string {
	return filepath.Join(d.dir, url.PathEscape(cache))
}

func (d *DiskStorage) entryPath(cache, key string) string {
	return filepath.Join(d.cacheDir(cache), fmt.Sprintf("%016x.json", xxh3.HashString(key)))
}

func (d *DiskStorage) Put(cache, key string, e Entry) error {
	data, err := json.Marshal(diskRecord{Key: key, Entry: e})
	if err != nil {
		return fmt.Errorf("encode entry: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	dir := d.cacheDir(cache)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache generation: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".entry-*")
	if err != nil {
		return fmt.Errorf("create temp entry: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close entry: %w", err)
	}
	if err := os.Rename(tmp.Name(), d.entryPath(cache, key)); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace entry: %w", err)
	}
	return nil
}

func (d *DiskStorage) Match(cache, key string) (Entry, error) {
	d.mu.Lock()
	data, err := os.ReadFile(d.entryPath(cache, key))
	d.mu.Unlock()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Entry{}, ErrNotCached
		}
		return Entry{}, fmt.Errorf("read entry: %w", err)
	}
	var rec diskRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Entry{}, fmt.Errorf("decode entry: %w", err)
	}
	if rec.Key != key {
		return Entry{}, ErrNotCached
	}
	return rec.Entry, nil
}

func (d *DiskStorage) Names() ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, fmt.Errorf("list cache dir: %w", err)
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name, err := url.PathUnescape(e.Name())
		if err != nil {
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func (d *DiskStorage) Delete(cache string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := os.RemoveAll(d.cacheDir(cache)); err != nil {
		return fmt.Errorf("delete cache %s: %w", cache, err)
	}
	return nil
}
