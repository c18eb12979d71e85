package storage

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
)

// ErrQuotaExceeded is returned by Set when the write would exceed the store's
// byte quota.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// KV is a durable, synchronous, string-keyed store of string values.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// FileKV keeps one file per key under a directory.
type FileKV struct {
	dir   string
	quota int64

	mu sync.Mutex
}

// Ensure FileKV implements KV at compile time.
var _ KV = (*FileKV)(nil)

// NewFileKV opens a file store rooted at dir, creating it if needed. A quota
// of zero or less disables the size limit.
func NewFileKV(dir string, quota int64) (*FileKV, error) {
	if dir == "" {
		return nil, fmt.Errorf("data dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileKV{dir: dir, quota: quota}, nil
}

// Dir returns the directory backing the store.
func (f *FileKV) Dir() string {
	return f.dir
}

// Path returns the file that holds key.
func (f *FileKV) Path(key string) string {
	return filepath.Join(f.dir, url.PathEscape(key)+".json")
}

// Get reads key. A missing key is not an error.
func (f *FileKV) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set replaces the value of key atomically.
func (f *FileKV) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.Path(key)
	if f.quota > 0 {
		used, err := f.usage(path)
		if err != nil {
			return err
		}
		if used+int64(len(value)) > f.quota {
			return fmt.Errorf("write %s (%d bytes): %w", key, len(value), ErrQuotaExceeded)
		}
	}

	tmp, err := os.CreateTemp(f.dir, ".kv-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", key, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

// usage sums the size of every stored value except the one at skip.
func (f *FileKV) usage(skip string) (int64, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return 0, fmt.Errorf("list data dir: %w", err)
	}
	var total int64
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		if filepath.Join(f.dir, e.Name()) == skip {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		total += info.Size()
	}
	return total, nil
}

// MemoryKV is an in-process KV. The zero value is ready to use.
type MemoryKV struct {
	mu     sync.Mutex
	values map[string]string

	// Fail, when set, is returned by every Get and Set.
	Fail error
}

// Ensure MemoryKV implements KV at compile time.
var _ KV = (*MemoryKV)(nil)

// Get reads key.
func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return "", false, m.Fail
	}
	v, ok := m.values[key]
	return v, ok, nil
}

// Set writes key.
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

// SetFailure changes the injected failure under the store's lock.
func (m *MemoryKV) SetFailure(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Fail = err
}
