package offline

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/coocood/freecache"
	json "github.com/goccy/go-json"
)

const (
	keySep = "\x00"

	// freecache never allocates less than this.
	minMemorySize = 512 * 1024

	// Room left in each freecache slot for the key and entry header.
	chunkSlack = 512
)

// memoryRecord describes a stored response. The body is kept raw in Chunks
// separate freecache entries, since freecache refuses any single entry
// larger than 1/1024 of the ring.
type memoryRecord struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Size   int         `json:"size"`
	Chunks int         `json:"chunks"`
}

// MemoryStorage keeps cache generations in a single freecache ring. Old
// entries may be evicted when the ring fills up; an entry with any chunk
// evicted is treated as missing.
type MemoryStorage struct {
	mu        sync.Mutex
	cache     *freecache.Cache
	names     map[string]struct{}
	chunkSize int
}

// NewMemoryStorage returns an in-memory storage of roughly size bytes.
func NewMemoryStorage(size int) *MemoryStorage {
	if size < minMemorySize {
		size = minMemorySize
	}
	return &MemoryStorage{
		cache:     freecache.NewCache(size),
		names:     make(map[string]struct{}),
		chunkSize: size/1024 - chunkSlack,
	}
}

func memoryKey(cache, key string) []byte {
	return []byte(cache + keySep + key)
}

func chunkKey(cache, key string, i int) []byte {
	return []byte(cache + keySep + key + keySep + strconv.Itoa(i))
}

func (m *MemoryStorage) Put(cache, key string, e Entry) error {
	rec := memoryRecord{Status: e.Status, Header: e.Header, Size: len(e.Body)}
	rec.Chunks = (len(e.Body) + m.chunkSize - 1) / m.chunkSize
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode entry: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := 0; i < rec.Chunks; i++ {
		end := (i + 1) * m.chunkSize
		if end > len(e.Body) {
			end = len(e.Body)
		}
		if err := m.cache.Set(chunkKey(cache, key, i), e.Body[i*m.chunkSize:end], 0); err != nil {
			return fmt.Errorf("store %s chunk %d: %w", key, i, err)
		}
	}
	if err := m.cache.Set(memoryKey(cache, key), data, 0); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	m.names[cache] = struct{}{}
	return nil
}

func (m *MemoryStorage) Match(cache, key string) (Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := m.cache.Get(memoryKey(cache, key))
	if err != nil {
		return Entry{}, ErrNotCached
	}
	var rec memoryRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Entry{}, fmt.Errorf("decode entry: %w", err)
	}

	e := Entry{Status: rec.Status, Header: rec.Header}
	if rec.Size == 0 {
		return e, nil
	}
	body := make([]byte, 0, rec.Size)
	for i := 0; i < rec.Chunks; i++ {
		chunk, err := m.cache.Get(chunkKey(cache, key, i))
		if err != nil {
			return Entry{}, ErrNotCached
		}
		body = append(body, chunk...)
	}
	if len(body) != rec.Size {
		return Entry{}, ErrNotCached
	}
	e.Body = body
	return e, nil
}

func (m *MemoryStorage) Names() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.names))
	for name := range m.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

// Delete drops every record and chunk of a generation.
func (m *MemoryStorage) Delete(cache string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	prefix := cache + keySep
	var doomed [][]byte
	it := m.cache.NewIterator()
	for e := it.Next(); e != nil; e = it.Next() {
		if strings.HasPrefix(string(e.Key), prefix) {
			doomed = append(doomed, e.Key)
		}
	}
	for _, k := range doomed {
		m.cache.Del(k)
	}
	delete(m.names, cache)
	return nil
}
