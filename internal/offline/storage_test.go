package offline

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func storages(t *testing.T) map[string]Storage {
	t.Helper()
	disk, err := NewDiskStorage(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)
	return map[string]Storage{
		"memory": NewMemoryStorage(1 << 20),
		"disk":   disk,
	}
}

func TestStorage_PutMatchDelete(t *testing.T) {
	for name, s := range storages(t) {
		t.Run(name, func(t *testing.T) {
			e := Entry{Status: 200, Header: http.Header{"Content-Type": {"text/html"}}, Body: []byte("<p>hi</p>")}
			require.NoError(t, s.Put("gen-a", "/", e))
			require.NoError(t, s.Put("gen-b", "/", Entry{Status: 200, Body: []byte("b")}))

			got, err := s.Match("gen-a", "/")
			require.NoError(t, err)
			require.Equal(t, e, got)

			_, err = s.Match("gen-a", "/other")
			require.ErrorIs(t, err, ErrNotCached)

			names, err := s.Names()
			require.NoError(t, err)
			require.Equal(t, []string{"gen-a", "gen-b"}, names)

			require.NoError(t, s.Delete("gen-a"))
			_, err = s.Match("gen-a", "/")
			require.ErrorIs(t, err, ErrNotCached)

			got, err = s.Match("gen-b", "/")
			require.NoError(t, err)
			require.Equal(t, "b", string(got.Body))

			names, err = s.Names()
			require.NoError(t, err)
			require.Equal(t, []string{"gen-b"}, names)
		})
	}
}

func TestStorage_PutReplaces(t *testing.T) {
	for name, s := range storages(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Put("gen", "/", Entry{Status: 200, Body: []byte("one")}))
			require.NoError(t, s.Put("gen", "/", Entry{Status: 200, Body: []byte("two")}))
			got, err := s.Match("gen", "/")
			require.NoError(t, err)
			require.Equal(t, "two", string(got.Body))
		})
	}
}

func TestMemoryStorage_EntryLargerThanSlot(t *testing.T) {
	s := NewMemoryStorage(1 << 20) // 1 KiB per freecache slot
	body := []byte(strings.Repeat("0123456789", 5000))
	e := Entry{Status: 200, Header: http.Header{"Content-Type": {"text/html"}}, Body: body}

	require.NoError(t, s.Put(CacheName, "/", e))
	got, err := s.Match(CacheName, "/")
	require.NoError(t, err)
	require.Equal(t, e, got)

	require.NoError(t, s.Put(CacheName, "/", Entry{Status: 200, Body: []byte("short")}))
	got, err = s.Match(CacheName, "/")
	require.NoError(t, err)
	require.Equal(t, "short", string(got.Body))

	require.NoError(t, s.Delete(CacheName))
	_, err = s.Match(CacheName, "/")
	require.ErrorIs(t, err, ErrNotCached)
	require.Zero(t, s.cache.EntryCount())
}

func TestDiskStorage_Layout(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDiskStorage(dir)
	require.NoError(t, err)
	require.NoError(t, s.Put(CacheName, "/index.html", Entry{Status: 200}))

	entries, err := os.ReadDir(filepath.Join(dir, CacheName))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Len(t, entries[0].Name(), len("0123456789abcdef.json"))
}

func TestNewDiskStorage_EmptyDir(t *testing.T) {
	_, err := NewDiskStorage("")
	require.Error(t, err)
}

func TestParseBaseURL_Normalizes(t *testing.T) {
	u, err := parseBaseURL("127.0.0.1:9000")
	require.NoError(t, err)
	require.Equal(t, "http", u.Scheme)
	require.Equal(t, "127.0.0.1:9000", u.Host)

	u, err = parseBaseURL("https://example.com/app?x=1#frag")
	require.NoError(t, err)
	require.Equal(t, "https://example.com", u.String())

	_, err = parseBaseURL("  ")
	require.Error(t, err)
}
