package offline

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type origin struct {
	mu   sync.Mutex
	hits map[string]int
	srv  *httptest.Server
}

func newOrigin(t *testing.T, pages map[string]string) *origin {
	t.Helper()
	o := &origin{hits: make(map[string]int)}
	o.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		o.mu.Lock()
		o.hits[r.Method+" "+r.URL.RequestURI()]++
		o.mu.Unlock()
		if r.Method == http.MethodPost {
			body, _ := io.ReadAll(r.Body)
			_, _ = w.Write([]byte("posted:" + string(body)))
			return
		}
		body, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(o.srv.Close)
	return o
}

func (o *origin) count(key string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.hits[key]
}

func sitePages() map[string]string {
	return map[string]string{
		"/":                     "home",
		"/index.html":           "index",
		"/manifest.webmanifest": "{}",
		"/app.css":              "body{}",
	}
}

func newProxy(t *testing.T, o *origin, storage Storage) *Proxy {
	t.Helper()
	p, err := New(Options{Upstream: o.srv.URL, Storage: storage})
	require.NoError(t, err)
	return p
}

func serve(p *Proxy, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	p.ServeHTTP(rec, req)
	return rec
}

func navigate(path string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	return req
}

func TestNew_RequiresUpstream(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)
}

func TestProxy_Defaults(t *testing.T) {
	o := newOrigin(t, sitePages())
	p := newProxy(t, o, nil)
	require.Equal(t, CacheName, p.Name())
	require.Equal(t, "fitjourney-cache-v2", p.Name())
	require.Equal(t, []string{"/", "/index.html", "/manifest.webmanifest"}, StaticAssets)
}

func TestProxy_InstallStoresEveryAsset(t *testing.T) {
	o := newOrigin(t, sitePages())
	storage := NewMemoryStorage(1 << 20)
	p := newProxy(t, o, storage)

	require.NoError(t, p.Install(context.Background()))

	for asset, body := range map[string]string{"/": "home", "/index.html": "index", "/manifest.webmanifest": "{}"} {
		e, err := storage.Match(CacheName, asset)
		require.NoError(t, err, asset)
		require.Equal(t, body, string(e.Body), asset)
	}
}

func TestProxy_InstallIsAllOrNothing(t *testing.T) {
	pages := sitePages()
	delete(pages, "/manifest.webmanifest")
	o := newOrigin(t, pages)
	storage := NewMemoryStorage(1 << 20)
	p := newProxy(t, o, storage)

	err := p.Install(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "manifest.webmanifest")

	_, err = storage.Match(CacheName, "/")
	require.ErrorIs(t, err, ErrNotCached)
}

func TestProxy_ActivateDeletesOtherGenerations(t *testing.T) {
	o := newOrigin(t, sitePages())
	storage := NewMemoryStorage(1 << 20)
	require.NoError(t, storage.Put("fitjourney-cache-v1", "/", Entry{Status: 200, Body: []byte("old")}))

	p := newProxy(t, o, storage)
	require.NoError(t, p.Install(context.Background()))
	require.NoError(t, p.Activate())

	names, err := storage.Names()
	require.NoError(t, err)
	require.Equal(t, []string{CacheName}, names)

	_, err = storage.Match("fitjourney-cache-v1", "/")
	require.ErrorIs(t, err, ErrNotCached)
}

func TestProxy_NavigationIsNetworkFirst(t *testing.T) {
	o := newOrigin(t, sitePages())
	storage := NewMemoryStorage(1 << 20)
	p := newProxy(t, o, storage)

	rec := serve(p, navigate("/index.html"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "index", rec.Body.String())
	require.Equal(t, cacheNetwork, rec.Header().Get(CacheHeader))

	// Navigation copies are always stored under "/".
	e, err := storage.Match(CacheName, "/")
	require.NoError(t, err)
	require.Equal(t, "index", string(e.Body))

	rec = serve(p, navigate("/index.html"))
	require.Equal(t, 2, o.count("GET /index.html"))
	require.Equal(t, cacheNetwork, rec.Header().Get(CacheHeader))
}

func TestProxy_NavigationAcceptHTML(t *testing.T) {
	o := newOrigin(t, sitePages())
	p := newProxy(t, o, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	rec := serve(p, req)
	require.Equal(t, cacheNetwork, rec.Header().Get(CacheHeader))
}

func TestProxy_NavigationFallsBackWhenOffline(t *testing.T) {
	o := newOrigin(t, sitePages())
	storage := NewMemoryStorage(1 << 20)
	p := newProxy(t, o, storage)
	require.NoError(t, p.Install(context.Background()))
	o.srv.Close()

	rec := serve(p, navigate("/anything"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "home", rec.Body.String())
	require.Equal(t, cacheFallback, rec.Header().Get(CacheHeader))
}

func TestProxy_NavigationFallsBackToIndex(t *testing.T) {
	o := newOrigin(t, sitePages())
	storage := NewMemoryStorage(1 << 20)
	require.NoError(t, storage.Put(CacheName, "/index.html", Entry{Status: 200, Body: []byte("index")}))
	p := newProxy(t, o, storage)
	o.srv.Close()

	rec := serve(p, navigate("/"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "index", rec.Body.String())
}

func TestProxy_NavigationOfflineWithEmptyCache(t *testing.T) {
	o := newOrigin(t, sitePages())
	p := newProxy(t, o, nil)
	o.srv.Close()

	rec := serve(p, navigate("/"))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestProxy_LargePageSurvivesOffline(t *testing.T) {
	pages := sitePages()
	pages["/"] = strings.Repeat("<li>Oct 31: 55</li>\n", 2500) // ~50 KB
	o := newOrigin(t, pages)
	p := newProxy(t, o, NewMemoryStorage(16<<20))

	require.NoError(t, p.Install(context.Background()))
	o.srv.Close()

	rec := serve(p, navigate("/"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, cacheFallback, rec.Header().Get(CacheHeader))
	require.Equal(t, pages["/"], rec.Body.String())
}

// putFailer fails the nth Put and passes everything else through.
type putFailer struct {
	Storage
	n     int
	calls int
}

func (f *putFailer) Put(cache, key string, e Entry) error {
	f.calls++
	if f.calls == f.n {
		return errors.New("disk full")
	}
	return f.Storage.Put(cache, key, e)
}

func TestProxy_InstallRemovesPartialGeneration(t *testing.T) {
	o := newOrigin(t, sitePages())
	mem := NewMemoryStorage(1 << 20)
	p := newProxy(t, o, &putFailer{Storage: mem, n: 2})

	err := p.Install(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")

	_, err = mem.Match(CacheName, "/")
	require.ErrorIs(t, err, ErrNotCached)
	names, err := mem.Names()
	require.NoError(t, err)
	require.Empty(t, names)
}

func TestProxy_GetIsCacheFirst(t *testing.T) {
	o := newOrigin(t, sitePages())
	p := newProxy(t, o, nil)

	first := serve(p, httptest.NewRequest(http.MethodGet, "/app.css", nil))
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, cacheMiss, first.Header().Get(CacheHeader))

	second := serve(p, httptest.NewRequest(http.MethodGet, "/app.css", nil))
	require.Equal(t, "body{}", second.Body.String())
	require.Equal(t, cacheHit, second.Header().Get(CacheHeader))
	require.Equal(t, "text/plain", second.Header().Get("Content-Type"))
	require.Equal(t, 1, o.count("GET /app.css"))

	o.srv.Close()
	third := serve(p, httptest.NewRequest(http.MethodGet, "/app.css", nil))
	require.Equal(t, "body{}", third.Body.String())
}

func TestProxy_GetDoesNotStoreErrors(t *testing.T) {
	o := newOrigin(t, sitePages())
	p := newProxy(t, o, nil)

	for i := 0; i < 2; i++ {
		rec := serve(p, httptest.NewRequest(http.MethodGet, "/missing.js", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}
	require.Equal(t, 2, o.count("GET /missing.js"))
}

func TestProxy_GetMissWhileOffline(t *testing.T) {
	o := newOrigin(t, sitePages())
	p := newProxy(t, o, nil)
	o.srv.Close()

	rec := serve(p, httptest.NewRequest(http.MethodGet, "/app.css", nil))
	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestProxy_PostIsForwardedUncached(t *testing.T) {
	o := newOrigin(t, sitePages())
	storage := NewMemoryStorage(1 << 20)
	p := newProxy(t, o, storage)

	for i := 0; i < 2; i++ {
		rec := serve(p, httptest.NewRequest(http.MethodPost, "/app.css", strings.NewReader("x")))
		require.Equal(t, "posted:x", rec.Body.String())
		require.Equal(t, cacheBypass, rec.Header().Get(CacheHeader))
	}
	require.Equal(t, 2, o.count("POST /app.css"))

	names, err := storage.Names()
	require.NoError(t, err)
	require.Empty(t, names)
}

func TestProxy_ForeignHostIsForwarded(t *testing.T) {
	o := newOrigin(t, sitePages())
	other := newOrigin(t, map[string]string{"/lib.js": "lib"})
	storage := NewMemoryStorage(1 << 20)
	p := newProxy(t, o, storage)

	for i := 0; i < 2; i++ {
		rec := serve(p, httptest.NewRequest(http.MethodGet, other.srv.URL+"/lib.js", nil))
		require.Equal(t, "lib", rec.Body.String())
		require.Equal(t, cacheBypass, rec.Header().Get(CacheHeader))
	}
	require.Equal(t, 2, other.count("GET /lib.js"))
	require.Equal(t, 0, o.count("GET /lib.js"))
}
