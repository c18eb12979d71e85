package offline

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// CacheName is the current cache generation.
const CacheName = "fitjourney-cache-v2"

// StaticAssets are pre-fetched by Install.
var StaticAssets = []string{"/", "/index.html", "/manifest.webmanifest"}

// CacheHeader tells clients how a response was produced.
const CacheHeader = "X-Fitjourney-Cache"

const (
	cacheHit      = "hit"
	cacheMiss     = "miss"
	cacheNetwork  = "network"
	cacheFallback = "fallback"
	cacheBypass   = "bypass"
)

// Options configure a Proxy.
type Options struct {
	Name     string       // cache generation; defaults to CacheName
	Assets   []string     // install list; defaults to StaticAssets
	Upstream string       // origin as host:port or URL
	Client   *http.Client // defaults to a client with a request timeout
	Storage  Storage      // defaults to a 16 MiB MemoryStorage
}

// Proxy is an http.Handler applying the offline caching rules.
type Proxy struct {
	name     string
	assets   []string
	upstream *upstream
	storage  Storage
}

// New builds a proxy in front of opts.Upstream.
func New(opts Options) (*Proxy, error) {
	up, err := newUpstream(opts.Upstream, opts.Client)
	if err != nil {
		return nil, err
	}
	p := &Proxy{
		name:     opts.Name,
		assets:   opts.Assets,
		upstream: up,
		storage:  opts.Storage,
	}
	if p.name == "" {
		p.name = CacheName
	}
	if p.assets == nil {
		p.assets = StaticAssets
	}
	if p.storage == nil {
		p.storage = NewMemoryStorage(16 << 20)
	}
	return p, nil
}

// Name returns the cache generation the proxy writes to.
func (p *Proxy) Name() string {
	return p.name
}

// Install fetches every asset and stores them together. If any fetch or
// store fails the generation is left empty and the combined failures are
// returned.
func (p *Proxy) Install(ctx context.Context) error {
	fetched := make(map[string]Entry, len(p.assets))
	var errs error
	for _, asset := range p.assets {
		rel, err := url.Parse(asset)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("parse asset %q: %w", asset, err))
			continue
		}
		e, err := p.upstream.fetch(ctx, http.MethodGet, rel, nil, nil)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("fetch %s: %w", asset, err))
			continue
		}
		if !e.OK() {
			errs = multierr.Append(errs, fmt.Errorf("fetch %s: status %d", asset, e.Status))
			continue
		}
		fetched[requestKey(rel)] = e
	}
	if errs != nil {
		return errs
	}

	for _, asset := range p.assets {
		rel, _ := url.Parse(asset)
		key := requestKey(rel)
		if err := p.storage.Put(p.name, key, fetched[key]); err != nil {
			errs = multierr.Append(errs, err)
			break
		}
	}
	if errs != nil {
		return multierr.Append(errs, p.storage.Delete(p.name))
	}
	log.WithField("cache", p.name).Infof("installed %d assets", len(p.assets))
	return nil
}

// Activate deletes every cache generation other than the current one.
func (p *Proxy) Activate() error {
	names, err := p.storage.Names()
	if err != nil {
		return fmt.Errorf("list caches: %w", err)
	}
	var errs error
	for _, name := range names {
		if name == p.name {
			continue
		}
		if err := p.storage.Delete(name); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		log.WithField("cache", name).Info("deleted stale cache")
	}
	return errs
}

func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case !p.upstream.sameOrigin(r.URL):
		p.serveForward(w, r)
	case isNavigation(r):
		p.serveNavigation(w, r)
	case r.Method == http.MethodGet:
		p.serveCacheFirst(w, r)
	default:
		p.servePassThrough(w, r)
	}
}

func (p *Proxy) serveNavigation(w http.ResponseWriter, r *http.Request) {
	e, err := p.upstream.fetch(r.Context(), r.Method, r.URL, r.Header, nil)
	if err == nil {
		if e.OK() {
			p.store("/", e)
		}
		writeEntry(w, e, cacheNetwork)
		return
	}
	log.WithError(err).Debugf("navigation to %s failed, trying cache", r.URL.Path)

	for _, key := range []string{"/", "/index.html"} {
		cached, cerr := p.storage.Match(p.name, key)
		if cerr == nil {
			writeEntry(w, cached, cacheFallback)
			return
		}
	}
	http.Error(w, "offline and no cached page", http.StatusServiceUnavailable)
}

func (p *Proxy) serveCacheFirst(w http.ResponseWriter, r *http.Request) {
	key := requestKey(r.URL)
	if cached, err := p.storage.Match(p.name, key); err == nil {
		writeEntry(w, cached, cacheHit)
		return
	}

	e, err := p.upstream.fetch(r.Context(), r.Method, r.URL, r.Header, nil)
	if err != nil {
		log.WithError(err).Debugf("fetch %s failed", key)
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
		return
	}
	if e.OK() {
		p.store(key, e)
	}
	writeEntry(w, e, cacheMiss)
}

func (p *Proxy) servePassThrough(w http.ResponseWriter, r *http.Request) {
	e, err := p.upstream.fetch(r.Context(), r.Method, r.URL, r.Header, r.Body)
	if err != nil {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
		return
	}
	writeEntry(w, e, cacheBypass)
}

func (p *Proxy) serveForward(w http.ResponseWriter, r *http.Request) {
	var body = r.Body
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		body = nil
	}
	e, err := p.upstream.forward(r.Context(), r.Method, r.URL, r.Header, body)
	if err != nil {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
		return
	}
	writeEntry(w, e, cacheBypass)
}

// store writes a copy of e into the current generation. Failures only cost a
// future cache hit, so they are logged.
func (p *Proxy) store(key string, e Entry) {
	if err := p.storage.Put(p.name, key, e); err != nil {
		log.WithError(err).Warnf("cache put %s dropped", key)
	}
}

func isNavigation(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}
	if r.Header.Get("Sec-Fetch-Mode") == "navigate" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func requestKey(u *url.URL) string {
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		return path + "?" + u.RawQuery
	}
	return path
}

func writeEntry(w http.ResponseWriter, e Entry, source string) {
	h := w.Header()
	for name, values := range e.Header {
		h[name] = append([]string(nil), values...)
	}
	h.Set(CacheHeader, source)
	status := e.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = w.Write(e.Body)
}
