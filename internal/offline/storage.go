package offline

import (
	"errors"
	"net/http"
)

// ErrNotCached is returned by Storage.Match when no entry exists.
var ErrNotCached = errors.New("not cached")

// Entry is one stored response.
type Entry struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

// OK reports whether the entry holds a 2xx response.
func (e Entry) OK() bool {
	return e.Status >= 200 && e.Status < 300
}

// Storage holds named cache generations of request-key to Entry mappings.
type Storage interface {
	Put(cache, key string, e Entry) error
	Match(cache, key string) (Entry, error)
	Names() ([]string, error)
	Delete(cache string) error
}

var hopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
	"Content-Length",
}

func cleanHeader(h http.Header) http.Header {
	out := h.Clone()
	if out == nil {
		out = http.Header{}
	}
	for _, name := range hopHeaders {
		out.Del(name)
	}
	return out
}
