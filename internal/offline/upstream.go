package offline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultUserAgent = "fitjourney-offline/0.1"
	requestTimeout   = 10 * time.Second
	maxBodyBytes     = 8 << 20
)

// upstream talks to the dashboard origin.
type upstream struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

func newUpstream(origin string, client *http.Client) (*upstream, error) {
	base, err := parseBaseURL(origin)
	if err != nil {
		return nil, err
	}
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	return &upstream{baseURL: base, http: client, userAgent: defaultUserAgent}, nil
}

// sameOrigin reports whether u addresses the origin. Relative URLs always do.
func (u *upstream) sameOrigin(target *url.URL) bool {
	if !target.IsAbs() {
		return true
	}
	return strings.EqualFold(target.Scheme, u.baseURL.Scheme) && strings.EqualFold(target.Host, u.baseURL.Host)
}

// fetch performs a request against the origin and buffers the whole response.
func (u *upstream) fetch(ctx context.Context, method string, rel *url.URL, header http.Header, body io.Reader) (Entry, error) {
	reqURL := u.baseURL.ResolveReference(&url.URL{Path: rel.Path, RawQuery: rel.RawQuery})
	return u.do(ctx, method, reqURL, header, body)
}

// forward performs a request against an arbitrary absolute URL.
func (u *upstream) forward(ctx context.Context, method string, target *url.URL, header http.Header, body io.Reader) (Entry, error) {
	return u.do(ctx, method, target, header, body)
}

func (u *upstream) do(ctx context.Context, method string, reqURL *url.URL, header http.Header, body io.Reader) (Entry, error) {
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return Entry{}, fmt.Errorf("create request: %w", err)
	}
	if header != nil {
		req.Header = cleanHeader(header)
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", u.userAgent)
	}

	resp, err := u.http.Do(req)
	if err != nil {
		return Entry{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Entry{}, fmt.Errorf("read response: %w", err)
	}
	return Entry{Status: resp.StatusCode, Header: cleanHeader(resp.Header), Body: data}, nil
}

func parseBaseURL(origin string) (*url.URL, error) {
	trimmed := strings.TrimSpace(origin)
	if trimmed == "" {
		return nil, fmt.Errorf("upstream is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse upstream %q: %w", origin, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("upstream %q has no host", origin)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
