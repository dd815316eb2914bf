package tether

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// DefaultURLTimeout bounds a single request made by a URLStrategy's default client.
const DefaultURLTimeout = 10 * time.Second

// URLStrategy loads a document addressed by an http, https or file URL.
type URLStrategy struct {
	raw    string
	u      *url.URL
	client *http.Client
	reload bool
}

// URL creates a strategy for raw. Both "file:///abs/path" and the opaque
// "file:relative/path" forms are accepted for local files.
func URL(raw string) (*URLStrategy, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", raw, err)
	}
	switch u.Scheme {
	case "http", "https", "file":
	default:
		return nil, fmt.Errorf("unsupported url scheme %q in %q", u.Scheme, raw)
	}
	return &URLStrategy{
		raw:    raw,
		u:      u,
		client: &http.Client{Timeout: DefaultURLTimeout},
	}, nil
}

// Reload makes every Loader.Get fetch the URL again.
func (s *URLStrategy) Reload() *URLStrategy {
	s.reload = true
	return s
}

// Client sets the HTTP client used for http and https URLs.
func (s *URLStrategy) Client(c *http.Client) *URLStrategy {
	if c != nil {
		s.client = c
	}
	return s
}

// Exists reports whether the URL currently answers. For http and https a HEAD
// request must return a status below 400; 405 also counts, since the resource
// is there even if HEAD is not allowed.
func (s *URLStrategy) Exists(ctx context.Context) bool {
	if s.u.Scheme == "file" {
		info, err := os.Stat(s.filePath())
		return err == nil && !info.IsDir()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.raw, nil)
	if err != nil {
		return false
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode < http.StatusBadRequest || resp.StatusCode == http.StatusMethodNotAllowed
}

// ReloadsEveryTime reports whether Reload was requested.
func (s *URLStrategy) ReloadsEveryTime() bool {
	return s.reload
}

// Load fetches the document and deserializes it into v.
func (s *URLStrategy) Load(ctx context.Context, codec Codec, v any) error {
	data, err := s.fetch(ctx)
	if err != nil {
		return unavailable(s.String(), err)
	}
	return decode(codec, s.String(), data, v)
}

// String describes the URL.
func (s *URLStrategy) String() string {
	return "url " + s.raw
}

func (s *URLStrategy) fetch(ctx context.Context) ([]byte, error) {
	if s.u.Scheme == "file" {
		return os.ReadFile(s.filePath())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.raw, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func (s *URLStrategy) filePath() string {
	if s.u.Opaque != "" {
		if p, err := url.PathUnescape(s.u.Opaque); err == nil {
			return p
		}
		return s.u.Opaque
	}
	return s.u.Path
}

var _ Strategy = (*URLStrategy)(nil)
