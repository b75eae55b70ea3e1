// Package notes loads long-form athlete notes (injury history, schedule
// constraints, race calendar) that are appended to a training plan request.
package notes

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
)

// DefaultMaxBytes caps how much of a notes source is read.
const DefaultMaxBytes = 64 * 1024

type Loader struct {
	h        *retryablehttp.Client
	maxBytes int
}

type LoaderOption func(*Loader)

func WithMaxBytes(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.maxBytes = n
		}
	}
}

func WithRetries(n int) LoaderOption {
	return func(l *Loader) {
		l.h.RetryMax = n
	}
}

func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.h.Logger = logger
		}
	}
}

func WithHTTPClient(c *http.Client) LoaderOption {
	return func(l *Loader) {
		l.h.HTTPClient = c
	}
}

func NewLoader(opts ...LoaderOption) *Loader {
	h := retryablehttp.NewClient()
	h.RetryMax = 2
	h.Logger = nil
	l := &Loader{h: h, maxBytes: DefaultMaxBytes}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the text at src, which may be an http(s) URL, a file:// URL
// or a local path. An empty src yields an empty string.
func (l *Loader) Load(ctx context.Context, src string) (string, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", nil
	}
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return l.fetchURL(ctx, src)
	}
	p, _ := strings.CutPrefix(src, "file://")
	f, err := os.Open(p)
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck
	return l.read(f)
}

func (l *Loader) fetchURL(ctx context.Context, url string) (string, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := l.h.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("GET %s: %d", url, resp.StatusCode)
	}
	return l.read(resp.Body)
}

func (l *Loader) read(r io.Reader) (string, error) {
	b, err := io.ReadAll(&io.LimitedReader{R: r, N: int64(l.maxBytes)})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
