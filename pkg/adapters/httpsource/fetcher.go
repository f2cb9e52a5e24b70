// Package httpsource implements the SourceFetcher port: it acquires
// raw image bytes from a local path, an http(s) URL, or stdin.
package httpsource

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/user/framepipe/pkg/framepipe"
	"github.com/user/framepipe/pkg/ports"
)

// StdinID is the provenance identifier for bytes read from stdin.
const StdinID = "stdin:"

// DefaultTimeout bounds a single URL fetch.
const DefaultTimeout = 30 * time.Second

// Fetcher implements ports.SourceFetcher.
type Fetcher struct {
	stdin     io.Reader
	client    *http.Client
	userAgent string
}

// Options configures the fetcher.
type Options struct {
	// Timeout overrides the HTTP fetch timeout.
	Timeout time.Duration
	// UserAgent overrides the HTTP User-Agent header.
	UserAgent string
}

// New creates a fetcher reading stdin from the given reader.
func New(stdin io.Reader) *Fetcher {
	return NewWithOptions(stdin, Options{})
}

// NewWithOptions creates a fetcher with the given options.
func NewWithOptions(stdin io.Reader, opts Options) *Fetcher {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "framepipe/" + framepipe.Version
	}
	return &Fetcher{
		stdin:     stdin,
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch acquires the bytes of one source. An empty target reads stdin
// to EOF; http(s) targets are fetched over the network; everything
// else is a local path, with file: and file:// prefixes stripped.
func (f *Fetcher) Fetch(ctx context.Context, target string) ([]byte, string, error) {
	if target == "" {
		data, err := io.ReadAll(f.stdin)
		if err != nil {
			return nil, "", framepipe.Wrap(framepipe.CategoryFetch, "reading from stdin", err)
		}
		return data, StdinID, nil
	}

	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return f.fetchURL(ctx, target)
	}

	path := strings.TrimPrefix(target, "file://")
	path = strings.TrimPrefix(path, "file:")
	return f.fetchFile(path)
}

func (f *Fetcher) fetchFile(path string) ([]byte, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", framepipe.Wrap(framepipe.CategoryFetch, "resolving input path", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", framepipe.Wrap(framepipe.CategoryFetch, "reading input file", err)
	}
	return data, "file:" + abs, nil
}

func (f *Fetcher) fetchURL(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", framepipe.Wrap(framepipe.CategoryFetch, "building request", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", framepipe.Wrap(framepipe.CategoryFetch, "fetching "+url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", framepipe.Newf(framepipe.CategoryFetch,
			"fetching %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", framepipe.Wrap(framepipe.CategoryFetch, "reading response body", err)
	}
	return data, url, nil
}

// Ensure Fetcher implements ports.SourceFetcher
var _ ports.SourceFetcher = (*Fetcher)(nil)
