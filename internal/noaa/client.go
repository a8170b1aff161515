// Package noaa fetches text bulletins published by the NOAA space
// weather prediction center and reformats them for chat delivery.
// Downloads go through a small file cache refreshed by modification
// time, so repeated commands do not hammer the NOAA servers.
package noaa

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// DefaultBaseURL is the NOAA space weather services host.
const DefaultBaseURL = "https://services.swpc.noaa.gov"

const (
	alertsPath   = "/text/wwv.txt"
	alertsAge    = time.Hour
	forecastPath = "/text/discussion.txt"
	forecastAge  = 4 * time.Hour
)

// Client downloads NOAA text products with a local file cache.
type Client struct {
	baseURL  string
	cacheDir string
	http     *http.Client
	group    singleflight.Group
}

// Option customises a Client.
type Option func(*Client)

// WithBaseURL overrides the NOAA host, mostly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the HTTP client used for downloads.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewClient builds a Client caching downloads under cacheDir.
func NewClient(cacheDir string, opts ...Option) *Client {
	c := &Client{
		baseURL:  DefaultBaseURL,
		cacheDir: cacheDir,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Alerts returns the current WWV solar activity bulletin: comment and
// product header lines are dropped, the issued stamp is reworded, and
// the remaining lines are joined by newlines.
func (c *Client) Alerts(ctx context.Context) (string, error) {
	raw, err := c.cachedFetch(ctx, alertsPath, "alerts.txt", alertsAge)
	if err != nil {
		return "", errors.Wrap(err, "noaa alerts")
	}

	var out []string
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' || strings.HasPrefix(line, ":Product") {
			continue
		}
		line = strings.Replace(line, ":Issued: ", "Report from: ", 1)
		out = append(out, line)
	}
	return strings.Join(out, "\n"), nil
}

// ForecastDiscussion returns the paragraph following the ".Forecast"
// marker of the NOAA forecast discussion, collapsed to a single line.
func (c *Client) ForecastDiscussion(ctx context.Context) (string, error) {
	raw, err := c.cachedFetch(ctx, forecastPath, "discussion.txt", forecastAge)
	if err != nil {
		return "", errors.Wrap(err, "noaa forecast discussion")
	}

	var (
		out     []string
		capture bool
	)
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, ".Forecast") {
			capture = true
			continue
		}
		if capture && line == "" {
			break
		}
		if capture {
			out = append(out, line)
		}
	}
	return strings.Join(out, " "), nil
}

// cachedFetch returns the cached copy of a product when it is younger
// than maxAge, otherwise downloads a fresh one. Concurrent requests for
// the same file collapse into a single download. There is deliberately
// no retry: a failed fetch surfaces to the caller.
func (c *Client) cachedFetch(ctx context.Context, urlPath, fileName string, maxAge time.Duration) ([]byte, error) {
	cachePath := filepath.Join(c.cacheDir, fileName)

	if data, ok := readFresh(cachePath, maxAge); ok {
		return data, nil
	}

	v, err, _ := c.group.Do(fileName, func() (interface{}, error) {
		// Another caller may have refreshed the file while we waited.
		if data, ok := readFresh(cachePath, maxAge); ok {
			return data, nil
		}
		data, err := c.download(ctx, urlPath)
		if err != nil {
			return nil, err
		}
		if err := writeAtomic(cachePath, data); err != nil {
			return nil, err
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (c *Client) download(ctx context.Context, urlPath string) ([]byte, error) {
	url := c.baseURL + urlPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "build request %s", url)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read body %s", url)
	}
	return data, nil
}

func readFresh(path string, maxAge time.Duration) ([]byte, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	if time.Since(info.ModTime()) > maxAge {
		return nil, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return data, true
}

// writeAtomic stages the download in a temp file and renames it into
// place so a concurrent reader never sees a partial bulletin.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".noaa-*")
	if err != nil {
		return errors.Wrap(err, "create temp cache file")
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "write cache file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "close cache file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "rename cache file")
	}
	return nil
}
