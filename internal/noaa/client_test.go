package noaa

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wwvSample = `:Product: Geophysical Alert Message wwv.txt
:Issued: 2024 Mar 01 1205 UTC
# Prepared by the US Dept. of Commerce, NOAA, Space Weather Prediction Center
#
#          Geophysical Alert Message
#
Solar-terrestrial indices for 29 February follow.
Solar flux 183 and estimated planetary A-index 7.

No space weather storms were observed for the past 24 hours.
`

const discussionSample = `:Product: Forecast Discussion
:Issued: 2024 Mar 01 1230 UTC

Solar Activity

.24 hr Summary...
Solar activity was moderate.

.Forecast...
Solar activity is expected to be low with a chance for M-class
flares over the next three days.

Energetic Particle

.24 hr Summary...
Quiet.
`

func newTestServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/text/wwv.txt":
			_, _ = w.Write([]byte(wwvSample))
		case "/text/discussion.txt":
			_, _ = w.Write([]byte(discussionSample))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAlertsFormatting(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, &hits)
	client := NewClient(t.TempDir(), WithBaseURL(srv.URL))

	got, err := client.Alerts(context.Background())
	require.NoError(t, err)

	want := "Report from: 2024 Mar 01 1205 UTC\n" +
		"Solar-terrestrial indices for 29 February follow.\n" +
		"Solar flux 183 and estimated planetary A-index 7.\n" +
		"No space weather storms were observed for the past 24 hours."
	assert.Equal(t, want, got)
}

func TestAlertsUsesCache(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, &hits)
	client := NewClient(t.TempDir(), WithBaseURL(srv.URL))

	_, err := client.Alerts(context.Background())
	require.NoError(t, err)
	_, err = client.Alerts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load(), "second call should hit the cache")
}

func TestAlertsRefreshesStaleCache(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, &hits)
	dir := t.TempDir()
	client := NewClient(dir, WithBaseURL(srv.URL))

	_, err := client.Alerts(context.Background())
	require.NoError(t, err)

	// Age the cache file beyond the refresh window.
	stale := time.Now().Add(-2 * time.Hour)
	cachePath := filepath.Join(dir, "alerts.txt")
	require.NoError(t, os.Chtimes(cachePath, stale, stale))

	_, err = client.Alerts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestForecastDiscussionExtractsParagraph(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, &hits)
	client := NewClient(t.TempDir(), WithBaseURL(srv.URL))

	got, err := client.ForecastDiscussion(context.Background())
	require.NoError(t, err)
	assert.Equal(t,
		"Solar activity is expected to be low with a chance for M-class flares over the next three days.",
		got)
}

func TestConcurrentFetchCollapses(t *testing.T) {
	var hits atomic.Int32
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		time.Sleep(50 * time.Millisecond)
		_, _ = w.Write([]byte(wwvSample))
	}))
	t.Cleanup(slow.Close)

	client := NewClient(t.TempDir(), WithBaseURL(slow.URL))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Alerts(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), hits.Load(), "concurrent requests should share one download")
}

func TestFetchErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(t.TempDir(), WithBaseURL(srv.URL))
	_, err := client.Alerts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}
