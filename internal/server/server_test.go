package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/initstate/pkg/cache"
	"github.com/matzehuels/initstate/pkg/pipeline"
)

const stateJSON = `[
  {"id": "plot", "type": "ReducedDimensionPlot", "width": 6},
  {"id": "assay", "type": "FeatureAssayPlot", "width": 6, "selection_source": "plot"}
]`

func newTestServer(t *testing.T, content string) (*Server, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	logger := log.New(io.Discard)
	opts := pipeline.DefaultOptions()
	opts.Files = []string{path}
	s := New(Config{
		Addr:    "127.0.0.1:0",
		Runner:  pipeline.NewRunner(cache.NewMemoryCache(), nil, logger),
		Options: opts,
		Logger:  logger,
	})
	return s, path
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	s, _ := newTestServer(t, stateJSON)
	require.NoError(t, s.Reload(context.Background()))

	tests := []struct {
		path        string
		contentType string
		contains    string
	}{
		{"/", "text/html; charset=utf-8", "2 panels in 1 rows"},
		{"/tiles.svg", "image/svg+xml", `id="tile-plot"`},
		{"/network.svg", "image/svg+xml", "<svg"},
		{"/network.html", "text/html; charset=utf-8", "vis-network"},
		{"/panels.json", "application/json", `"selection_source": "plot"`},
		{"/grid.json", "application/json", `"columns": 12`},
		{"/graph.json", "application/json", `"from": "plot"`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, s.Handler(), tt.path)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t, stateJSON)
	require.NoError(t, s.Reload(context.Background()))

	rec := get(t, s.Handler(), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 2, resp.Panels)
	assert.NotEmpty(t, resp.Revision)
}

func TestETag(t *testing.T) {
	s, _ := newTestServer(t, stateJSON)
	require.NoError(t, s.Reload(context.Background()))

	rec := get(t, s.Handler(), "/network.svg")
	require.Equal(t, http.StatusOK, rec.Code)
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	conditional := func() int {
		req := httptest.NewRequest(http.MethodGet, "/network.svg", nil)
		req.Header.Set("If-None-Match", etag)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		return rec.Code
	}
	assert.Equal(t, http.StatusNotModified, conditional())

	require.NoError(t, s.Reload(context.Background()))
	assert.Equal(t, http.StatusOK, conditional(), "a reload invalidates the tag")
}

func TestNotLoaded(t *testing.T) {
	s, _ := newTestServer(t, stateJSON)

	rec := get(t, s.Handler(), "/tiles.svg")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = get(t, s.Handler(), "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nothing loaded yet")
}

func TestReloadFailureKeepsLastResult(t *testing.T) {
	s, path := newTestServer(t, stateJSON)
	require.NoError(t, s.Reload(context.Background()))

	require.NoError(t, os.WriteFile(path, []byte(`[{"type": "NotAPanel"}]`), 0o644))
	require.Error(t, s.Reload(context.Background()))

	rec := get(t, s.Handler(), "/tiles.svg")
	assert.Equal(t, http.StatusOK, rec.Code, "last good result is still served")

	rec = get(t, s.Handler(), "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNRECOGNIZED_PANEL_TYPE")

	rec = get(t, s.Handler(), "/")
	assert.Contains(t, rec.Body.String(), `class="error"`)
}

func TestWatchReloads(t *testing.T) {
	s, path := newTestServer(t, stateJSON)
	s.watch = true
	require.NoError(t, s.Reload(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.watchFiles(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// Give the watcher time to register the directory.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`[{"type": "RowDataTable"}]`), 0o644))

	assert.Eventually(t, func() bool {
		st := s.snapshot()
		return st.result != nil && st.result.Stats.Panels == 1
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatchNoReloadAfterCancel(t *testing.T) {
	s, path := newTestServer(t, stateJSON)
	require.NoError(t, s.Reload(context.Background()))
	before := s.snapshot().revision

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.watchFiles(ctx) }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`[{"type": "RowDataTable"}]`), 0o644))
	time.Sleep(reloadDebounce / 4)
	cancel()
	require.NoError(t, <-done)

	time.Sleep(3 * reloadDebounce)
	assert.Equal(t, before, s.snapshot().revision, "no reload once the watcher has returned")
}

func TestServeShutdown(t *testing.T) {
	s, _ := newTestServer(t, stateJSON)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()

	assert.Eventually(t, func() bool {
		return s.snapshot().result != nil
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
