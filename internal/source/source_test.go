package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aeffchen-dev/checkin-roulette/internal/deck"
	"github.com/Aeffchen-dev/checkin-roulette/internal/store"
)

func testCache(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoad_RemoteSuccessRefreshesCache(t *testing.T) {
	const payload = "team,remote question,deep\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	cache := testCache(t)
	l := New(srv.URL, cache, nil)

	res := l.Load(context.Background())
	assert.Equal(t, OriginRemote, res.Origin)
	assert.Equal(t, payload, res.Raw)

	cached, err := cache.LatestPayload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, payload, cached.Body)
}

func TestLoad_NonSuccessStatusFallsBackToCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cache := testCache(t)
	const cachedPayload = "team,cached question,deep\n"
	require.NoError(t, cache.SavePayload(context.Background(), cachedPayload))

	l := New(srv.URL, cache, nil)
	res := l.Load(context.Background())

	assert.Equal(t, OriginCache, res.Origin)
	assert.Equal(t, cachedPayload, res.Raw)
}

func TestLoad_TransportErrorWithEmptyCacheUsesBundledDeck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	l := New(srv.URL, testCache(t), nil)
	res := l.Load(context.Background())

	assert.Equal(t, OriginBundled, res.Origin)
	assert.NotEmpty(t, res.Raw)
}

func TestLoad_NoURLSkipsRemote(t *testing.T) {
	l := New("", testCache(t), nil)
	res := l.Load(context.Background())

	assert.Equal(t, OriginBundled, res.Origin)
}

func TestLoad_NilCacheIsFine(t *testing.T) {
	l := New("", nil, nil)
	res := l.Load(context.Background())

	assert.Equal(t, OriginBundled, res.Origin)
	assert.NotEmpty(t, res.Raw)
}

// The bundled deck must itself be a valid payload: parseable, multiple
// categories, an intro row, and at least one light question so light mode
// is never empty out of the box.
func TestBundledDeckIsUsable(t *testing.T) {
	records := deck.Parse(sampleDeck)
	require.NotEmpty(t, records)

	intro, rest := deck.ExtractIntro(records, deck.IntroReservedCategory, deck.DefaultIntroCategory)
	require.NotNil(t, intro)
	assert.NotEmpty(t, intro.Text)

	cats := deck.Categories(rest)
	assert.GreaterOrEqual(t, len(cats), 3)

	light := 0
	for _, r := range rest {
		if r.Depth == deck.DepthLight {
			light++
		}
	}
	assert.Greater(t, light, 0)
}
