// Package source loads the raw question payload. It tries the remote sheet
// export first, then the offline cache, then the bundled sample deck. The
// attempts are sequential and bounded: one fallback chain, no retry loops.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Aeffchen-dev/checkin-roulette/internal/store"
)

// Origin identifies which source in the chain produced the payload.
type Origin int

const (
	OriginRemote Origin = iota
	OriginCache
	OriginBundled
)

func (o Origin) String() string {
	switch o {
	case OriginRemote:
		return "remote"
	case OriginCache:
		return "cache"
	default:
		return "bundled"
	}
}

// Result is a loaded payload plus where it came from.
type Result struct {
	Raw    string
	Origin Origin
}

// maxPayloadSize caps how much of a response body is read.
const maxPayloadSize = 5 * 1024 * 1024

// Loader runs the fetch chain. A nil cache skips the cache stage. Callers
// must serialize Load calls; concurrent refreshes are not supported.
type Loader struct {
	url    string
	client *http.Client
	cache  *store.Store
	log    *zap.Logger
}

// New creates a Loader for the given sheet URL. An empty URL disables the
// remote stage.
func New(url string, cache *store.Store, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
		cache:  cache,
		log:    log,
	}
}

// Load walks the source chain and returns the first payload it finds. A
// successful remote fetch refreshes the cache. Load itself never fails,
// since the bundled sample is always available, but the returned origin
// tells the caller how degraded the result is.
func (l *Loader) Load(ctx context.Context) Result {
	if l.url != "" {
		raw, err := l.fetchRemote(ctx)
		if err == nil {
			if l.cache != nil {
				if err := l.cache.SavePayload(ctx, raw); err != nil {
					l.log.Warn("cache refresh failed", zap.Error(err))
				}
			}
			return Result{Raw: raw, Origin: OriginRemote}
		}
		l.log.Warn("remote fetch failed, falling back", zap.String("url", l.url), zap.Error(err))
	}

	if l.cache != nil {
		p, err := l.cache.LatestPayload(ctx)
		if err == nil {
			l.log.Info("serving cached payload", zap.Time("fetched_at", p.FetchedAt))
			return Result{Raw: p.Body, Origin: OriginCache}
		}
		if !errors.Is(err, store.ErrNoPayload) {
			l.log.Warn("cache read failed", zap.Error(err))
		}
	}

	return Result{Raw: sampleDeck, Origin: OriginBundled}
}

// fetchRemote downloads the sheet export once.
func (l *Loader) fetchRemote(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "checkin-roulette/1.0")

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadSize))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	return string(body), nil
}
