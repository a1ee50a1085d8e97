package shuffle

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dreamware/shuffled/internal/cache"
)

var httpClient = &http.Client{Timeout: 5 * time.Second}

// FetchBlock retrieves one shuffle block from a peer's shuffle server.
//
// serverURI is the peer's advertised URI ("http://host:port") as published
// by its Manager; how callers learn it is up to the surrounding engine.
// Returns cache.ErrNotFound when the peer has no block for the coordinate,
// so reduce-side callers can distinguish "not produced yet" from transport
// failures.
func FetchBlock(ctx context.Context, serverURI string, coord cache.Coordinate) ([]byte, error) {
	url := fmt.Sprintf("%s/shuffle/%s", serverURI, coord)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return io.ReadAll(resp.Body)
	case http.StatusNotFound:
		return nil, cache.ErrNotFound
	default:
		return nil, fmt.Errorf("http %s: %d", url, resp.StatusCode)
	}
}
