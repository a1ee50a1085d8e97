package shuffle

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamware/shuffled/internal/cache"
)

// TestHandlerStatus verifies the liveness endpoint responds 200 with an
// empty body.
func TestHandlerStatus(t *testing.T) {
	h := NewHandler(cache.New())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/status", nil))

	assert.Equal(t, 200, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

// TestHandlerBlockHit verifies a cached block is returned byte-for-byte.
func TestHandlerBlockHit(t *testing.T) {
	blocks := cache.New()
	blocks.Put(cache.Coordinate{ShuffleID: 2, InputID: 1, ReduceID: 0}, []byte("some random bytes"))
	h := NewHandler(blocks)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/shuffle/2/1/0", nil))

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, []byte("some random bytes"), rec.Body.Bytes())
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
}

// TestHandlerBlockMiss verifies an absent coordinate yields 404 with an
// empty body.
func TestHandlerBlockMiss(t *testing.T) {
	h := NewHandler(cache.New())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/shuffle/0/1/2", nil))

	assert.Equal(t, 404, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

// TestHandlerBadPaths verifies every unrecognized or malformed path shape
// yields 400 with the offending path echoed in the body.
func TestHandlerBadPaths(t *testing.T) {
	blocks := cache.New()
	blocks.Put(cache.Coordinate{ShuffleID: 2, InputID: 1, ReduceID: 0}, []byte("x"))
	h := NewHandler(blocks)

	paths := []string{
		"/not_valid",
		"/",
		"/shuffle",
		"/shuffle/2/1",
		"/shuffle/2/1/0/extra",
		"/shuffle/a/1/0",
		"/shuffle/2/-1/0",
		"/shuffle/2/1/0.5",
		"/status/extra",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))

			assert.Equal(t, 400, rec.Code)
			assert.Equal(t, "Failed to parse: "+path, rec.Body.String())
		})
	}
}

// TestParseCoordinate covers the segment parser directly.
func TestParseCoordinate(t *testing.T) {
	coord, err := parseCoordinate([]string{"2", "1", "0"})
	require.NoError(t, err)
	assert.Equal(t, cache.Coordinate{ShuffleID: 2, InputID: 1, ReduceID: 0}, coord)

	_, err = parseCoordinate([]string{"2", "one", "0"})
	assert.Error(t, err)
}
