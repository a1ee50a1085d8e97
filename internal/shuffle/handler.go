package shuffle

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/dreamware/shuffled/internal/cache"
)

// Handler serves shuffle blocks over HTTP. Apart from the injected cache it
// holds no state, so a single instance safely serves all connections
// concurrently without locking of its own.
//
// Routes, matched on the raw path split at '/':
//
//	/status                                → 200, empty body (liveness)
//	/shuffle/{shuffle}/{input}/{reduce}    → cached block, 404 if absent
//	anything else                          → 400 with the offending path
type Handler struct {
	blocks *cache.Cache
}

// NewHandler creates a handler reading from the given shared cache. The
// handler never writes to the cache; population and eviction belong to the
// upstream shuffle-write path.
func NewHandler(blocks *cache.Cache) *Handler {
	return &Handler{blocks: blocks}
}

// ServeHTTP produces exactly one response per request. Every internal
// failure is mapped to a structured response; nothing propagates past this
// boundary.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(r.URL.Path, "/")
	switch {
	case len(parts) == 2 && parts[1] == "status":
		w.WriteHeader(http.StatusOK)
	case len(parts) == 5 && parts[1] == "shuffle":
		h.serveBlock(w, r, parts[2:])
	default:
		h.writeError(w, &ParseURIError{URI: r.URL.Path})
	}
}

// serveBlock answers /shuffle/{shuffle}/{input}/{reduce}. The cache read
// copies the matched bytes out under a shared lock, so the response body is
// independent of any later cache writes.
func (h *Handler) serveBlock(w http.ResponseWriter, r *http.Request, parts []string) {
	coord, err := parseCoordinate(parts)
	if err != nil {
		h.writeError(w, &ParseURIError{URI: r.URL.Path})
		return
	}

	block, err := h.blocks.Get(coord)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := w.Write(block); err != nil {
		log.Printf("error writing block %s: %v", coord, err)
	}
}

// parseCoordinate interprets three path segments as the unsigned integers
// of a shuffle coordinate.
func parseCoordinate(parts []string) (cache.Coordinate, error) {
	ids := make([]uint64, len(parts))
	for i, part := range parts {
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return cache.Coordinate{}, err
		}
		ids[i] = id
	}
	return cache.Coordinate{ShuffleID: ids[0], InputID: ids[1], ReduceID: ids[2]}, nil
}

// writeError converts an internal failure into its wire-level response.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status, body := errorResponse(err)
	w.WriteHeader(status)
	if len(body) > 0 {
		if _, werr := w.Write(body); werr != nil {
			log.Printf("error writing response: %v", werr)
		}
	}
}
