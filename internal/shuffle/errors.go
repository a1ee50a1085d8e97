package shuffle

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dreamware/shuffled/internal/cache"
)

// Construction-time failures abort Manager creation; there is no retry
// above the bounded ones built into each step.
var (
	// ErrCouldNotCreateShuffleDir means working-directory allocation
	// exhausted its retry budget.
	ErrCouldNotCreateShuffleDir = errors.New("failed to create local shuffle dir after 10 attempts")

	// ErrFailedToStart means the server did not come up on the requested
	// endpoint within the startup grace window.
	ErrFailedToStart = errors.New("failed to start shuffle server")

	// ErrNotValidEndpoint marks a request that reached no recognized route.
	ErrNotValidEndpoint = errors.New("not valid endpoint")
)

// ParseURIError reports a request path that does not match any route or
// carries a non-numeric coordinate. It keeps only the offending path text,
// not the underlying parse diagnostic.
type ParseURIError struct {
	URI string
}

func (e *ParseURIError) Error() string {
	return fmt.Sprintf("incorrect URI sent in the request: %s", e.URI)
}

// FreePortNotFoundError reports dynamic port probing exhausting its retry
// budget; Port is the last port attempted.
type FreePortNotFoundError struct {
	Port int
}

func (e *FreePortNotFoundError) Error() string {
	return fmt.Sprintf("failed to find free port: %d", e.Port)
}

// errorResponse maps an internal failure to its wire-level status and body.
// It is a pure function of the error value: request-time failures become
// well-formed responses, never panics or dropped connections.
func errorResponse(err error) (status int, body []byte) {
	var parseErr *ParseURIError
	switch {
	case errors.As(err, &parseErr):
		return http.StatusBadRequest, []byte("Failed to parse: " + parseErr.URI)
	case errors.Is(err, cache.ErrNotFound):
		return http.StatusNotFound, nil
	case errors.Is(err, ErrFailedToStart):
		return http.StatusNotFound, nil
	default:
		return http.StatusInternalServerError, nil
	}
}
