package shuffle

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamware/shuffled/internal/cache"
)

// getFreePort finds a currently unbound port in the dynamic range. The port
// could in principle be taken between the probe and the test's own bind,
// but the window is tiny and the range large.
func getFreePort(t *testing.T) int {
	t.Helper()
	for i := 0; i < 100; i++ {
		port := dynamicPort()
		ln, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
		if err == nil {
			ln.Close()
			return port
		}
	}
	t.Fatal("failed to find free port while testing")
	return 0
}

// TestStartFixedPort verifies that a fixed free port comes up serving and
// answers the liveness probe.
func TestStartFixedPort(t *testing.T) {
	port := getFreePort(t)

	uri, err := startServer("127.0.0.1", port, NewHandler(cache.New()))
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:"+strconv.Itoa(port), uri)

	res, err := http.Get(uri + "/status")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

// TestStartFixedPortInUse verifies that a port already bound by another
// listener fails construction with the failed-to-start condition.
func TestStartFixedPortInUse(t *testing.T) {
	port := getFreePort(t)

	// Bind first so the server cannot.
	ln, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
	require.NoError(t, err)
	defer ln.Close()

	_, err = startServer("127.0.0.1", port, NewHandler(cache.New()))
	assert.ErrorIs(t, err, ErrFailedToStart)
}

// TestStartDynamicPort verifies that dynamic selection adopts a port in the
// dynamic range and the server answers on it.
func TestStartDynamicPort(t *testing.T) {
	uri, err := startServer("127.0.0.1", 0, NewHandler(cache.New()))
	require.NoError(t, err)

	portStr := uri[strings.LastIndex(uri, ":")+1:]
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, port, firstDynamicPort)
	assert.Less(t, port, lastDynamicPort)

	res, err := http.Get(uri + "/status")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

// TestDynamicPortRange verifies sampling stays inside [49152, 65535).
func TestDynamicPortRange(t *testing.T) {
	for i := 0; i < 10000; i++ {
		port := dynamicPort()
		require.GreaterOrEqual(t, port, firstDynamicPort)
		require.Less(t, port, lastDynamicPort)
	}
}

// TestServerURI verifies URI composition.
func TestServerURI(t *testing.T) {
	assert.Equal(t, "http://10.0.0.5:49200", serverURI("10.0.0.5", 49200))
}
