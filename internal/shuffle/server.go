package shuffle

import (
	"fmt"
	"log"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"time"
)

const (
	// IANA dynamic/ephemeral port range, sampled half-open: [first, last).
	firstDynamicPort = 49152
	lastDynamicPort  = 65535

	// portAttempts bounds dynamic port probing.
	portAttempts = 10

	// startupGrace is how long the constructor waits for an immediate
	// serve failure before assuming the server started. Absence of a
	// failure signal within the window is treated as success; a true
	// steady-state failure after the window is not reported back.
	startupGrace = 100 * time.Millisecond
)

// startServer acquires a listening endpoint for handler and returns the
// externally visible server URI.
//
// With a non-zero port a single bind attempt is made and any failure is
// reported as ErrFailedToStart. With port zero the dynamic range is sampled
// uniformly, skipping ports that already failed in this probe loop, for up
// to portAttempts tries; exhaustion yields FreePortNotFoundError carrying
// the last port attempted.
func startServer(bindIP string, port int, handler http.Handler) (string, error) {
	if port != 0 {
		if err := launchServer(bindIP, port, handler); err != nil {
			return "", ErrFailedToStart
		}
		return serverURI(bindIP, port), nil
	}

	tried := make(map[int]bool, portAttempts)
	var candidate int
	for i := 0; i < portAttempts; i++ {
		candidate = dynamicPort()
		for tried[candidate] {
			candidate = dynamicPort()
		}
		tried[candidate] = true

		if err := launchServer(bindIP, candidate, handler); err == nil {
			return serverURI(bindIP, candidate), nil
		}
	}
	return "", &FreePortNotFoundError{Port: candidate}
}

// launchServer binds the address synchronously, then serves on a background
// goroutine that runs until process exit; there is no shutdown path. Serve
// failures within startupGrace of launch are handed back through a
// single-slot channel so the caller can still fail its construction;
// after the window the server is assumed up.
func launchServer(bindIP string, port int, handler http.Handler) error {
	addr := net.JoinHostPort(bindIP, strconv.Itoa(port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second, // Prevent slowloris attacks
	}

	errs := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			errs <- err
		}
	}()

	select {
	case err := <-errs:
		return err
	case <-time.After(startupGrace):
		log.Printf("started shuffle server @ %s", addr)
	}
	return nil
}

// dynamicPort samples a port uniformly from [firstDynamicPort, lastDynamicPort).
func dynamicPort() int {
	return firstDynamicPort + rand.Intn(lastDynamicPort-firstDynamicPort)
}

// serverURI composes the URI remote workers use to reach this server. It
// stays valid for the whole process lifetime.
func serverURI(bindIP string, port int) string {
	return fmt.Sprintf("http://%s:%d", bindIP, port)
}
