// Package main implements the shuffled server binary, which exposes one
// worker's shuffle output to the rest of the cluster over HTTP.
//
// The binary wires the external collaborators together: configuration from
// the environment, the shared block cache (populated in-process by the
// shuffle-write path), and the shuffle manager that owns the working
// directory and the serving endpoint.
//
// Configuration:
//   - SHUFFLED_LOCAL_DIR: root for working directories (default: temp dir)
//   - SHUFFLED_LOCAL_IP: bind/advertise address (default: "127.0.0.1")
//   - SHUFFLED_PORT: fixed port, unset or 0 for dynamic selection
//
// Example usage:
//
//	# Start on a dynamic port under /var/lib/shuffled
//	SHUFFLED_LOCAL_DIR=/var/lib/shuffled ./shuffled
//
//	# Probe liveness
//	curl http://127.0.0.1:<port>/status
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dreamware/shuffled/internal/cache"
	"github.com/dreamware/shuffled/internal/config"
	"github.com/dreamware/shuffled/internal/shuffle"
)

// logFatal is a variable to allow mocking log.Fatal in tests.
var logFatal = log.Fatalf

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		logFatal("config: %v", err)
	}

	blocks := cache.New()
	mgr, err := shuffle.New(cfg, blocks)
	if err != nil {
		logFatal("shuffle manager: %v", err)
	}

	log.Printf("shuffled serving @ %s (workdir %s)", mgr.ServerURI(), mgr.LocalDir())

	// The serve loop has no shutdown path; wait for a signal and exit.
	// Working directories are left on disk for the operator to reap.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shuffled stopped")
}
