// Package config provides the read-only settings consumed by the shuffle
// subsystem. Values come from the environment with sensible defaults, so a
// process can run with no configuration at all during development.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the settings the shuffle manager needs from the surrounding
// process. It is read once at startup and never mutated afterwards.
type Config struct {
	// LocalDir is the root under which per-process working directories
	// are created. Defaults to the OS temp directory.
	LocalDir string

	// LocalIP is the address the shuffle server binds to and advertises
	// in its server URI. Defaults to 127.0.0.1.
	LocalIP string

	// ShuffleSvcPort is the fixed port for the shuffle server. Zero means
	// pick a port from the dynamic range.
	ShuffleSvcPort int
}

// FromEnv builds a Config from the environment:
//
//	SHUFFLED_LOCAL_DIR - working directory root (default: os.TempDir())
//	SHUFFLED_LOCAL_IP  - bind/advertise address (default: "127.0.0.1")
//	SHUFFLED_PORT      - fixed port, 0 or unset for dynamic selection
//
// A SHUFFLED_PORT value that is not a valid port number is an error rather
// than a silent fallback to dynamic selection.
func FromEnv() (*Config, error) {
	cfg := &Config{
		LocalDir: getenv("SHUFFLED_LOCAL_DIR", os.TempDir()),
		LocalIP:  getenv("SHUFFLED_LOCAL_IP", "127.0.0.1"),
	}

	if v := os.Getenv("SHUFFLED_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port < 0 || port > 65535 {
			return nil, fmt.Errorf("invalid SHUFFLED_PORT %q", v)
		}
		cfg.ShuffleSvcPort = port
	}

	return cfg, nil
}

// getenv retrieves an environment variable with a default fallback value.
func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
