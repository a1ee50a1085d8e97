package shuffle

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// workDirAttempts bounds the collision-avoidance loop. A random token makes
// real collisions negligible; the cap only turns a pathological run of
// collisions into an error instead of an infinite loop.
const workDirAttempts = 10

// workDirPrefix names working directories so operators can recognize (and
// manually clean up) leftovers from dead processes.
const workDirPrefix = "spark-local-"

// allocWorkDir creates a uniquely named working directory under root along
// with its nested shuffle directory, and returns both paths.
//
// Each attempt combines the fixed prefix with a fresh random token; a
// candidate that already exists on disk is discarded and a new token drawn.
// After workDirAttempts failed candidates it gives up with
// ErrCouldNotCreateShuffleDir. The directory is never removed afterwards;
// cleanup of abandoned working directories is left to the operator.
func allocWorkDir(root string) (localDir, shuffleDir string, err error) {
	for i := 0; i < workDirAttempts; i++ {
		candidate := filepath.Join(root, workDirPrefix+uuid.NewString())
		if _, err := os.Stat(candidate); err == nil {
			// Token collision with an existing directory; draw again.
			continue
		}

		shuffleDir := filepath.Join(candidate, "shuffle")
		if err := os.MkdirAll(shuffleDir, 0o755); err != nil {
			return "", "", fmt.Errorf("create shuffle dir %s: %w", shuffleDir, err)
		}
		log.Printf("created working directory %s", candidate)
		return candidate, shuffleDir, nil
	}
	return "", "", ErrCouldNotCreateShuffleDir
}
