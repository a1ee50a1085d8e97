package shuffle

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dreamware/shuffled/internal/cache"
	"github.com/dreamware/shuffled/internal/config"
)

// Manager owns the local shuffle working area and the HTTP server that
// exposes cached blocks to remote workers.
//
// One Manager is created at engine startup and lives until process exit.
// It is immutable after construction: the working directory never moves and
// the server URI never changes, so the URI is safe to hand to remote peers
// for the lifetime of the process. There is no Stop: the serve loop runs
// until the process exits, and on-disk artifacts are not cleaned up.
type Manager struct {
	localDir   string // Process-exclusive working directory
	shuffleDir string // localDir/shuffle, root for partition files
	serverURI  string // http://{local_ip}:{port}, stable for process life
}

// New allocates the working directory, starts the shuffle server, and
// returns the manager handle.
//
// Failures here (directory allocation exhausted, no free port, server not
// starting) are construction-fatal and must propagate into the engine's own
// startup failure path; each step already applies its bounded retries.
func New(cfg *config.Config, blocks *cache.Cache) (*Manager, error) {
	localDir, shuffleDir, err := allocWorkDir(cfg.LocalDir)
	if err != nil {
		return nil, err
	}

	uri, err := startServer(cfg.LocalIP, cfg.ShuffleSvcPort, NewHandler(blocks))
	if err != nil {
		return nil, err
	}

	return &Manager{
		localDir:   localDir,
		shuffleDir: shuffleDir,
		serverURI:  uri,
	}, nil
}

// ServerURI returns the URI remote workers use to fetch blocks from this
// process.
func (m *Manager) ServerURI() string {
	return m.serverURI
}

// LocalDir returns the process-exclusive working directory.
func (m *Manager) LocalDir() string {
	return m.localDir
}

// ShuffleDir returns the root under which partition files are placed.
func (m *Manager) ShuffleDir() string {
	return m.shuffleDir
}

// GetOutputFile resolves the on-disk path for one output partition,
// creating the containing directories and an empty file at the target.
//
// The layout is shuffleDir/{shuffleID}/{inputID}/{outputID}. Directory
// creation is idempotent, but the file is truncated on every call, so a
// coordinate must not be resolved again after data worth keeping has been
// written to it.
func (m *Manager) GetOutputFile(shuffleID, inputID, outputID uint64) (string, error) {
	dir := filepath.Join(m.shuffleDir,
		strconv.FormatUint(shuffleID, 10),
		strconv.FormatUint(inputID, 10))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create partition dir %s: %w", dir, err)
	}

	path := filepath.Join(dir, strconv.FormatUint(outputID, 10))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create partition file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
