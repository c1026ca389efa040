// Package filex resolves and prepares the directory holding local data.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDirName = "credkeeper"

// DefaultDataDir is the per-user data directory, e.g.
// ~/.config/credkeeper on Linux.
func DefaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// EnsureDataDir creates dir (or the default data dir when dir is empty)
// with owner-only permissions and returns its absolute path.
func EnsureDataDir(dir string) (string, error) {
	if dir == "" {
		d, err := DefaultDataDir()
		if err != nil {
			return "", err
		}
		dir = d
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}
