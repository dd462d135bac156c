package store

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DBEnv overrides the database location.
	DBEnv = "MATHADV_DB"

	appDir = "mathadv"
	dbFile = "mathadv.db"
)

// DefaultDBPath picks the database file: $MATHADV_DB if set, otherwise
// mathadv/mathadv.db under $XDG_DATA_HOME or ~/.local/share. The parent
// directory is created.
func DefaultDBPath() (string, error) {
	if p := os.Getenv(DBEnv); p != "" {
		return p, EnsureDir(p)
	}

	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(base, appDir, dbFile)
	return p, EnsureDir(p)
}

// EnsureDir creates the directory that will hold path.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
