package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// dotEnvFiles are read in this order; the first file to set a variable wins
var dotEnvFiles = []string{".env.local", ".env"}

// LoadDotEnv exports the variables from .env.local and .env in dir into the
// process environment. Variables already set in the environment are kept, so a
// real MARQUEE_TMDB_TOKEN beats either file. Returns the files that were read.
func LoadDotEnv(dir string) ([]string, error) {
	var found []string
	for _, name := range dotEnvFiles {
		path := filepath.Join(dir, name)
		_, err := os.Stat(path)
		switch {
		case err == nil:
			found = append(found, path)
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}
	if len(found) == 0 {
		return nil, nil
	}

	if err := godotenv.Load(found...); err != nil {
		return nil, fmt.Errorf("failed to load %v: %w", found, err)
	}
	return found, nil
}
