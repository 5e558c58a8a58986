package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads the first .env found in the working directory or its parent.
// Existing env vars are never overridden. It returns the loaded path, or "" if none.
func LoadDotEnv() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return loadFirst(
		filepath.Join(wd, ".env"),
		filepath.Join(filepath.Dir(wd), ".env"),
	)
}

func loadFirst(paths ...string) (string, error) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return "", err
		}
		return path, nil
	}
	return "", nil
}
