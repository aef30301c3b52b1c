package config

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads the given .env files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Printf("config: no %s file, using environment variables", file)
				continue
			}
			return err
		}
	}
	return nil
}

// PrintEnabled reports whether the settings table should be printed at
// startup. It is read before the registry exists.
func PrintEnabled() bool {
	v, ok := os.LookupEnv(PRINT_SETTINGS)
	if !ok || v == "" {
		return true
	}
	return v == "1" || v == "true" || v == "yes"
}
