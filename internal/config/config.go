package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Directory       string
	Channel         string
	Path            string
	DownloadBaseURL string
}

var Current Config

// Load fills Current from .env / environment variables with defaults suitable
// for local use. CLI flags may override individual fields afterwards.
func Load() error {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	Current = Config{
		Port:            getenv("APP_PORT", "8080"),
		Directory:       getenv("UPDATE_DIR", cwd),
		Channel:         getenv("UPDATE_CHANNEL", "nightly"),
		Path:            os.Getenv("UPDATE_PATH"),
		DownloadBaseURL: getenv("DOWNLOAD_BASE_URL", "http://update.boot2gecko.org"),
	}
	return nil
}

// ResolvePath returns the manifest path segment: UPDATE_PATH when set,
// otherwise the base name of the update directory.
func (c *Config) ResolvePath() string {
	if c.Path != "" {
		return c.Path
	}
	return filepath.Base(filepath.Clean(c.Directory))
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
