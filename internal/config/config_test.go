package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "UPDATE_DIR", "UPDATE_CHANNEL", "UPDATE_PATH", "DOWNLOAD_BASE_URL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	require.NoError(t, Load())
	cwd, err := os.Getwd()
	require.NoError(t, err)

	require.Equal(t, "8080", Current.Port)
	require.Equal(t, cwd, Current.Directory)
	require.Equal(t, "nightly", Current.Channel)
	require.Equal(t, "http://update.boot2gecko.org", Current.DownloadBaseURL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("UPDATE_DIR", "/srv/updates/nightly")
	t.Setenv("UPDATE_CHANNEL", "stable")

	require.NoError(t, Load())
	require.Equal(t, "9090", Current.Port)
	require.Equal(t, "/srv/updates/nightly", Current.Directory)
	require.Equal(t, "stable", Current.Channel)
}

func TestResolvePath(t *testing.T) {
	c := Config{Directory: "/srv/updates/nightly/"}
	require.Equal(t, "nightly", c.ResolvePath())

	c.Path = "custom"
	require.Equal(t, "custom", c.ResolvePath())
}
