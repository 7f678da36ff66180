package updates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadApplication(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "application_20130101000000.ini")
	content := "[App]\nBuildID=20130101000000\nVersion=1.0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	app, err := LoadApplication(path)
	require.NoError(t, err)
	require.Equal(t, "20130101000000", app.BuildID)
	require.Equal(t, "1.0", app.Version)
}

func TestLoadApplicationMissingKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "application_x.ini")
	require.NoError(t, os.WriteFile(path, []byte("[App]\nBuildID=1\n"), 0o644))

	_, err := LoadApplication(path)
	require.Error(t, err)
}

func TestLoadApplicationMissingFile(t *testing.T) {
	_, err := LoadApplication(filepath.Join(t.TempDir(), "application_none.ini"))
	require.Error(t, err)
}
