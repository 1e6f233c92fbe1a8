package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves the test into a temp directory so no project config leaks in.
func chdirTemp(t *testing.T) {
	t.Helper()
	tmp := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv() - they are incompatible
	chdirTemp(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000/api/v1", cfg.APIURL)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Equal(t, 10, cfg.MaxGalleryImages)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.LogFile)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TOURDECK_API_URL", "https://catalog.example.com/api/v1")
	t.Setenv("TOURDECK_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://catalog.example.com/api/v1", cfg.APIURL)
	assert.Equal(t, 5, cfg.TimeoutSeconds)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
}

func TestWriteGlobalRoundTrip(t *testing.T) {
	chdirTemp(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	in := &Config{
		APIURL:           "http://api.internal:9000/v1",
		TimeoutSeconds:   45,
		MaxGalleryImages: 12,
		LogLevel:         "debug",
	}
	require.NoError(t, WriteGlobal(in))

	// Config file should land under the XDG dir
	_, statErr := os.Stat(GlobalPath())
	require.NoError(t, statErr)
	assert.Equal(t, filepath.Base(GlobalPath()), "tourdeck.yml")

	cfg, loadErr := Load()
	require.NoError(t, loadErr)
	assert.Equal(t, in.APIURL, cfg.APIURL)
	assert.Equal(t, in.TimeoutSeconds, cfg.TimeoutSeconds)
	assert.Equal(t, in.MaxGalleryImages, cfg.MaxGalleryImages)
	assert.Equal(t, in.LogLevel, cfg.LogLevel)
}

func TestProjectOverridesGlobal(t *testing.T) {
	chdirTemp(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, WriteGlobal(&Config{APIURL: "http://global/api", TimeoutSeconds: 30, MaxGalleryImages: 10, LogLevel: "info"}))
	require.NoError(t, WriteProject(&Config{APIURL: "http://project/api", TimeoutSeconds: 30, MaxGalleryImages: 10, LogLevel: "info"}))

	cfg, loadErr := Load()
	require.NoError(t, loadErr)
	assert.Equal(t, "http://project/api", cfg.APIURL)
}

func TestTimeoutFloor(t *testing.T) {
	cfg := &Config{TimeoutSeconds: 0}
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}
