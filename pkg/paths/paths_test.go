package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDir_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfigDir, "/tmp/custom-config")
	assert.Equal(t, "/tmp/custom-config", ConfigDir())
}

func TestStateDir_EnvOverride(t *testing.T) {
	t.Setenv(EnvStateDir, "/tmp/custom-state")
	assert.Equal(t, "/tmp/custom-state", StateDir())
	assert.Equal(t, filepath.Join("/tmp/custom-state", LogFileName), LogFilePath())
}

func TestUserConfigPath(t *testing.T) {
	t.Setenv(EnvConfigDir, "/tmp/cfg")
	assert.Equal(t, filepath.Join("/tmp/cfg", UserConfigFile), UserConfigPath())
}

func TestFindProjectConfig(t *testing.T) {
	t.Run("none_present", func(t *testing.T) {
		dir := t.TempDir()
		assert.Equal(t, "", FindProjectConfig(dir))
	})

	t.Run("prefers_dotted_name", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "hilite.toml"), []byte(""), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".hilite.toml"), []byte(""), 0644))
		assert.Equal(t, filepath.Join(dir, ".hilite.toml"), FindProjectConfig(dir))
	})

	t.Run("ignores_directories", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".hilite.toml"), 0755))
		assert.Equal(t, "", FindProjectConfig(dir))
	})
}
