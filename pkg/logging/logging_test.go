package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwpeters/hilite/pkg/paths"
)

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	logger := GetLogger("engine")
	logger.Debug().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"engine"`)
	assert.Contains(t, buf.String(), "hello")
}

func TestSetupLoggerHonorsStateDirOverride(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv(paths.EnvStateDir, stateDir)

	SetupLogger(1)
	log.Info().Msg("state dir override marker")

	data, err := os.ReadFile(filepath.Join(stateDir, paths.LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "state dir override marker")
}

func TestLogDuration(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	start := time.Now().Add(-2 * time.Second)
	LogDuration(start, "highlight")

	output := buf.String()
	assert.Contains(t, output, "highlight")
	assert.Contains(t, output, "duration")
}
