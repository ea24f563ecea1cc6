// pkg/logging/logging_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Temp state directory
// PURPOSE: Test logger setup, level mapping and helper output

package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/johnmorse/rhinoinsertcommand/pkg/logging"
	"github.com/johnmorse/rhinoinsertcommand/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv(paths.EnvStateDir, "")
			t.Setenv("XDG_STATE_HOME", tempDir)

			var console bytes.Buffer
			logging.SetupLoggerWithOutput(tt.verbosity, &console, true)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "blockinsert", "blockinsert.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger := logging.GetLogger("resolve.Engine")
	logger.Info().Msg("scanning")

	assert.Contains(t, buf.String(), `"component":"resolve.Engine"`)
	assert.Contains(t, buf.String(), "scanning")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger := logging.WithFields(map[string]interface{}{
		"block": "Chair",
		"count": 2,
	})
	logger.Info().Msg("fields")

	assert.Contains(t, buf.String(), `"block":"Chair"`)
	assert.Contains(t, buf.String(), `"count":2`)
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	logging.LogCommand("insert", []string{"box.3dm", "--as", "block"})

	output := buf.String()
	assert.Contains(t, output, "insert")
	assert.Contains(t, output, "box.3dm")
	assert.Contains(t, output, "Executing command")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := logging.LogOperationStart(logger, "commit")
	done()

	output := buf.String()
	assert.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, "duration")
}
