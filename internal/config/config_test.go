package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every override so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DUNGEON_SEED", "DUNGEON_TURN_DELAY", "DUNGEON_INTRO_DURATION", "DUNGEON_REVEAL_DELAY",
		"DUNGEON_MESSAGE_DURATION", "DUNGEON_TITLE_DELAY", "DUNGEON_SHUFFLE_DURATION",
		"DUNGEON_LOG_FILE", "DUNGEON_TELEMETRY", "HONEYCOMB_DUNGEON_API_KEY", "HONEYCOMB_DUNGEON_DATASET",
	} {
		t.Setenv(key, "")
	}
	// Keep godotenv away from any .env next to the package.
	chdir(t, t.TempDir())
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dungeonsgambit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, int64(0), c.Seed)
	assert.Equal(t, time.Second, c.TurnDelay)
	assert.Equal(t, 2*time.Second, c.IntroDuration)
	assert.Equal(t, 2*time.Second, c.RevealDelay)
	assert.Equal(t, 2*time.Second, c.MessageDuration)
	assert.Equal(t, 2*time.Second, c.TitleDelay)
	assert.Equal(t, 1500*time.Millisecond, c.ShuffleDuration)
	assert.Equal(t, 33*time.Millisecond, c.FrameInterval)
	assert.Equal(t, "dungeonsgambit", c.Telemetry.Dataset)
	assert.False(t, c.Telemetry.Enabled)
	assert.NoError(t, c.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), *c)
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
seed: 42
turn_delay: 500ms
shuffle_duration: 3s
log_file: run.log
telemetry:
  enabled: true
  api_key: abc
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), c.Seed)
	assert.Equal(t, 500*time.Millisecond, c.TurnDelay)
	assert.Equal(t, 3*time.Second, c.ShuffleDuration)
	assert.Equal(t, 2*time.Second, c.IntroDuration, "unset fields take defaults")
	assert.Equal(t, "run.log", c.LogFile)
	assert.True(t, c.Telemetry.Enabled)
	assert.Equal(t, "abc", c.Telemetry.APIKey)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "seed: 1\nturn_delay: 5s\n")
	t.Setenv("DUNGEON_SEED", "7")
	t.Setenv("DUNGEON_TURN_DELAY", "250ms")
	t.Setenv("DUNGEON_REVEAL_DELAY", "1s")
	t.Setenv("DUNGEON_LOG_FILE", "/tmp/gambit.log")
	t.Setenv("HONEYCOMB_DUNGEON_API_KEY", "key")
	t.Setenv("HONEYCOMB_DUNGEON_DATASET", "runs")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.Seed)
	assert.Equal(t, 250*time.Millisecond, c.TurnDelay)
	assert.Equal(t, time.Second, c.RevealDelay)
	assert.Equal(t, "/tmp/gambit.log", c.LogFile)
	assert.True(t, c.Telemetry.Enabled, "an API key enables export")
	assert.Equal(t, "key", c.Telemetry.APIKey)
	assert.Equal(t, "runs", c.Telemetry.Dataset)
}

func TestLoadTelemetryKillSwitch(t *testing.T) {
	clearEnv(t)
	t.Setenv("HONEYCOMB_DUNGEON_API_KEY", "key")
	t.Setenv("DUNGEON_TELEMETRY", "false")

	c, err := Load("")
	require.NoError(t, err)
	assert.False(t, c.Telemetry.Enabled)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
		want string
	}{
		{name: "bad yaml", file: "seed: [", want: "parse config"},
		{name: "bad seed", env: map[string]string{"DUNGEON_SEED": "abc"}, want: "DUNGEON_SEED"},
		{name: "bad duration", env: map[string]string{"DUNGEON_TITLE_DELAY": "soon"}, want: "DUNGEON_TITLE_DELAY"},
		{name: "bad bool", env: map[string]string{"DUNGEON_TELEMETRY": "maybe"}, want: "DUNGEON_TELEMETRY"},
		{name: "negative delay", file: "turn_delay: -1s", want: "turn_delay must not be negative"},
		{name: "negative frame", file: "frame_interval: -5ms", want: "frame_interval must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.file != "" {
				path = writeFile(t, tt.file)
			}
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
