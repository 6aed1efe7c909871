package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		APIKeyEnv,
		"SKYCAST_WEATHER_URL",
		"SKYCAST_ICON_URL",
		"SKYCAST_HTTP_TIMEOUT",
		"SKYCAST_RATE_LIMIT",
		"SKYCAST_RATE_BURST",
		"SKYCAST_LOG_DIR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	c := Load()
	assert.False(t, c.HasAPIKey())
	assert.Equal(t, DefaultWeatherURL, c.WeatherURL)
	assert.Equal(t, DefaultIconURL, c.IconURL)
	assert.Zero(t, c.HTTPTimeout, "no client timeout unless configured")
	assert.Equal(t, DefaultRateLimit, c.RateLimit)
	assert.Equal(t, DefaultRateBurst, c.RateBurst)
	assert.Equal(t, DefaultLogDir, c.LogDir)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(APIKeyEnv, "  secret  ")
	t.Setenv("SKYCAST_WEATHER_URL", "http://localhost:8080/weather")
	t.Setenv("SKYCAST_ICON_URL", "http://localhost:8080/img/")
	t.Setenv("SKYCAST_HTTP_TIMEOUT", "3s")
	t.Setenv("SKYCAST_RATE_LIMIT", "2.5")
	t.Setenv("SKYCAST_RATE_BURST", "10")
	t.Setenv("SKYCAST_LOG_DIR", "/tmp/skycast-logs")

	c := Load()
	assert.True(t, c.HasAPIKey())
	assert.Equal(t, "secret", c.APIKey)
	assert.Equal(t, "http://localhost:8080/weather", c.WeatherURL)
	assert.Equal(t, "http://localhost:8080/img", c.IconURL, "trailing slash is dropped")
	assert.Equal(t, 3*time.Second, c.HTTPTimeout)
	assert.Equal(t, 2.5, c.RateLimit)
	assert.Equal(t, 10, c.RateBurst)
	assert.Equal(t, "/tmp/skycast-logs", c.LogDir)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("SKYCAST_HTTP_TIMEOUT", "soon")
	t.Setenv("SKYCAST_RATE_LIMIT", "-1")
	t.Setenv("SKYCAST_RATE_BURST", "many")

	c := Load()
	assert.Equal(t, DefaultHTTPTimeout, c.HTTPTimeout)
	assert.Equal(t, DefaultRateLimit, c.RateLimit)
	assert.Equal(t, DefaultRateBurst, c.RateBurst)
}

func TestVerifyLogDirectoryCreatesIt(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	c := &Config{LogDir: dir}

	got, err := c.VerifyLogDirectory()
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInitLoggerWritesToFile(t *testing.T) {
	dir := t.TempDir()

	path, err := InitLogger(dir)
	require.NoError(t, err)
	t.Cleanup(CloseLogger)

	assert.Equal(t, filepath.Join(dir, LogFileName), path)
	assert.Equal(t, path, LogFilePath())

	CloseLogger()
	assert.Empty(t, LogFilePath())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "Logger initialized"))
}

func TestRotatingFileRotatesOversizedLogOnOpen(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, LogFileName)

	require.NoError(t, os.WriteFile(base+".1", []byte("older"), 0644))
	require.NoError(t, os.WriteFile(base, nil, 0644))
	require.NoError(t, os.Truncate(base, maxLogSize))

	rf := &rotatingFile{dir: dir}
	require.NoError(t, rf.open())
	t.Cleanup(rf.close)

	assert.Zero(t, rf.size)

	info, err := os.Stat(base + ".1")
	require.NoError(t, err)
	assert.EqualValues(t, maxLogSize, info.Size())

	older, err := os.ReadFile(base + ".2")
	require.NoError(t, err)
	assert.Equal(t, "older", string(older))
}

func TestRotatingFileRotatesWhenWriteCrossesLimit(t *testing.T) {
	dir := t.TempDir()
	rf := &rotatingFile{dir: dir}
	require.NoError(t, rf.open())
	t.Cleanup(rf.close)

	rf.size = maxLogSize - 1
	_, err := rf.Write([]byte("boom\n"))
	require.NoError(t, err)

	assert.Zero(t, rf.size)
	_, err = os.Stat(filepath.Join(dir, LogFileName+".1"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, LogFileName))
	assert.NoError(t, err, "a fresh log file is opened after rotation")
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "skycast/"+Version, UserAgent())
}
