package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Empty(t, cfg.FFmpegPath)
	assert.Empty(t, cfg.YTDLPPath)
	assert.False(t, cfg.AutoInstall)
	assert.Equal(t, DefaultProgressInterval, cfg.ProgressInterval)
}

func TestLoad_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("YTDL_LOG_LEVEL", "debug")
	t.Setenv("YTDL_FFMPEG_PATH", "/opt/ffmpeg")
	t.Setenv("YTDL_AUTO_INSTALL", "true")
	t.Setenv("YTDL_PROGRESS_INTERVAL", "1s")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/opt/ffmpeg", cfg.FFmpegPath)
	assert.True(t, cfg.AutoInstall)
	assert.Equal(t, time.Second, cfg.ProgressInterval)
}

func TestLoad_ConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := t.TempDir()
	content := "log_level: warn\nytdlp_path: /usr/local/bin/yt-dlp\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/usr/local/bin/yt-dlp", cfg.YTDLPPath)
}

func TestLoad_DotEnv(t *testing.T) {
	wd := t.TempDir()
	t.Chdir(wd)
	require.NoError(t, os.WriteFile(filepath.Join(wd, ".env"), []byte("YTDL_YTDLP_PATH=/from/dotenv\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("YTDL_YTDLP_PATH") })

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/from/dotenv", cfg.YTDLPPath)
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(&Config{LogLevel: "warn"}, &buf)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(&Config{LogLevel: "loud"}, &buf)

	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	assert.Contains(t, buf.String(), "Invalid log level")
}
