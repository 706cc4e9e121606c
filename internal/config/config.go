package config

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override (YTDL_LOG_LEVEL)
const EnvPrefix = "YTDL"

// Defaults for process configuration
const (
	DefaultLogLevel         = "info"
	DefaultProgressInterval = 250 * time.Millisecond
)

// Config holds process level configuration read from the environment and an
// optional config.yaml next to the binary.
type Config struct {
	LogLevel         string        `mapstructure:"log_level"`
	FFmpegPath       string        `mapstructure:"ffmpeg_path"`
	YTDLPPath        string        `mapstructure:"ytdlp_path"`
	AutoInstall      bool          `mapstructure:"auto_install"`
	ProgressInterval time.Duration `mapstructure:"progress_interval"`
}

// Load reads .env (if any), config.yaml (if any) and YTDL_* variables.
func Load(paths ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("ffmpeg_path", "")
	v.SetDefault("ytdlp_path", "")
	v.SetDefault("auto_install", false)
	v.SetDefault("progress_interval", DefaultProgressInterval)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.ProgressInterval <= 0 {
		cfg.ProgressInterval = DefaultProgressInterval
	}
	return &cfg, nil
}

// NewLogger builds a human readable console logger at the configured level.
// Unknown levels fall back to info with a warning.
func NewLogger(cfg *Config, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.TimeOnly,
	}).With().Timestamp().Logger()

	level := zerolog.InfoLevel
	if cfg != nil && cfg.LogLevel != "" {
		if parsed, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
			level = parsed
		} else {
			logger.Warn().Str("invalid_level", cfg.LogLevel).Msg("Invalid log level, using default 'info'")
		}
	}
	return logger.Level(level)
}
