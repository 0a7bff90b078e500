// Package config loads skillscan settings from flags, environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/thywilljoshua/skillscan/internal/ai"
)

// EnvPrefix is prepended to every environment variable, e.g. SKILLSCAN_FORMAT.
const EnvPrefix = "SKILLSCAN"

var (
	ErrUnknownFormat   = errors.New("unknown output format")
	ErrUnknownProvider = errors.New("unknown AI provider")
)

// Config holds all settings. The mapstructure tags name the viper keys.
type Config struct {
	Format         string `mapstructure:"format"`
	AIProvider     string `mapstructure:"ai_provider"`
	GeminiAPIKey   string `mapstructure:"gemini_api_key"`
	GeminiModel    string `mapstructure:"gemini_model"`
	VocabularyFile string `mapstructure:"vocabulary_file"`
	LogLevel       string `mapstructure:"log_level"`
	Concurrency    int    `mapstructure:"concurrency"`
}

// Keys lists every setting so callers can bind flags to them.
var Keys = []string{
	"format", "ai_provider", "gemini_api_key", "gemini_model",
	"vocabulary_file", "log_level", "concurrency",
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("format", "text")
	v.SetDefault("ai_provider", "off")
	v.SetDefault("gemini_model", ai.DefaultModel)
	v.SetDefault("log_level", "info")
	v.SetDefault("concurrency", 4)
	v.SetDefault("vocabulary_file", "")
	v.SetDefault("gemini_api_key", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (if any) into v and decodes the result.
// An empty path looks for skillscan.yaml in the working directory and
// tolerates its absence.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("skillscan")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case "text", "markdown", "json":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
	switch strings.ToLower(c.AIProvider) {
	case "off", "gemini":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.AIProvider)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	return nil
}

// Level maps LogLevel onto slog, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
