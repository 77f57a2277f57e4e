package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Fetch     FetchConfig
	Processor ProcessorConfig
	Dedup     DedupConfig
	OCR       OCRConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// FetchConfig holds outbound HTTP fetch configuration
type FetchConfig struct {
	ResolveTimeout time.Duration `mapstructure:"resolve_timeout"`
	PageTimeout    time.Duration `mapstructure:"page_timeout"`
	RequestsPerSec float64       `mapstructure:"requests_per_sec"`
}

// ProcessorConfig holds per-message orchestration limits
type ProcessorConfig struct {
	MaxURLsPerMessage int           `mapstructure:"max_urls_per_message"`
	TimeBudget        time.Duration `mapstructure:"time_budget"`
	ReplyDelay        time.Duration `mapstructure:"reply_delay"`
}

// DedupConfig holds processed-message set configuration
type DedupConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// OCRConfig holds the external text-recognition service configuration
type OCRConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/linklens/")

	// Environment variable settings
	v.SetEnvPrefix("LINKLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Fetch defaults
	v.SetDefault("fetch.resolve_timeout", "10s")
	v.SetDefault("fetch.page_timeout", "15s")
	v.SetDefault("fetch.requests_per_sec", 5.0)

	// Processor defaults
	v.SetDefault("processor.max_urls_per_message", 3)
	v.SetDefault("processor.time_budget", "2500ms")
	v.SetDefault("processor.reply_delay", "300ms")

	// Dedup defaults
	v.SetDefault("dedup.capacity", 1000)

	// OCR is optional; image-only messages are skipped when unset
	v.SetDefault("ocr.base_url", "")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Processor.MaxURLsPerMessage < 1 {
		return fmt.Errorf("processor max_urls_per_message must be at least 1, got: %d", config.Processor.MaxURLsPerMessage)
	}

	if config.Fetch.ResolveTimeout <= 0 || config.Fetch.PageTimeout <= 0 {
		return fmt.Errorf("fetch timeouts must be positive")
	}

	if config.Dedup.Capacity < 1 {
		return fmt.Errorf("dedup capacity must be at least 1, got: %d", config.Dedup.Capacity)
	}

	return nil
}
