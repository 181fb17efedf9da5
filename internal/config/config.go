// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	AI        AIConfig        `mapstructure:"ai"`
	Humanizer HumanizerConfig `mapstructure:"humanizer"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
}

// AIConfig holds AI completion backend configuration.
type AIConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	BaseURL        string        `mapstructure:"base_url"`
	Model          string        `mapstructure:"model"`
	MaxTokens      int           `mapstructure:"max_tokens"`
	WordBudget     int           `mapstructure:"word_budget"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxRetries     int           `mapstructure:"max_retries"`
	InitialBackoff time.Duration `mapstructure:"initial_backoff"`
	MaxBackoff     time.Duration `mapstructure:"max_backoff"`
	RateLimitRPM   int           `mapstructure:"rate_limit_rpm"`
}

// Enabled reports whether the AI fallback is configured.
func (c *AIConfig) Enabled() bool {
	return c.APIKey != ""
}

// HumanizerConfig holds resolution behavior settings.
type HumanizerConfig struct {
	FallbackMessage string `mapstructure:"fallback_message"`
}

// TelemetryConfig holds observability configuration.
type TelemetryConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	ServiceName    string `mapstructure:"service_name"`
	TraceProvider  string `mapstructure:"trace_provider"`
	OTLPEndpoint   string `mapstructure:"otlp_endpoint"`
	OTLPHeaders    string `mapstructure:"otlp_headers"`
	PrometheusPort int    `mapstructure:"prometheus_port"`
	HealthPort     int    `mapstructure:"health_port"`
}

// Load loads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables
	v.SetEnvPrefix("HUMANIZER")
	v.AutomaticEnv()

	bindEnvVars(v)
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func bindEnvVars(v *viper.Viper) {
	// App
	v.BindEnv("app.name", "HUMANIZER_APP_NAME", "SERVICE_NAME")
	v.BindEnv("app.environment", "HUMANIZER_ENVIRONMENT", "ENVIRONMENT")
	v.BindEnv("app.log_level", "HUMANIZER_LOG_LEVEL", "LOG_LEVEL")

	// AI backend
	v.BindEnv("ai.api_key", "HUMANIZER_AI_API_KEY", "OPENAI_API_KEY")
	v.BindEnv("ai.base_url", "HUMANIZER_AI_BASE_URL", "OPENAI_BASE_URL")
	v.BindEnv("ai.model", "HUMANIZER_AI_MODEL", "OPENAI_MODEL")
	v.BindEnv("ai.max_tokens", "HUMANIZER_AI_MAX_TOKENS")
	v.BindEnv("ai.rate_limit_rpm", "HUMANIZER_AI_RATE_LIMIT_RPM")

	// Humanizer
	v.BindEnv("humanizer.fallback_message", "HUMANIZER_FALLBACK_MESSAGE")

	// Telemetry
	v.BindEnv("telemetry.enabled", "HUMANIZER_OTEL_ENABLED", "OTEL_ENABLED")
	v.BindEnv("telemetry.service_name", "HUMANIZER_OTEL_SERVICE_NAME", "OTEL_SERVICE_NAME")
	v.BindEnv("telemetry.trace_provider", "HUMANIZER_OTEL_TRACE_PROVIDER")
	v.BindEnv("telemetry.otlp_endpoint", "HUMANIZER_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
	v.BindEnv("telemetry.otlp_headers", "HUMANIZER_OTEL_HEADERS", "OTEL_EXPORTER_OTLP_HEADERS")
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "web3-error-humanizer")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	// AI defaults
	v.SetDefault("ai.base_url", "https://api.openai.com/v1")
	v.SetDefault("ai.model", "gpt-4o-mini")
	v.SetDefault("ai.max_tokens", 120)
	v.SetDefault("ai.word_budget", 50)
	v.SetDefault("ai.request_timeout", "15s")
	v.SetDefault("ai.max_retries", 2)
	v.SetDefault("ai.initial_backoff", "500ms")
	v.SetDefault("ai.max_backoff", "8s")
	v.SetDefault("ai.rate_limit_rpm", 60)

	// Humanizer defaults
	v.SetDefault("humanizer.fallback_message", "Transaction failed. Please try again.")

	// Telemetry defaults
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "web3-error-humanizer")
	v.SetDefault("telemetry.trace_provider", "zipkin")
	v.SetDefault("telemetry.prometheus_port", 9090)
	v.SetDefault("telemetry.health_port", 8080)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Humanizer.FallbackMessage == "" {
		return fmt.Errorf("humanizer.fallback_message cannot be empty")
	}
	if c.AI.MaxRetries < 0 {
		return fmt.Errorf("ai.max_retries cannot be negative")
	}
	if c.AI.Enabled() {
		if c.AI.BaseURL == "" {
			return fmt.Errorf("ai.base_url is required when ai.api_key is set")
		}
		if c.AI.Model == "" {
			return fmt.Errorf("ai.model is required when ai.api_key is set")
		}
		if c.AI.RateLimitRPM <= 0 {
			return fmt.Errorf("ai.rate_limit_rpm must be positive")
		}
	}
	if c.Telemetry.Enabled {
		switch c.Telemetry.TraceProvider {
		case "zipkin", "otlp_grpc", "otlp_http", "console", "empty":
		default:
			return fmt.Errorf("telemetry.trace_provider must be one of zipkin, otlp_grpc, otlp_http, console, empty")
		}
	}
	return nil
}
