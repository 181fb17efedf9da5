package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.App.Name != "web3-error-humanizer" {
		t.Errorf("App.Name = %q", cfg.App.Name)
	}
	if cfg.AI.Model != "gpt-4o-mini" {
		t.Errorf("AI.Model = %q", cfg.AI.Model)
	}
	if cfg.AI.RequestTimeout != 15*time.Second {
		t.Errorf("AI.RequestTimeout = %v", cfg.AI.RequestTimeout)
	}
	if cfg.Humanizer.FallbackMessage != "Transaction failed. Please try again." {
		t.Errorf("FallbackMessage = %q", cfg.Humanizer.FallbackMessage)
	}
	if cfg.AI.Enabled() {
		t.Error("AI should be disabled without an api key")
	}
	if cfg.Telemetry.Enabled {
		t.Error("telemetry should default to disabled")
	}
	if cfg.Telemetry.TraceProvider != "zipkin" {
		t.Errorf("Telemetry.TraceProvider = %q", cfg.Telemetry.TraceProvider)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("HUMANIZER_AI_MODEL", "gpt-4o")
	t.Setenv("HUMANIZER_FALLBACK_MESSAGE", "Something went wrong.")
	t.Setenv("HUMANIZER_OTEL_TRACE_PROVIDER", "otlp_grpc")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-api-key=secret")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !cfg.AI.Enabled() {
		t.Error("AI should be enabled with an api key")
	}
	if cfg.AI.Model != "gpt-4o" {
		t.Errorf("AI.Model = %q", cfg.AI.Model)
	}
	if cfg.Humanizer.FallbackMessage != "Something went wrong." {
		t.Errorf("FallbackMessage = %q", cfg.Humanizer.FallbackMessage)
	}
	if cfg.Telemetry.TraceProvider != "otlp_grpc" {
		t.Errorf("Telemetry.TraceProvider = %q", cfg.Telemetry.TraceProvider)
	}
	if cfg.Telemetry.OTLPHeaders != "x-api-key=secret" {
		t.Errorf("Telemetry.OTLPHeaders = %q", cfg.Telemetry.OTLPHeaders)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid_defaults", func(c *Config) {}, false},
		{"empty_fallback", func(c *Config) { c.Humanizer.FallbackMessage = "" }, true},
		{"negative_retries", func(c *Config) { c.AI.MaxRetries = -1 }, true},
		{"ai_without_model", func(c *Config) {
			c.AI.APIKey = "sk-test"
			c.AI.Model = ""
		}, true},
		{"ai_without_rate_limit", func(c *Config) {
			c.AI.APIKey = "sk-test"
			c.AI.RateLimitRPM = 0
		}, true},
		{"unknown_trace_provider", func(c *Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.TraceProvider = "jaeger"
		}, true},
		{"trace_provider_ignored_when_disabled", func(c *Config) {
			c.Telemetry.TraceProvider = "jaeger"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
