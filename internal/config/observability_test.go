package config

import "testing"

func TestObservabilityConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ObservabilityConfig)
		wantErr bool
	}{
		{"defaults", func(c *ObservabilityConfig) {}, false},
		{"bad level", func(c *ObservabilityConfig) { c.Logging.Level = "trace" }, true},
		{"bad format", func(c *ObservabilityConfig) { c.Logging.Format = "xml" }, true},
		{"negative threshold", func(c *ObservabilityConfig) { c.Logging.SlowQueryThreshold = -1 }, true},
		{"unknown check", func(c *ObservabilityConfig) { c.HealthChecks.Checks = []string{"kafka"} }, true},
		{"missing service name", func(c *ObservabilityConfig) { c.ServiceName = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultObservabilityConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()

	cfg.Logging.Level = ""
	cfg.Environment = "production"
	if got := cfg.GetLogLevel(); got != "info" {
		t.Fatalf("production default=%q", got)
	}

	cfg.Environment = "local"
	if got := cfg.GetLogLevel(); got != "debug" {
		t.Fatalf("local default=%q", got)
	}

	cfg.Logging.Level = "warn"
	if got := cfg.GetLogLevel(); got != "warn" {
		t.Fatalf("explicit=%q", got)
	}
}

func TestObservabilityConfig_HealthCheckEnabled(t *testing.T) {
	cfg := DefaultObservabilityConfig()

	if !cfg.HealthCheckEnabled("database") || !cfg.HealthCheckEnabled("redis") {
		t.Fatal("default checks should be enabled")
	}

	cfg.HealthChecks.Checks = []string{"database"}
	if cfg.HealthCheckEnabled("redis") {
		t.Fatal("redis should be disabled")
	}

	cfg.HealthChecks.Enabled = false
	if cfg.HealthCheckEnabled("database") {
		t.Fatal("checks are globally disabled")
	}
}
