package config

import (
	"testing"
	"time"
)

func TestApplyDefaults_FillsOptionalBlocks(t *testing.T) {
	cfg := &Config{Primary: Primary{Env: "production"}}
	cfg.applyDefaults()

	if len(cfg.Server.CORSAllowedOrigins) != 1 || cfg.Server.CORSAllowedOrigins[0] != DefaultFrontendOrigin {
		t.Fatalf("origins=%v", cfg.Server.CORSAllowedOrigins)
	}
	if cfg.RateLimit == nil || cfg.RateLimit.Enabled {
		t.Fatalf("rate limit=%+v want disabled default", cfg.RateLimit)
	}
	if cfg.Observability == nil {
		t.Fatal("observability not defaulted")
	}
	if cfg.Observability.ServiceName != ServiceName || cfg.Observability.Environment != "production" {
		t.Fatalf("observability=%+v", cfg.Observability)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Primary:   Primary{Env: "local"},
		Server:    ServerConfig{CORSAllowedOrigins: []string{"https://places.example"}},
		RateLimit: &RateLimitConfig{Enabled: true, Requests: 5, Window: time.Minute},
		Observability: &ObservabilityConfig{
			ServiceName: "overridden",
			Logging:     LoggingConfig{Level: "debug", Format: "console"},
		},
	}
	cfg.applyDefaults()

	if cfg.Server.CORSAllowedOrigins[0] != "https://places.example" {
		t.Fatalf("origins=%v", cfg.Server.CORSAllowedOrigins)
	}
	if !cfg.RateLimit.Enabled || cfg.RateLimit.Requests != 5 {
		t.Fatalf("rate limit=%+v", cfg.RateLimit)
	}
	// The service name is not configurable.
	if cfg.Observability.ServiceName != ServiceName || cfg.Observability.Environment != "local" {
		t.Fatalf("observability=%+v", cfg.Observability)
	}
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	for key, value := range map[string]string{
		"PLACES_PRIMARY.ENV":                 "development",
		"PLACES_SERVER.PORT":                 "8080",
		"PLACES_SERVER.READ_TIMEOUT":         "30",
		"PLACES_SERVER.WRITE_TIMEOUT":        "30",
		"PLACES_SERVER.IDLE_TIMEOUT":         "60",
		"PLACES_DATABASE.HOST":               "localhost",
		"PLACES_DATABASE.PORT":               "5432",
		"PLACES_DATABASE.USER":               "places",
		"PLACES_DATABASE.PASSWORD":           "secret",
		"PLACES_DATABASE.NAME":               "places",
		"PLACES_DATABASE.SSL_MODE":           "disable",
		"PLACES_DATABASE.MAX_OPEN_CONNS":     "10",
		"PLACES_DATABASE.MAX_IDLE_CONNS":     "5",
		"PLACES_DATABASE.CONN_MAX_LIFETIME":  "300",
		"PLACES_DATABASE.CONN_MAX_IDLE_TIME": "60",
	} {
		t.Setenv(key, value)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "8080" || cfg.Database.Port != 5432 || cfg.Database.ConnMaxLifetime != 300 {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.Server.CORSAllowedOrigins[0] != DefaultFrontendOrigin {
		t.Fatalf("origins=%v", cfg.Server.CORSAllowedOrigins)
	}
	if cfg.Observability.Environment != "development" {
		t.Fatalf("environment=%q", cfg.Observability.Environment)
	}
}
