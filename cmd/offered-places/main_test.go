package main

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/deppfellow/offered-places/internal/config"
	"github.com/deppfellow/offered-places/internal/logger"
)

func unreachableDatabaseConfig(env string) *config.Config {
	return &config.Config{
		Primary: config.Primary{Env: env},
		Server:  config.ServerConfig{Port: "0"},
		Database: config.DatabaseConfig{
			Host:            "127.0.0.1",
			Port:            1,
			User:            "places",
			Password:        "places",
			Name:            "places",
			SSLMode:         "disable",
			MaxOpenConns:    1,
			MaxIdleConns:    1,
			ConnMaxLifetime: 60,
			ConnMaxIdleTime: 60,
		},
		RateLimit:     config.DefaultRateLimitConfig(),
		Observability: config.DefaultObservabilityConfig(),
	}
}

func TestRun_StartupFailuresAreReturned(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"test", "failed to migrate database"},
		{"local", "failed to initialize server"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			log := zerolog.Nop()

			err := run(context.Background(), unreachableDatabaseConfig(tt.env), &log, &logger.LoggerService{})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err=%v want it to contain %q", err, tt.want)
			}
		})
	}
}
