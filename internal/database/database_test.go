package database

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/deppfellow/offered-places/internal/config"
)

func TestDSN(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{
		Host:     "::1",
		Port:     5432,
		User:     "places",
		Password: "p@ss word",
		Name:     "offered",
		SSLMode:  "disable",
	}}

	want := "postgres://places:p%40ss+word@[::1]:5432/offered?sslmode=disable"
	if got := DSN(cfg); got != want {
		t.Fatalf("DSN=%q want %q", got, want)
	}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestSlowQueryTracer(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  time.Duration
		err      error
		wantLog  bool
		wantText string
	}{
		{name: "fast query is silent", elapsed: 10 * time.Millisecond},
		{name: "slow query warns", elapsed: 250 * time.Millisecond, wantLog: true, wantText: "slow query"},
		{name: "slow failing query carries the error", elapsed: time.Second, err: errors.New("deadlock"), wantLog: true, wantText: "deadlock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)
			clock := &fakeClock{t: time.Unix(1700000000, 0)}

			tracer := &slowQueryTracer{threshold: 100 * time.Millisecond, log: &logger, now: clock.now}

			ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
			clock.t = clock.t.Add(tt.elapsed)
			tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{CommandTag: pgconn.NewCommandTag("SELECT 1"), Err: tt.err})

			logged := buf.String()
			if !tt.wantLog {
				if logged != "" {
					t.Fatalf("unexpected log: %s", logged)
				}
				return
			}
			if !strings.Contains(logged, tt.wantText) || !strings.Contains(logged, "SELECT 1") {
				t.Fatalf("log=%s", logged)
			}
		})
	}
}

func TestSlowQueryTracer_WithoutStartIsSilent(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	tracer := &slowQueryTracer{threshold: time.Nanosecond, log: &logger}

	tracer.TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})
	if buf.Len() != 0 {
		t.Fatalf("log=%s", buf.String())
	}
}

type recordingTracer struct {
	name  string
	calls *[]string
}

func (r recordingTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	*r.calls = append(*r.calls, r.name+".start")
	return ctx
}

func (r recordingTracer) TraceQueryEnd(_ context.Context, _ *pgx.Conn, _ pgx.TraceQueryEndData) {
	*r.calls = append(*r.calls, r.name+".end")
}

func TestMultiTracer_CallsEveryTracerInOrder(t *testing.T) {
	var calls []string
	mt := &multiTracer{tracers: []pgx.QueryTracer{
		recordingTracer{name: "a", calls: &calls},
		recordingTracer{name: "b", calls: &calls},
	}}

	ctx := mt.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{})
	mt.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	want := []string{"a.start", "b.start", "a.end", "b.end"}
	if strings.Join(calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls=%v want %v", calls, want)
	}
}
