package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/offered-places/internal/config"
	"github.com/deppfellow/offered-places/internal/database"
	"github.com/deppfellow/offered-places/internal/handler"
	"github.com/deppfellow/offered-places/internal/logger"
	"github.com/deppfellow/offered-places/internal/repository"
	"github.com/deppfellow/offered-places/internal/router"
	"github.com/deppfellow/offered-places/internal/server"
	"github.com/deppfellow/offered-places/internal/service"
)

const (
	DefaultContextTimeout = 30 * time.Second
	MigrationTimeout      = 2 * time.Minute
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, &log, loggerService)
	stop()

	if err != nil {
		log.Error().Err(err).Msg("server stopped")
	}

	// os.Exit skips deferred calls, so telemetry is flushed first.
	loggerService.Shutdown()
	if err != nil {
		os.Exit(1)
	}
}

// run starts the server and blocks until ctx is cancelled or the server
// fails. Startup failures are returned rather than fatal.
func run(ctx context.Context, cfg *config.Config, log *zerolog.Logger, loggerService *logger.LoggerService) error {
	// Local databases are migrated by hand so schema experiments are not
	// overwritten on every start.
	if cfg.Primary.Env != "local" {
		migrateCtx, cancel := context.WithTimeout(ctx, MigrationTimeout)
		err := database.Migrate(migrateCtx, log, cfg)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(repos)
	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout)
		defer cancel()
		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to release server resources")
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)

	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server exited properly")
	return nil
}
