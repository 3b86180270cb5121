// Package server initializes and runs the backend application: it opens the
// database, runs migrations, selects the session store, and starts the HTTP
// server with graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/esportshub/backend/internal/logging"
	"github.com/esportshub/backend/internal/server/config"
	"github.com/esportshub/backend/internal/server/httpapi"
	"github.com/esportshub/backend/internal/server/repositories/repomanager"
	"github.com/esportshub/backend/internal/server/services"
	"github.com/esportshub/backend/internal/server/sessions"
)

// shutdownTimeout bounds how long in-flight requests may run after a stop
// signal.
const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	repos  repomanager.RepositoryManager
	server *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewDefault()

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	store := newSessionStore(cfg)

	userService := services.NewUserService(rm.Users(db), store, cfg.SessionTTL)
	contentService := services.NewContentService(rm.Content(db))
	formsService := services.NewFormsService(rm.Forms(db))

	srv := httpapi.NewServer(logger, userService, contentService, formsService,
		httpapi.Options{AllowOrigin: cfg.CORSAllowOrigin})

	return &App{config: cfg, logger: logger, db: db, repos: rm, server: srv}, nil
}

// newSessionStore picks Redis when an address is configured, the in-process
// store otherwise.
func newSessionStore(cfg *config.Config) sessions.Store {
	if cfg.RedisAddr == "" {
		return sessions.NewMemoryStore()
	}
	return sessions.NewRedisStore(redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}))
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run migrates the schema, serves HTTP until ctx is cancelled or a signal
// arrives, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	if err := app.repos.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	app.logger.Info(ctx, "starting server", "addr", app.config.EndpointAddr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.server.Start(app.config.EndpointAddr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "shutdown error", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(shutdownCtx, "db close error", "error", err)
	}
	return nil
}
