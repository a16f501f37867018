package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/lanternchat/lantern/internal/auth/http"
	"github.com/lanternchat/lantern/internal/auth/service"
	"github.com/lanternchat/lantern/internal/auth/session"
	"github.com/lanternchat/lantern/internal/auth/store"
	"github.com/lanternchat/lantern/internal/auth/store/drivers/sqlite"
	"github.com/lanternchat/lantern/pkg/jwtx"
	"github.com/lanternchat/lantern/pkg/slogx"
	"github.com/redis/go-redis/v9"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the auth service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db          store.Store
	redisClient *redis.Client
	sessions    session.Store
	codec       *jwtx.Codec

	authService *service.AuthService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "auth-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return nil, errors.New("AUTH_ACCESS_SECRET and AUTH_REFRESH_SECRET must be set")
	}
	if cfg.AccessSecret == cfg.RefreshSecret {
		// Shared secrets would let a refresh token pass as an access
		// token on endpoints that only check the signature.
		return nil, errors.New("access and refresh secrets must differ")
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initSessions(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("auth service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"session_backend", app.cfg.SessionBackend,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down auth service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			app.logger.Error("error closing redis client", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("auth service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initSessions selects the session store backend. Both satisfy the same
// contract, so nothing above this point cares which one runs.
func (app *Application) initSessions() error {
	switch app.cfg.SessionBackend {
	case "redis":
		app.redisClient = redis.NewClient(&redis.Options{
			Addr:     app.cfg.RedisAddr,
			Password: app.cfg.RedisPassword,
			DB:       app.cfg.RedisDB,
		})
		app.sessions = session.NewRedisStore(app.redisClient)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to reach redis at %s: %w", app.cfg.RedisAddr, err)
		}
	case "sqlite":
		app.sessions = session.NewEntityStore(app.db)
	default:
		return fmt.Errorf("unknown session backend %q", app.cfg.SessionBackend)
	}

	return nil
}

// initServices initializes the business logic services.
func (app *Application) initServices() {
	refreshTTL := session.ParseExpiry(app.cfg.RefreshExpiresIn)
	accessTTL := session.ParseExpiry(app.cfg.AccessExpiresIn)

	app.codec = &jwtx.Codec{
		AccessSecret:  []byte(app.cfg.AccessSecret),
		RefreshSecret: []byte(app.cfg.RefreshSecret),
		AccessTTL:     time.Duration(accessTTL) * time.Second,
		RefreshTTL:    time.Duration(refreshTTL) * time.Second,
		Issuer:        app.cfg.Issuer,
	}

	app.authService = &service.AuthService{
		Users:             app.db.Users(),
		Sessions:          app.sessions,
		Codec:             app.codec,
		RefreshTTLSeconds: refreshTTL,
	}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.codec,
		BuildVersion,
		app.db,
		app.sessions,
		app.logger,
	)

	router.AuthService = app.authService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
