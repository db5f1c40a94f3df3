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

	httpapi "github.com/aussiebroadwan/employees/internal/employees/http"
	"github.com/aussiebroadwan/employees/internal/employees/service"
	"github.com/aussiebroadwan/employees/internal/employees/store"
	"github.com/aussiebroadwan/employees/internal/employees/store/drivers/memory"
	"github.com/aussiebroadwan/employees/internal/employees/store/drivers/mysql"
	"github.com/aussiebroadwan/employees/internal/employees/store/drivers/sqlite"
	"github.com/aussiebroadwan/employees/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the employee service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	employeeService *service.EmployeeService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "employee-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(context.Background()); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("employee service starting",
		"port", app.cfg.Port,
		"driver", app.cfg.DBDriver,
		"version", BuildVersion,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
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

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down employee service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("employee service stopped")
	return nil
}

// initDatabase opens the configured store, waits for it to answer and
// applies migrations
func (app *Application) initDatabase(ctx context.Context) error {
	db, err := openStore(app.cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := app.waitForDatabase(ctx, db); err != nil {
		_ = db.Close()
		return fmt.Errorf("database not reachable: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.db = db
	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DBDriver)
	return nil
}

func openStore(cfg Config) (store.Store, error) {
	switch cfg.DBDriver {
	case DriverMySQL:
		return mysql.NewStore(cfg.MySQLDSN())
	case DriverSQLite:
		return sqlite.NewStore(cfg.SQLiteDSN())
	case DriverMemory:
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.DBDriver)
	}
}

// waitForDatabase pings db until it answers or DBConnectTimeout elapses. A
// MySQL container commonly starts accepting connections after the service.
func (app *Application) waitForDatabase(ctx context.Context, db store.Store) error {
	ctx, cancel := context.WithTimeout(ctx, app.cfg.DBConnectTimeout)
	defer cancel()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		err := db.Ping(ctx)
		if err == nil {
			return nil
		}
		app.logger.Warn("waiting for database", "driver", app.cfg.DBDriver, "error", err)

		select {
		case <-ctx.Done():
			return err
		case <-ticker.C:
		}
	}
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.employeeService = &service.EmployeeService{Store: app.db}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)
	router.EmployeeService = app.employeeService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
