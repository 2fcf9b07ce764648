package main

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

	"github.com/cmlabs-hris/employee-service/internal/config"
	"github.com/cmlabs-hris/employee-service/internal/domain/employee"
	"github.com/cmlabs-hris/employee-service/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/employee-service/internal/handler/http"
	"github.com/cmlabs-hris/employee-service/internal/pkg/database"
	"github.com/cmlabs-hris/employee-service/internal/repository/postgresql"
	"github.com/cmlabs-hris/employee-service/internal/repository/sqlite"
	employeeService "github.com/cmlabs-hris/employee-service/internal/service/employee"
	"github.com/go-chi/httplog/v3"
	"golang.org/x/sync/errgroup"
)

const version = "v1.0.0"

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	employeeRepo, closeStore, err := openEmployeeRepository(ctx, cfg)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer closeStore()

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, logger)

	if cfg.App.SeedSampleData {
		seedSampleData(ctx, logger, employeeSvc)
	}

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		Logger:         logger,
		LogLevel:       cfg.SlogLevel(),
		AllowedOrigins: cfg.App.AllowedOrigins,
	}, employeeHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server running", "addr", server.Addr, "driver", cfg.Database.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down", "timeout", cfg.App.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newLogger(cfg *config.Config) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "employee-service"),
		slog.String("version", version),
		slog.String("env", cfg.App.Env),
	)
}

// openEmployeeRepository connects the configured store and applies the schema.
func openEmployeeRepository(ctx context.Context, cfg *config.Config) (employee.EmployeeRepository, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := database.NewSQLiteDB(ctx, cfg.Database.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := sqlite.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return sqlite.NewSqliteEmployeeRepo(db), func() { db.Close() }, nil

	default:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		})
		if err != nil {
			return nil, nil, err
		}
		if err := postgresql.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return postgresql.NewEmployeeRepository(db), db.Close, nil
	}
}

// seedSampleData creates the fixture employees. Already registered emails are skipped.
func seedSampleData(ctx context.Context, logger *slog.Logger, svc employee.EmployeeService) {
	for _, e := range []employee.Employee{fixtures.DurgaMahesh(), fixtures.ArjunNarayan()} {
		created, err := svc.CreateEmployee(ctx, e)
		switch {
		case errors.Is(err, employee.ErrDuplicateResource):
			logger.Debug("sample employee already present", "email", e.Email)
		case err != nil:
			logger.Warn("failed to seed sample employee", "email", e.Email, "error", err)
		default:
			logger.Info("seeded sample employee", "employee_id", created.ID)
		}
	}
}
