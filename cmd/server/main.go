package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nekogravitycat/bulletin-board-backend/internal/app"
	"github.com/nekogravitycat/bulletin-board-backend/internal/config"
	"github.com/nekogravitycat/bulletin-board-backend/internal/db"
	"github.com/nekogravitycat/bulletin-board-backend/internal/logger"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr := logger.New(cfg.LogLevel, cfg.IsProduction)

	// Connect DB
	var (
		pool  *pgxpool.Pool
		sqlDB *sql.DB
	)
	switch cfg.DBDriver {
	case config.DriverSQLite:
		sqlDB, err = db.OpenSQLite(ctx, cfg.SQLitePath, logr)
		if err != nil {
			logr.WithError(err).Fatal("failed to open sqlite database")
		}
		defer sqlDB.Close()
	default:
		pool, err = db.NewPool(ctx, cfg.DBDSN)
		if err != nil {
			logr.WithError(err).Fatal("failed to connect to db")
		}
		defer pool.Close()

		if err := db.MigratePostgres(ctx, pool, logr); err != nil {
			logr.WithError(err).Fatal("failed to migrate db")
		}
	}

	container := app.NewContainer(app.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		DBPool:         pool,
		SQLDB:          sqlDB,
		XSRFSecret:     cfg.XSRFSecret,
		XSRFTTL:        cfg.XSRFTokenTTL,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		Logger:         logr,
	})

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           container.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run server in separate goroutine
	go func() {
		logr.WithField("addr", cfg.HTTPAddr).WithField("driver", cfg.DBDriver).Info("server running")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.WithError(err).Fatal("server error")
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	logr.Info("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		logr.WithError(err).Warn("server forced to shutdown")
	}

	logr.Info("server exited gracefully")
}
