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

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-ledger/internal/config"
	"github.com/Dan9191/finance-ledger/internal/handler"
	"github.com/Dan9191/finance-ledger/internal/middleware"
	"github.com/Dan9191/finance-ledger/internal/repository"
	"github.com/Dan9191/finance-ledger/internal/service"
)

func main() {
	// .env is optional outside local development
	_ = godotenv.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	dialect, err := repository.ParseDialect(cfg.DBDriver)
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Bring the schema up to date before serving
	if err := repository.Migrate(dialect, cfg.DBConn); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize database
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := repository.Open(ctx, dialect, cfg.DBConn)
	cancel()
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize layers
	repo := repository.NewRepository(db, dialect)
	svc := service.NewService(repo, logger, cfg)
	h := handler.NewHandler(svc, repo, logger)

	// Recovery sits outside CORS so a panic still gets a response
	var root http.Handler = h.Routes()
	root = middleware.CORS(cfg.CORSOrigins)(root)
	root = middleware.Recovery(logger)(root)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      root,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Infof("Shutdown signal received: %s", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("Server shutdown error: %v", err)
		}
	}()

	logger.WithFields(logrus.Fields{"addr": addr, "driver": dialect}).Info("Starting server")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("Server failed: %v", err)
	}
	<-stopped
	logger.Info("Server stopped gracefully")
}
