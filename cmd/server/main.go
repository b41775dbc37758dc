// Copyright 2026 The DormLedger Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dormledger/dormledger/internal/audit"
	"github.com/dormledger/dormledger/internal/config"
	"github.com/dormledger/dormledger/internal/notify"
	"github.com/dormledger/dormledger/internal/observability/logger"
	"github.com/dormledger/dormledger/internal/observability/metrics"
	"github.com/dormledger/dormledger/internal/observability/tracing"
	filestore "github.com/dormledger/dormledger/internal/store/file"
	"github.com/dormledger/dormledger/internal/store/memory"
	"github.com/dormledger/dormledger/internal/store/postgres"
	"github.com/dormledger/dormledger/internal/tenant"
	transportHTTP "github.com/dormledger/dormledger/internal/transport/http"
)

func main() {
	// Optionally load environment file
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.InitLogger(logger.Config{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: cfg.Observability.ServiceName,
	})
	slog.Info("starting dormledger rental records service")

	ctx := context.Background()

	// Initialize tracer
	tracer, err := tracing.New(ctx, tracing.Config{
		Enabled:        cfg.Observability.OTELEnabled,
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		SamplingRate:   1.0,
	})
	if err != nil {
		slog.Error("failed to initialize tracer", logger.Error(err))
	}
	defer tracer.Shutdown(ctx)

	// Initialize metrics
	m, err := metrics.New(ctx, metrics.Config{
		Enabled: cfg.Observability.OTELEnabled,
	}, cfg.Observability.ServiceName)
	if err != nil {
		slog.Error("failed to initialize metrics", logger.Error(err))
		os.Exit(1)
	}

	// Initialize the tenant collection store
	store, cleanup, err := newStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize storage", logger.Error(err))
		os.Exit(1)
	}
	defer cleanup()
	slog.Info("storage ready", logger.Component("store"), logger.Operation(cfg.Storage.Driver))

	// Initialize services
	auditLogger := audit.NewSlogLogger()
	tenantService := tenant.NewService(store, auditLogger, cfg.Billing.DefaultDueDay)
	notifier := notify.NewHTTPNotifier(cfg.Notifier.BaseURL, cfg.Notifier.Timeout)

	// Rate limiter
	rateLimiter := transportHTTP.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	// HTTP handler and router
	handler := transportHTTP.NewHandler(tenantService, notifier, auditLogger, m)
	router := transportHTTP.NewRouter(handler, rateLimiter)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server
	go func() {
		slog.Info("starting http server", logger.Component("server"), logger.Operation("listen"))
		slog.Info(fmt.Sprintf("listening on %s", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", logger.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", logger.Error(err))
	}

	slog.Info("server stopped")
}

// newStore builds the configured tenant.Store backend. The returned cleanup
// releases backend resources and is safe to call once.
func newStore(ctx context.Context, cfg *config.Config) (tenant.Store, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return memory.New(), func() {}, nil

	case config.DriverFile:
		s, err := filestore.New(cfg.Storage.Dir, cfg.Storage.CollectionKey)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil

	case config.DriverPostgres:
		db, err := postgres.New(ctx, postgres.Config{
			Host:         cfg.Database.Host,
			Port:         cfg.Database.Port,
			User:         cfg.Database.User,
			Password:     cfg.Database.Password,
			Database:     cfg.Database.Database,
			SSLMode:      cfg.Database.SSLMode,
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
		})
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewCollectionStore(db, cfg.Storage.CollectionKey), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
