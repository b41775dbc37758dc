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

// @title DormLedger API
// @version 1.0.0
// @description Dormitory tenant and rent-tracking service

// @host localhost:8080
// @BasePath /api/v1

package http

import (
	"embed"
	"encoding/json"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dormledger/dormledger/internal/audit"
	"github.com/dormledger/dormledger/internal/notify"
	"github.com/dormledger/dormledger/internal/observability/metrics"
	"github.com/dormledger/dormledger/internal/tenant"
)

//go:embed web
var webFS embed.FS

// Handler holds HTTP handlers and dependencies
type Handler struct {
	tenantService *tenant.Service
	notifier      notify.Notifier
	auditLogger   audit.Logger
	metrics       *metrics.Metrics
}

// NewHandler creates a new HTTP handler
func NewHandler(
	tenantService *tenant.Service,
	notifier notify.Notifier,
	auditLogger audit.Logger,
	m *metrics.Metrics,
) *Handler {
	return &Handler{
		tenantService: tenantService,
		notifier:      notifier,
		auditLogger:   auditLogger,
		metrics:       m,
	}
}

// NewRouter creates a new HTTP router
func NewRouter(h *Handler, rateLimiter *RateLimiter) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(RateLimitMiddleware(rateLimiter))
	r.Use(func(handler http.Handler) http.Handler {
		return otelhttp.NewHandler(handler, "http_request",
			otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		)
	})
	r.Use(LoggingMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", h.HealthCheck)

	// Records API
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/tenants", h.ListTenants)
		r.Post("/tenants", h.RegisterTenant)
		r.Route("/tenants/{tenantID}", func(r chi.Router) {
			r.Get("/", h.GetTenant)
			r.Put("/", h.UpdateTenant)
			r.Delete("/", h.DeleteTenant)
			r.Get("/statement", h.GetStatement)
			r.Post("/reminders", h.SendReminder)
		})
	})

	// Browser UI
	staticFS, _ := fs.Sub(webFS, "web")
	r.Handle("/*", SPAHandler{StaticFS: staticFS})

	return r
}

// HealthCheck reports service liveness
// @Summary Health Check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "dormledger",
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
