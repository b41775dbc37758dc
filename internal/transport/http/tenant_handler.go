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

package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dormledger/dormledger/internal/billing"
	"github.com/dormledger/dormledger/internal/observability/logger"
	"github.com/dormledger/dormledger/internal/tenant"
)

// ListTenants handles listing and searching tenants
// @Summary List Tenants
// @Description List all tenants, optionally filtered by name or room number
// @Tags Tenant
// @Produce json
// @Param q query string false "Search query (name or room substring)"
// @Success 200 {array} tenant.Tenant
// @Failure 500 {object} map[string]string
// @Router /tenants [get]
func (h *Handler) ListTenants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	tenants, err := h.tenantService.Search(r.Context(), query)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to list tenants", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to list tenants")
		return
	}
	if tenants == nil {
		tenants = []tenant.Tenant{}
	}

	respondJSON(w, http.StatusOK, tenants)
}

// RegisterTenant handles the registration form
// @Summary Register Tenant
// @Description Register a new tenant; charge fields arrive as form text and coerce to zero when blank or invalid
// @Tags Tenant
// @Accept json
// @Produce json
// @Param request body tenant.FormData true "Registration form"
// @Success 201 {object} tenant.Tenant
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /tenants [post]
func (h *Handler) RegisterTenant(w http.ResponseWriter, r *http.Request) {
	var form tenant.FormData
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.tenantService.Register(r.Context(), form)
	if err != nil {
		if errors.Is(err, tenant.ErrMissingInformation) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "failed to register tenant", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to register tenant")
		return
	}

	h.metrics.TenantsRegistered.Add(r.Context(), 1)
	respondJSON(w, http.StatusCreated, t)
}

// GetTenant handles fetching one tenant record
// @Summary Get Tenant
// @Tags Tenant
// @Produce json
// @Param tenantID path string true "Tenant ID"
// @Success 200 {object} tenant.Tenant
// @Failure 404 {object} map[string]string
// @Router /tenants/{tenantID} [get]
func (h *Handler) GetTenant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tenantID")

	t, err := h.tenantService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, tenant.ErrTenantNotFound) {
			respondError(w, http.StatusNotFound, "tenant not found")
			return
		}
		slog.ErrorContext(r.Context(), "failed to get tenant", logger.Error(err), logger.TenantID(id))
		respondError(w, http.StatusInternalServerError, "failed to get tenant")
		return
	}

	respondJSON(w, http.StatusOK, t)
}

// UpdateTenant handles the edit form
// @Summary Update Tenant
// @Description Replace every field of the record except id and creation timestamp
// @Tags Tenant
// @Accept json
// @Produce json
// @Param tenantID path string true "Tenant ID"
// @Param request body tenant.FormData true "Edit form"
// @Success 200 {object} tenant.Tenant
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tenants/{tenantID} [put]
func (h *Handler) UpdateTenant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tenantID")

	var form tenant.FormData
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.tenantService.Update(r.Context(), id, form)
	if err != nil {
		switch {
		case errors.Is(err, tenant.ErrMissingInformation):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, tenant.ErrTenantNotFound):
			respondError(w, http.StatusNotFound, "tenant not found")
		default:
			slog.ErrorContext(r.Context(), "failed to update tenant", logger.Error(err), logger.TenantID(id))
			respondError(w, http.StatusInternalServerError, "failed to update tenant")
		}
		return
	}

	h.metrics.TenantsUpdated.Add(r.Context(), 1)
	respondJSON(w, http.StatusOK, t)
}

// DeleteTenant handles confirmed tenant removal
// @Summary Delete Tenant
// @Description Remove a tenant record; deleting an id that is not present is a no-op
// @Tags Tenant
// @Produce json
// @Param tenantID path string true "Tenant ID"
// @Success 204 "removed"
// @Failure 500 {object} map[string]string
// @Router /tenants/{tenantID} [delete]
func (h *Handler) DeleteTenant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tenantID")

	if err := h.tenantService.Remove(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "failed to remove tenant", logger.Error(err), logger.TenantID(id))
		respondError(w, http.StatusInternalServerError, "failed to remove tenant")
		return
	}

	h.metrics.TenantsRemoved.Add(r.Context(), 1)
	w.WriteHeader(http.StatusNoContent)
}

// GetStatement handles the printable payment record view
// @Summary Tenant Payment Record
// @Description Per-category charge lines, grand total and next due date for one tenant
// @Tags Tenant
// @Produce json
// @Param tenantID path string true "Tenant ID"
// @Success 200 {object} billing.Statement
// @Failure 404 {object} map[string]string
// @Router /tenants/{tenantID}/statement [get]
func (h *Handler) GetStatement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tenantID")

	t, err := h.tenantService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, tenant.ErrTenantNotFound) {
			respondError(w, http.StatusNotFound, "tenant not found")
			return
		}
		slog.ErrorContext(r.Context(), "failed to build statement", logger.Error(err), logger.TenantID(id))
		respondError(w, http.StatusInternalServerError, "failed to build statement")
		return
	}

	respondJSON(w, http.StatusOK, billing.BuildStatement(*t, time.Now()))
}
