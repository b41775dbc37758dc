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

	"github.com/dormledger/dormledger/internal/audit"
	"github.com/dormledger/dormledger/internal/notify"
	"github.com/dormledger/dormledger/internal/observability/logger"
	"github.com/dormledger/dormledger/internal/tenant"
)

// SendReminderRequest selects which charge the reminder covers
type SendReminderRequest struct {
	// NotificationType is a charge type (baseRent, waterFee, ...) or "total"
	NotificationType string `json:"notificationType" example:"total"`
}

// SendReminderResponse carries the formatted reminder and whatever
// confirmation payload the reminder endpoint returned
type SendReminderResponse struct {
	Message string          `json:"message"`
	Receipt *notify.Receipt `json:"receipt,omitempty"`
}

// SendReminder handles the payment reminder simulation
// @Summary Send Payment Reminder
// @Description Format a reminder for one charge category or the grand total and dispatch it to the reminder endpoint; failure is reported once with no retry and no effect on stored records
// @Tags Reminder
// @Accept json
// @Produce json
// @Param tenantID path string true "Tenant ID"
// @Param request body SendReminderRequest true "Reminder selection"
// @Success 200 {object} SendReminderResponse
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /tenants/{tenantID}/reminders [post]
func (h *Handler) SendReminder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tenantID")

	var req SendReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.NotificationType == "" {
		req.NotificationType = notify.TypeTotal
	}

	t, err := h.tenantService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, tenant.ErrTenantNotFound) {
			respondError(w, http.StatusNotFound, "tenant not found")
			return
		}
		slog.ErrorContext(r.Context(), "failed to load tenant for reminder", logger.Error(err), logger.TenantID(id))
		respondError(w, http.StatusInternalServerError, "failed to load tenant")
		return
	}

	message := notify.Message(*t, req.NotificationType, time.Now())

	receipt, err := h.notifier.Send(r.Context(), *t, req.NotificationType)
	if err != nil {
		// No retry; the stored records are untouched either way.
		slog.WarnContext(r.Context(), "reminder dispatch failed",
			logger.Error(err), logger.TenantID(id), logger.NotificationType(req.NotificationType))
		h.metrics.RemindersFailed.Add(r.Context(), 1)
		h.auditLogger.Log(r.Context(), audit.Event{
			Type:     audit.TypeReminderFailed,
			TenantID: t.ID,
			Room:     t.RoomNumber,
			Metadata: map[string]any{"notification_type": req.NotificationType},
		})
		respondError(w, http.StatusBadGateway, "reminder could not be delivered")
		return
	}

	h.metrics.RemindersSent.Add(r.Context(), 1)
	h.auditLogger.Log(r.Context(), audit.Event{
		Type:     audit.TypeReminderSent,
		TenantID: t.ID,
		Room:     t.RoomNumber,
		Metadata: map[string]any{"notification_type": req.NotificationType},
	})

	respondJSON(w, http.StatusOK, SendReminderResponse{
		Message: message,
		Receipt: receipt,
	})
}
