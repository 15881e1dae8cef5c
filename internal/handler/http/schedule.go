package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/csi515/beautyhub-backend-go/internal/domain/schedule"
	"github.com/csi515/beautyhub-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	ListTemplates(w http.ResponseWriter, r *http.Request)
	GenerateRecurring(w http.ResponseWriter, r *http.Request)
	ApplyTemplate(w http.ResponseWriter, r *http.Request)
	BulkAssign(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// ListTemplates implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListTemplates(w http.ResponseWriter, r *http.Request) {
	resp, err := h.scheduleService.ListTemplates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GenerateRecurring implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GenerateRecurring(w http.ResponseWriter, r *http.Request) {
	var req schedule.GenerateRecurringRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("GenerateRecurring decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.scheduleService.GenerateRecurring(r.Context(), req)
	if err != nil {
		slog.Error("GenerateRecurring service error", "error", err, "created", resp.CreatedCount)
		response.HandleError(w, err)
		return
	}

	slog.Info("Recurring shifts generated", "created", resp.CreatedCount)
	response.Created(w, "Recurring shifts generated", resp)
}

// ApplyTemplate implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ApplyTemplate(w http.ResponseWriter, r *http.Request) {
	var req schedule.ApplyTemplateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ApplyTemplate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.scheduleService.ApplyTemplate(r.Context(), req)
	if err != nil {
		slog.Error("ApplyTemplate service error", "error", err, "created", resp.CreatedCount)
		response.HandleError(w, err)
		return
	}

	slog.Info("Template applied", "template", req.TemplateName, "created", resp.CreatedCount, "skipped", resp.SkippedCount)
	response.Created(w, "Template applied", resp)
}

// BulkAssign implements ScheduleHandler.
func (h *ScheduleHandlerImpl) BulkAssign(w http.ResponseWriter, r *http.Request) {
	var req schedule.BulkAssignRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("BulkAssign decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.scheduleService.BulkAssign(r.Context(), req)
	if err != nil {
		slog.Error("BulkAssign service error", "error", err, "created", resp.CreatedCount)
		response.HandleError(w, err)
		return
	}

	slog.Info("Bulk shifts assigned", "created", resp.CreatedCount)
	response.Created(w, "Shifts assigned", resp)
}
