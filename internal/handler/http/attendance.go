package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/csi515/beautyhub-backend-go/internal/domain/attendance"
	"github.com/csi515/beautyhub-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	CreateRecord(w http.ResponseWriter, r *http.Request)
	GetRecord(w http.ResponseWriter, r *http.Request)
	UpdateRecord(w http.ResponseWriter, r *http.Request)
	DeleteRecord(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	StaffStatus(w http.ResponseWriter, r *http.Request)
	StatusBoard(w http.ResponseWriter, r *http.Request)
	Timeline(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CreateRecord implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Record create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.CreateRecord(r.Context(), req)
	if err != nil {
		slog.Error("Record create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance record created", resp)
}

// GetRecord implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetRecord(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.GetRecord(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateRecord implements AttendanceHandler.
func (h *AttendanceHandlerImpl) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Record update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "recordID")

	resp, err := h.attendanceService.UpdateRecord(r.Context(), req)
	if err != nil {
		slog.Error("Record update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// DeleteRecord implements AttendanceHandler.
func (h *AttendanceHandlerImpl) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.DeleteRecord(r.Context(), chi.URLParam(r, "recordID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}

// ListRecords implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter attendance.RecordFilter
	if v := query.Get("staff_id"); v != "" {
		filter.StaffID = &v
	}
	if v := query.Get("from"); v != "" {
		filter.From = &v
	}
	if v := query.Get("to"); v != "" {
		filter.To = &v
	}

	resp, err := h.attendanceService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Staff checked in", "staff_id", req.StaffID)
	response.Created(w, "Checked in", resp)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Staff checked out", "staff_id", req.StaffID)
	response.Success(w, resp)
}

// StaffStatus implements AttendanceHandler.
func (h *AttendanceHandlerImpl) StaffStatus(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.StaffStatus(r.Context(), chi.URLParam(r, "staffID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// StatusBoard implements AttendanceHandler.
func (h *AttendanceHandlerImpl) StatusBoard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.StatusBoard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Timeline implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Timeline(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := attendance.TimelineRequest{View: query.Get("view")}
	if v := query.Get("date"); v != "" {
		req.Date = &v
	}

	resp, err := h.attendanceService.Timeline(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
