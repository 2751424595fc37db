package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/transwerk/personal-backend-go/internal/domain/leave"
	"github.com/transwerk/personal-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	ListByYear(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// JahresansichtResponse is the leave year view: the request list and the
// status tallies. The stats always cover the whole year, regardless of the
// status filter on the list.
type JahresansichtResponse struct {
	Antraege []leave.LeaveRequestResponse `json:"antraege"`
	Stats    leave.LeaveStats             `json:"stats"`
}

// ListByYear implements LeaveHandler. jahr defaults to the current year.
func (h *LeaveHandlerImpl) ListByYear(w http.ResponseWriter, r *http.Request) {
	jahr := time.Now().Year()
	if raw := r.URL.Query().Get("jahr"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "jahr must be a number", nil)
			return
		}
		jahr = parsed
	}
	status := r.URL.Query().Get("status")

	requests, err := h.leaveService.ListByYear(r.Context(), jahr, status)
	if err != nil {
		slog.Error("ListByYear service error", "error", err)
		response.HandleError(w, err)
		return
	}
	stats, err := h.leaveService.GetStats(r.Context(), jahr)
	if err != nil {
		slog.Error("GetStats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, JahresansichtResponse{
		Antraege: requests,
		Stats:    stats,
	})
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateLeaveRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.CreateLeaveRequest(r.Context(), req)
	if err != nil {
		slog.Error("CreateLeaveRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request created successfully", created)
}

// UpdateStatus implements LeaveHandler.
func (h *LeaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req leave.UpdateLeaveStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateLeaveStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.leaveService.UpdateStatus(r.Context(), id, req)
	if err != nil {
		slog.Error("UpdateLeaveStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request updated successfully", updated)
}

// Delete implements LeaveHandler.
func (h *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.leaveService.DeleteLeaveRequest(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request deleted successfully", nil)
}
