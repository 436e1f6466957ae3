package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rosterly/rosterly-backend-go/internal/domain/shift"
	"github.com/rosterly/rosterly-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Conflicts(w http.ResponseWriter, r *http.Request)
	Reassign(w http.ResponseWriter, r *http.Request)
	ReassignCheck(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService shift.ScheduleService
}

func NewScheduleHandler(scheduleService shift.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{scheduleService: scheduleService}
}

func (h *scheduleHandlerImpl) Conflicts(w http.ResponseWriter, r *http.Request) {
	req := shift.ConflictRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	result, err := h.scheduleService.DetectConflicts(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) Reassign(w http.ResponseWriter, r *http.Request) {
	shiftID := chi.URLParam(r, "id")
	if shiftID == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	var req shift.ReassignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ShiftID = shiftID

	result, err := h.scheduleService.Reassign(r.Context(), req)
	if err != nil {
		// A rejected drop still carries the decision so the client can
		// show the reason.
		if err == shift.ErrReassignNotAllowed {
			response.Conflict(w, result.Decision.Reason)
			return
		}
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) ReassignCheck(w http.ResponseWriter, r *http.Request) {
	var req shift.ReassignCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.scheduleService.CheckReassign(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
