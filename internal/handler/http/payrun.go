package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rosterly/rosterly-backend-go/internal/domain/payrun"
	"github.com/rosterly/rosterly-backend-go/internal/handler/http/response"
)

type PayRunHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateLine(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Finalise(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	GetChanges(w http.ResponseWriter, r *http.Request)
}

type payRunHandlerImpl struct {
	payRunService payrun.PayRunService
}

func NewPayRunHandler(payRunService payrun.PayRunService) PayRunHandler {
	return &payRunHandlerImpl{payRunService: payRunService}
}

func (h *payRunHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	var req payrun.PeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payRunService.Preview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payRunHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payrun.PeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payRunService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pay run created", result)
}

func (h *payRunHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Pay run ID is required", nil)
		return
	}

	result, err := h.payRunService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payRunHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := payrun.Filter{}

	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			filter.Year = &year
		}
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.payRunService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
	})
}

func (h *payRunHandlerImpl) UpdateLine(w http.ResponseWriter, r *http.Request) {
	payRunID := chi.URLParam(r, "id")
	lineID := chi.URLParam(r, "lineId")
	if payRunID == "" || lineID == "" {
		response.BadRequest(w, "Pay run ID and line ID are required", nil)
		return
	}

	var req payrun.UpdateLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = lineID
	req.PayRunID = payRunID

	result, err := h.payRunService.UpdateLine(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payRunHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.payRunService.Submit)
}

func (h *payRunHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.payRunService.Approve)
}

func (h *payRunHandlerImpl) Finalise(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.payRunService.Finalise)
}

func (h *payRunHandlerImpl) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id string) (payrun.PayRunResponse, error)) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Pay run ID is required", nil)
		return
	}

	result, err := fn(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payRunHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Pay run ID is required", nil)
		return
	}

	if err := h.payRunService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay run deleted", nil)
}

func (h *payRunHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Pay run ID is required", nil)
		return
	}

	filename, data, err := h.payRunService.Export(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, filename, "text/csv", data)
}

func (h *payRunHandlerImpl) GetChanges(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Pay run ID is required", nil)
		return
	}

	result, err := h.payRunService.GetChanges(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
