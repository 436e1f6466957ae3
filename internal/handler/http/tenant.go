package http

import (
	"encoding/json"
	"net/http"

	"github.com/rosterly/rosterly-backend-go/internal/domain/tenant"
	"github.com/rosterly/rosterly-backend-go/internal/handler/http/response"
)

type TenantHandler interface {
	GetPayrollPolicy(w http.ResponseWriter, r *http.Request)
	UpdatePayrollPolicy(w http.ResponseWriter, r *http.Request)
}

type tenantHandlerImpl struct {
	tenantService tenant.TenantService
}

func NewTenantHandler(tenantService tenant.TenantService) TenantHandler {
	return &tenantHandlerImpl{tenantService: tenantService}
}

func (h *tenantHandlerImpl) GetPayrollPolicy(w http.ResponseWriter, r *http.Request) {
	result, err := h.tenantService.GetPayrollPolicy(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *tenantHandlerImpl) UpdatePayrollPolicy(w http.ResponseWriter, r *http.Request) {
	var req tenant.UpdatePayrollPolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.tenantService.UpdatePayrollPolicy(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
