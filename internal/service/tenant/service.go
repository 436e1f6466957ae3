package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/rosterly/rosterly-backend-go/internal/domain/tenant"
)

type TenantServiceImpl struct {
	tenantRepo     tenant.TenantRepository
	fallbackPolicy tenant.PayrollPolicy
}

func NewTenantService(tenantRepo tenant.TenantRepository, fallbackPolicy tenant.PayrollPolicy) tenant.TenantService {
	return &TenantServiceImpl{tenantRepo: tenantRepo, fallbackPolicy: fallbackPolicy}
}

// Helper to get tenant_id from JWT context
func getClaimsFromContext(ctx context.Context) (tenantID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	tenantID, ok := claims["tenant_id"].(string)
	if !ok || tenantID == "" {
		return "", fmt.Errorf("tenant_id claim is missing or invalid")
	}

	return tenantID, nil
}

func (s *TenantServiceImpl) GetPayrollPolicy(ctx context.Context) (tenant.PayrollPolicyResponse, error) {
	tenantID, err := getClaimsFromContext(ctx)
	if err != nil {
		return tenant.PayrollPolicyResponse{}, err
	}

	policy, err := s.tenantRepo.GetPayrollPolicy(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, tenant.ErrPayrollPolicyNotFound) {
			return tenant.PayrollPolicyResponse{}, err
		}
		fallback := s.fallbackPolicy
		fallback.TenantID = tenantID
		resp := mapToPolicyResponse(fallback)
		resp.Default = true
		return resp, nil
	}

	return mapToPolicyResponse(policy), nil
}

func (s *TenantServiceImpl) UpdatePayrollPolicy(ctx context.Context, req tenant.UpdatePayrollPolicyRequest) (tenant.PayrollPolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return tenant.PayrollPolicyResponse{}, err
	}

	tenantID, err := getClaimsFromContext(ctx)
	if err != nil {
		return tenant.PayrollPolicyResponse{}, err
	}

	if _, err := s.tenantRepo.GetByID(ctx, tenantID); err != nil {
		return tenant.PayrollPolicyResponse{}, err
	}

	policy, err := s.tenantRepo.UpsertPayrollPolicy(ctx, tenant.PayrollPolicy{
		TenantID:               tenantID,
		OvertimeMultiplier:     req.OvertimeMultiplier,
		OvertimeThresholdHours: req.OvertimeThresholdHours,
		OvertimeResetsWeekly:   req.OvertimeResetsWeekly,
		Cadence:                tenant.PayPeriodCadence(req.Cadence),
	})
	if err != nil {
		return tenant.PayrollPolicyResponse{}, err
	}

	return mapToPolicyResponse(policy), nil
}

func mapToPolicyResponse(policy tenant.PayrollPolicy) tenant.PayrollPolicyResponse {
	return tenant.PayrollPolicyResponse{
		TenantID:               policy.TenantID,
		OvertimeMultiplier:     policy.OvertimeMultiplier,
		OvertimeThresholdHours: policy.OvertimeThresholdHours,
		OvertimeResetsWeekly:   policy.OvertimeResetsWeekly,
		Cadence:                string(policy.Cadence),
	}
}
