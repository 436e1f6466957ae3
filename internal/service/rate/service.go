package rate

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/rosterly/rosterly-backend-go/internal/domain/rate"
	"github.com/rosterly/rosterly-backend-go/internal/domain/staff"
	"github.com/rosterly/rosterly-backend-go/internal/pkg/validator"
)

type RateServiceImpl struct {
	rateRepo  rate.RateRepository
	staffRepo staff.StaffRepository
}

func NewRateService(rateRepo rate.RateRepository, staffRepo staff.StaffRepository) rate.RateService {
	return &RateServiceImpl{
		rateRepo:  rateRepo,
		staffRepo: staffRepo,
	}
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

func (s *RateServiceImpl) Create(ctx context.Context, req rate.CreateRateRequest) (rate.RateResponse, error) {
	if err := req.Validate(); err != nil {
		return rate.RateResponse{}, err
	}

	tenantID, err := getClaimsFromContext(ctx)
	if err != nil {
		return rate.RateResponse{}, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID, tenantID); err != nil {
		return rate.RateResponse{}, err
	}

	effectiveDate, _ := validator.IsValidDate(req.EffectiveDate)

	record, err := s.rateRepo.Create(ctx, rate.Record{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		StaffID:       req.StaffID,
		HourlyRate:    req.HourlyRate,
		EffectiveDate: effectiveDate,
	})
	if err != nil {
		return rate.RateResponse{}, err
	}

	return mapToRateResponse(record), nil
}

func (s *RateServiceImpl) GetHistory(ctx context.Context, staffID string) (rate.RateHistoryResponse, error) {
	tenantID, err := getClaimsFromContext(ctx)
	if err != nil {
		return rate.RateHistoryResponse{}, err
	}

	if _, err := s.staffRepo.GetByID(ctx, staffID, tenantID); err != nil {
		return rate.RateHistoryResponse{}, err
	}

	history, err := s.rateRepo.GetHistoryByStaffID(ctx, staffID, tenantID)
	if err != nil {
		return rate.RateHistoryResponse{}, err
	}

	result := rate.RateHistoryResponse{
		StaffID: staffID,
		Data:    make([]rate.RateResponse, 0, len(history)),
	}
	for _, record := range history {
		result.Data = append(result.Data, mapToRateResponse(record))
	}
	return result, nil
}

func (s *RateServiceImpl) Delete(ctx context.Context, id string) error {
	tenantID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	record, err := s.rateRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		return err
	}
	// History effective on or before today has already priced pay runs.
	if !record.EffectiveDate.After(truncateToDate(time.Now())) {
		return rate.ErrRateRecordImmutable
	}

	return s.rateRepo.Delete(ctx, id, tenantID)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func mapToRateResponse(record rate.Record) rate.RateResponse {
	return rate.RateResponse{
		ID:            record.ID,
		StaffID:       record.StaffID,
		HourlyRate:    record.HourlyRate,
		EffectiveDate: record.EffectiveDate.Format("2006-01-02"),
		CreatedAt:     record.CreatedAt.Format(time.RFC3339),
	}
}
