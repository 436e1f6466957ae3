package rate

import (
	"github.com/rosterly/rosterly-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRateRequest struct {
	StaffID       string
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	EffectiveDate string          `json:"effective_date"`
}

func (r *CreateRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "must be a valid UUID"})
	}
	if r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if validator.IsEmpty(r.EffectiveDate) {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be an ISO date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RateResponse struct {
	ID            string          `json:"id"`
	StaffID       string          `json:"staff_id"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	EffectiveDate string          `json:"effective_date"`
	CreatedAt     string          `json:"created_at"`
}

type RateHistoryResponse struct {
	StaffID string         `json:"staff_id"`
	Data    []RateResponse `json:"data"`
}
