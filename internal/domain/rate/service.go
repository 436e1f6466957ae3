package rate

import "context"

// RateService manages the append-only wage rate history. Tenant scope
// comes from JWT claims on the context.
type RateService interface {
	Create(ctx context.Context, req CreateRateRequest) (RateResponse, error)
	GetHistory(ctx context.Context, staffID string) (RateHistoryResponse, error)
	Delete(ctx context.Context, id string) error
}
