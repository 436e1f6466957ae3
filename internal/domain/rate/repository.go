package rate

import (
	"context"
	"time"
)

// RateRepository defines data access methods for wage rate history.
// All methods include tenantID to prevent cross-tenant data access.
type RateRepository interface {
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id string, tenantID string) (Record, error)
	GetHistoryByStaffID(ctx context.Context, staffID string, tenantID string) ([]Record, error)

	// GetHistoryByStaffIDs loads the rate history for a whole staff set in
	// one query, capped at maxDate, grouped per staff and sorted ascending
	// by effective date. Used by run generation to avoid per-staff lookups.
	GetHistoryByStaffIDs(ctx context.Context, tenantID string, staffIDs []string, maxDate time.Time) (map[string][]Record, error)

	// Delete removes a record. Only future-dated records may be deleted;
	// records effective on or before today return ErrRateRecordImmutable.
	Delete(ctx context.Context, id string, tenantID string) error
}
