package payrun

import (
	"context"
	"time"
)

// PayRunRepository defines data access methods for pay runs, lines and the
// append-only change log. All methods include tenantID to prevent
// cross-tenant data access.
//
// Mutating methods take the audit changes that belong to the mutation and
// must write both in one transaction: a status flip or line edit must never
// commit without its change records, and vice versa.
type PayRunRepository interface {
	// Runs
	Create(ctx context.Context, run PayRun, lines []Line, changes []Change) (PayRun, error)
	GetByID(ctx context.Context, id string, tenantID string) (PayRun, error)
	List(ctx context.Context, tenantID string, filter Filter) ([]PayRun, int64, error)
	// ExistsOverlapping reports whether any run for the tenant overlaps
	// [periodStart, periodEnd] inclusive. The authoritative guard is the
	// database exclusion constraint; this check exists to produce a
	// friendly error before attempting the insert.
	ExistsOverlapping(ctx context.Context, tenantID string, periodStart, periodEnd time.Time) (bool, error)
	UpdateStatus(ctx context.Context, run PayRun, changes []Change) (PayRun, error)
	// Delete removes a draft run together with its lines and changes.
	Delete(ctx context.Context, id string, tenantID string) error

	// Lines
	GetLines(ctx context.Context, payRunID string, tenantID string) ([]Line, error)
	GetLineByID(ctx context.Context, id string, payRunID string, tenantID string) (Line, error)
	UpdateLine(ctx context.Context, tenantID string, line Line, changes []Change) (Line, error)

	// Changes (append-only, never updated or deleted)
	GetChanges(ctx context.Context, payRunID string, tenantID string) ([]Change, error)
}
