package shift

import "context"

// ScheduleService surfaces schedule consistency checks and role-validated
// shift reassignment. Tenant scope comes from JWT claims on the context.
type ScheduleService interface {
	DetectConflicts(ctx context.Context, req ConflictRequest) (ConflictResponse, error)
	CheckReassign(ctx context.Context, req ReassignCheckRequest) (ReassignResponse, error)
	Reassign(ctx context.Context, req ReassignRequest) (ReassignResponse, error)
}
