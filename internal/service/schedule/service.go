package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/rosterly/rosterly-backend-go/internal/domain/shift"
	"github.com/rosterly/rosterly-backend-go/internal/domain/staff"
	"github.com/rosterly/rosterly-backend-go/internal/pkg/validator"
)

type ScheduleServiceImpl struct {
	shiftRepo shift.ShiftRepository
	staffRepo staff.StaffRepository
}

func NewScheduleService(shiftRepo shift.ShiftRepository, staffRepo staff.StaffRepository) shift.ScheduleService {
	return &ScheduleServiceImpl{
		shiftRepo: shiftRepo,
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

func (s *ScheduleServiceImpl) DetectConflicts(ctx context.Context, req shift.ConflictRequest) (shift.ConflictResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ConflictResponse{}, err
	}

	tenantID, err := getClaimsFromContext(ctx)
	if err != nil {
		return shift.ConflictResponse{}, err
	}

	from, to, _ := validator.ParseDateRange(req.From, req.To)
	// The window upper bound is exclusive at the end of the day.
	to = to.AddDate(0, 0, 1)

	shifts, err := s.shiftRepo.GetByTenantInWindow(ctx, tenantID, from, to)
	if err != nil {
		return shift.ConflictResponse{}, err
	}
	availability, err := s.shiftRepo.GetAvailabilityByTenant(ctx, tenantID)
	if err != nil {
		return shift.ConflictResponse{}, err
	}

	conflicts := shift.DetectConflicts(shifts)
	conflicts = append(conflicts, shift.DetectAvailabilityConflicts(shifts, availability)...)

	return shift.ConflictResponse{
		From:      req.From,
		To:        req.To,
		Conflicts: conflicts,
	}, nil
}

func (s *ScheduleServiceImpl) CheckReassign(ctx context.Context, req shift.ReassignCheckRequest) (shift.ReassignResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ReassignResponse{}, err
	}

	tenantID, err := getClaimsFromContext(ctx)
	if err != nil {
		return shift.ReassignResponse{}, err
	}

	decision, _, err := s.decide(ctx, tenantID, req.ShiftID, req.TargetStaffID)
	if err != nil {
		return shift.ReassignResponse{}, err
	}

	return shift.ReassignResponse{Decision: decision}, nil
}

func (s *ScheduleServiceImpl) Reassign(ctx context.Context, req shift.ReassignRequest) (shift.ReassignResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ReassignResponse{}, err
	}

	tenantID, err := getClaimsFromContext(ctx)
	if err != nil {
		return shift.ReassignResponse{}, err
	}

	decision, target, err := s.decide(ctx, tenantID, req.ShiftID, req.TargetStaffID)
	if err != nil {
		return shift.ReassignResponse{}, err
	}
	if !decision.Allowed {
		return shift.ReassignResponse{Decision: decision}, shift.ErrReassignNotAllowed
	}

	updated, err := s.shiftRepo.UpdateStaffAssignment(ctx, req.ShiftID, tenantID, target.ID)
	if err != nil {
		return shift.ReassignResponse{}, err
	}

	conflicts, err := s.conflictsIntroducedBy(ctx, tenantID, updated)
	if err != nil {
		return shift.ReassignResponse{}, err
	}

	resp := mapToShiftResponse(updated)
	return shift.ReassignResponse{
		Decision:  decision,
		Shift:     &resp,
		Conflicts: conflicts,
	}, nil
}

// decide loads the shift and target and runs the role-drop rules. Cancelled
// shifts cannot be reassigned regardless of roles.
func (s *ScheduleServiceImpl) decide(ctx context.Context, tenantID, shiftID, targetStaffID string) (shift.DropDecision, staff.Staff, error) {
	sh, err := s.shiftRepo.GetByID(ctx, shiftID, tenantID)
	if err != nil {
		return shift.DropDecision{}, staff.Staff{}, err
	}
	if sh.Status == shift.StatusCancelled {
		return shift.DropDecision{}, staff.Staff{}, shift.ErrShiftCancelled
	}

	target, err := s.staffRepo.GetByID(ctx, targetStaffID, tenantID)
	if err != nil {
		return shift.DropDecision{}, staff.Staff{}, err
	}

	targetRoleIDs, err := s.staffRepo.GetRoleIDs(ctx, target.ID, tenantID)
	if err != nil {
		return shift.DropDecision{}, staff.Staff{}, err
	}

	roleExists := false
	if sh.RoleID != nil && *sh.RoleID != "" {
		roleExists, err = s.shiftRepo.RoleExists(ctx, *sh.RoleID, tenantID)
		if err != nil {
			return shift.DropDecision{}, staff.Staff{}, err
		}
	}

	decision := shift.CanDropShift(sh.RoleID, sh.StaffID, target.ID, targetRoleIDs, roleExists)
	return decision, target, nil
}

// conflictsIntroducedBy re-checks the reassigned shift's day against the
// target's other shifts and availability so the caller can warn the user.
func (s *ScheduleServiceImpl) conflictsIntroducedBy(ctx context.Context, tenantID string, sh shift.Shift) ([]shift.Conflict, error) {
	from := truncateToDate(sh.StartTime)
	to := truncateToDate(sh.EndTime).AddDate(0, 0, 1)

	shifts, err := s.shiftRepo.GetByTenantInWindow(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}
	availability, err := s.shiftRepo.GetAvailabilityByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var related []shift.Conflict
	all := shift.DetectConflicts(shifts)
	all = append(all, shift.DetectAvailabilityConflicts(shifts, availability)...)
	for _, c := range all {
		if c.ShiftID == sh.ID || c.OtherShiftID == sh.ID {
			related = append(related, c)
		}
	}
	return related, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func mapToShiftResponse(sh shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:        sh.ID,
		StaffID:   sh.StaffID,
		RoleID:    sh.RoleID,
		StartTime: sh.StartTime.Format(time.RFC3339),
		EndTime:   sh.EndTime.Format(time.RFC3339),
		Status:    string(sh.Status),
	}
}
