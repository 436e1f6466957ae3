package payrun

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/rosterly/rosterly-backend-go/internal/domain/payrun"
	"github.com/rosterly/rosterly-backend-go/internal/domain/rate"
	"github.com/rosterly/rosterly-backend-go/internal/domain/staff"
	"github.com/rosterly/rosterly-backend-go/internal/domain/tenant"
	"github.com/rosterly/rosterly-backend-go/internal/domain/timesheet"
	"github.com/rosterly/rosterly-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PayRunServiceImpl struct {
	payRunRepo     payrun.PayRunRepository
	staffRepo      staff.StaffRepository
	rateRepo       rate.RateRepository
	timesheetRepo  timesheet.TimesheetRepository
	tenantRepo     tenant.TenantRepository
	fallbackPolicy tenant.PayrollPolicy
}

func NewPayRunService(
	payRunRepo payrun.PayRunRepository,
	staffRepo staff.StaffRepository,
	rateRepo rate.RateRepository,
	timesheetRepo timesheet.TimesheetRepository,
	tenantRepo tenant.TenantRepository,
	fallbackPolicy tenant.PayrollPolicy,
) payrun.PayRunService {
	return &PayRunServiceImpl{
		payRunRepo:     payRunRepo,
		staffRepo:      staffRepo,
		rateRepo:       rateRepo,
		timesheetRepo:  timesheetRepo,
		tenantRepo:     tenantRepo,
		fallbackPolicy: fallbackPolicy,
	}
}

// Helper to get tenant_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (tenantID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	tenantID, ok := claims["tenant_id"].(string)
	if !ok || tenantID == "" {
		return "", "", fmt.Errorf("tenant_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return tenantID, userID, nil
}

// generation holds the outcome of one pipeline pass over the roster.
type generation struct {
	lines           []payrun.Line
	unapprovedCount int
}

// generateLines runs aggregator + rate resolver + calculator over every
// active staff member with eligible time in the period. Rate histories for
// the whole roster are batch-loaded once and held in memory for the pass.
func (s *PayRunServiceImpl) generateLines(ctx context.Context, tenantID string, periodStart, periodEnd time.Time) (generation, error) {
	policy, err := s.tenantRepo.GetPayrollPolicy(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, tenant.ErrPayrollPolicyNotFound) {
			return generation{}, err
		}
		policy = s.fallbackPolicy
		policy.TenantID = tenantID
	}

	roster, err := s.staffRepo.GetActiveByTenantID(ctx, tenantID)
	if err != nil {
		return generation{}, fmt.Errorf("failed to load staff roster: %w", err)
	}
	if len(roster) == 0 {
		return generation{}, payrun.ErrNoEligibleStaff
	}

	staffIDs := make([]string, 0, len(roster))
	for _, st := range roster {
		staffIDs = append(staffIDs, st.ID)
	}

	entriesByStaff, err := s.timesheetRepo.GetByStaffIDsInPeriod(ctx, tenantID, staffIDs, periodStart, periodEnd)
	if err != nil {
		return generation{}, fmt.Errorf("failed to load timesheet entries: %w", err)
	}

	ratesByStaff, err := s.rateRepo.GetHistoryByStaffIDs(ctx, tenantID, staffIDs, periodEnd)
	if err != nil {
		return generation{}, fmt.Errorf("failed to load rate histories: %w", err)
	}

	gen := generation{}
	for _, st := range roster {
		hours := Aggregate(entriesByStaff[st.ID], policy)
		gen.unapprovedCount += hours.UnapprovedCount
		if hours.TotalHours.IsZero() {
			continue
		}
		resolved := rate.Resolve(ratesByStaff[st.ID], periodEnd)
		gen.lines = append(gen.lines, ComputeLine(st, hours, resolved, policy))
	}

	// Stable output regardless of roster query order.
	sort.Slice(gen.lines, func(i, j int) bool {
		return gen.lines[i].EmployeeNumber < gen.lines[j].EmployeeNumber
	})

	if len(gen.lines) == 0 {
		return generation{}, payrun.ErrNoEligibleStaff
	}
	return gen, nil
}

func (s *PayRunServiceImpl) Preview(ctx context.Context, req payrun.PeriodRequest) (payrun.PreviewResponse, error) {
	if err := req.Validate(); err != nil {
		return payrun.PreviewResponse{}, err
	}

	tenantID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrun.PreviewResponse{}, err
	}

	periodStart, periodEnd, _ := validator.ParseDateRange(req.PayPeriodStart, req.PayPeriodEnd)

	gen, err := s.generateLines(ctx, tenantID, periodStart, periodEnd)
	if err != nil {
		if errors.Is(err, payrun.ErrNoEligibleStaff) {
			return payrun.PreviewResponse{
				TotalHours:     decimal.Zero,
				EstimatedGross: decimal.Zero,
				PeriodStart:    req.PayPeriodStart,
				PeriodEnd:      req.PayPeriodEnd,
			}, nil
		}
		return payrun.PreviewResponse{}, err
	}

	totals := TotalsFromLines(gen.lines)
	return payrun.PreviewResponse{
		StaffCount:      totals.StaffCount,
		TotalHours:      totals.TotalHours,
		EstimatedGross:  totals.TotalGrossPay,
		UnapprovedCount: gen.unapprovedCount,
		ExcludedCount:   totals.ExcludedCount,
		PeriodStart:     req.PayPeriodStart,
		PeriodEnd:       req.PayPeriodEnd,
	}, nil
}

func (s *PayRunServiceImpl) Create(ctx context.Context, req payrun.PeriodRequest) (payrun.PayRunResponse, error) {
	if err := req.Validate(); err != nil {
		return payrun.PayRunResponse{}, err
	}

	tenantID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrun.PayRunResponse{}, err
	}

	periodStart, periodEnd, _ := validator.ParseDateRange(req.PayPeriodStart, req.PayPeriodEnd)

	exists, err := s.payRunRepo.ExistsOverlapping(ctx, tenantID, periodStart, periodEnd)
	if err != nil {
		return payrun.PayRunResponse{}, err
	}
	if exists {
		return payrun.PayRunResponse{}, payrun.ErrPayRunOverlaps
	}

	gen, err := s.generateLines(ctx, tenantID, periodStart, periodEnd)
	if err != nil {
		return payrun.PayRunResponse{}, err
	}

	totals := TotalsFromLines(gen.lines)
	run := payrun.PayRun{
		TenantID:      tenantID,
		PeriodStart:   periodStart,
		PeriodEnd:     periodEnd,
		Status:        payrun.StatusDraft,
		TotalHours:    totals.TotalHours,
		TotalGrossPay: totals.TotalGrossPay,
		StaffCount:    totals.StaffCount,
		CreatedBy:     userID,
	}

	created, err := s.payRunRepo.Create(ctx, run, gen.lines, []payrun.Change{
		newChange("", nil, "status", "", string(payrun.StatusDraft), nil, userID),
	})
	if err != nil {
		return payrun.PayRunResponse{}, err
	}

	return s.Get(ctx, created.ID)
}

func (s *PayRunServiceImpl) Get(ctx context.Context, id string) (payrun.PayRunResponse, error) {
	tenantID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrun.PayRunResponse{}, err
	}

	run, err := s.payRunRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		return payrun.PayRunResponse{}, err
	}
	lines, err := s.payRunRepo.GetLines(ctx, run.ID, tenantID)
	if err != nil {
		return payrun.PayRunResponse{}, err
	}

	return mapToRunResponse(run, lines), nil
}

func (s *PayRunServiceImpl) List(ctx context.Context, filter payrun.Filter) (payrun.ListPayRunResponse, error) {
	tenantID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrun.ListPayRunResponse{}, err
	}

	runs, totalCount, err := s.payRunRepo.List(ctx, tenantID, filter)
	if err != nil {
		return payrun.ListPayRunResponse{}, err
	}

	result := make([]payrun.PayRunResponse, 0, len(runs))
	for _, run := range runs {
		result = append(result, mapToRunResponse(run, nil))
	}

	return payrun.ListPayRunResponse{
		Data:       result,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayRunServiceImpl) UpdateLine(ctx context.Context, req payrun.UpdateLineRequest) (payrun.LineResponse, error) {
	if err := req.Validate(); err != nil {
		return payrun.LineResponse{}, err
	}

	tenantID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrun.LineResponse{}, err
	}

	run, err := s.payRunRepo.GetByID(ctx, req.PayRunID, tenantID)
	if err != nil {
		return payrun.LineResponse{}, err
	}
	if !run.Status.Editable() {
		return payrun.LineResponse{}, payrun.ErrPayRunNotEditable
	}

	line, err := s.payRunRepo.GetLineByID(ctx, req.ID, run.ID, tenantID)
	if err != nil {
		return payrun.LineResponse{}, err
	}

	var changes []payrun.Change
	if req.Adjustments != nil && !req.Adjustments.Equal(line.Adjustments) {
		changes = append(changes, newChange(run.ID, &line.ID, "adjustments", line.Adjustments.String(), req.Adjustments.String(), req.Reason, userID))
		line.Adjustments = *req.Adjustments
	}
	if req.AdjustmentReason != nil {
		old := ""
		if line.AdjustmentReason != nil {
			old = *line.AdjustmentReason
		}
		if old != *req.AdjustmentReason {
			changes = append(changes, newChange(run.ID, &line.ID, "adjustment_reason", old, *req.AdjustmentReason, req.Reason, userID))
			line.AdjustmentReason = req.AdjustmentReason
		}
	}
	if req.HourlyRate != nil {
		old := ""
		if line.HourlyRate != nil {
			old = line.HourlyRate.String()
		}
		if old != req.HourlyRate.String() {
			changes = append(changes, newChange(run.ID, &line.ID, "hourly_rate", old, req.HourlyRate.String(), req.Reason, userID))
			line.HourlyRate = req.HourlyRate
			overtimeRate := req.HourlyRate.Mul(s.overtimeMultiplierFor(line))
			line.OvertimeRate = &overtimeRate
			// A rate override makes a previously excluded line payable.
			if line.Status == payrun.LineStatusExcluded && req.Status == nil {
				changes = append(changes, newChange(run.ID, &line.ID, "status", string(line.Status), string(payrun.LineStatusIncluded), req.Reason, userID))
				line.Status = payrun.LineStatusIncluded
			}
		}
	}
	if req.Status != nil && *req.Status != string(line.Status) {
		changes = append(changes, newChange(run.ID, &line.ID, "status", string(line.Status), *req.Status, req.Reason, userID))
		line.Status = payrun.LineStatus(*req.Status)
	}

	if len(changes) == 0 {
		return mapToLineResponse(line), nil
	}

	oldGross := line.GrossPay
	RecomputeGross(&line)
	if !oldGross.Equal(line.GrossPay) {
		changes = append(changes, newChange(run.ID, &line.ID, "gross_pay", oldGross.String(), line.GrossPay.String(), req.Reason, userID))
	}

	updated, err := s.payRunRepo.UpdateLine(ctx, tenantID, line, changes)
	if err != nil {
		return payrun.LineResponse{}, err
	}

	return mapToLineResponse(updated), nil
}

func (s *PayRunServiceImpl) Submit(ctx context.Context, id string) (payrun.PayRunResponse, error) {
	return s.transition(ctx, id, payrun.StatusReviewing)
}

func (s *PayRunServiceImpl) Approve(ctx context.Context, id string) (payrun.PayRunResponse, error) {
	return s.transition(ctx, id, payrun.StatusApproved)
}

func (s *PayRunServiceImpl) Finalise(ctx context.Context, id string) (payrun.PayRunResponse, error) {
	return s.transition(ctx, id, payrun.StatusFinalised)
}

// transition advances a run one lifecycle step. Approval freezes totals
// from included lines at that moment; the status flip, frozen totals and
// audit records commit atomically in the repository.
func (s *PayRunServiceImpl) transition(ctx context.Context, id string, to payrun.Status) (payrun.PayRunResponse, error) {
	tenantID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrun.PayRunResponse{}, err
	}

	run, err := s.payRunRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		return payrun.PayRunResponse{}, err
	}
	if err := payrun.CheckTransition(run.Status, to); err != nil {
		return payrun.PayRunResponse{}, err
	}

	changes := []payrun.Change{
		newChange(run.ID, nil, "status", string(run.Status), string(to), nil, userID),
	}

	now := time.Now()
	run.Status = to
	switch to {
	case payrun.StatusApproved:
		lines, err := s.payRunRepo.GetLines(ctx, run.ID, tenantID)
		if err != nil {
			return payrun.PayRunResponse{}, err
		}
		totals := TotalsFromLines(lines)
		run.TotalHours = totals.TotalHours
		run.TotalGrossPay = totals.TotalGrossPay
		run.StaffCount = totals.StaffCount
		run.ApprovedBy = &userID
		run.ApprovedAt = &now
	case payrun.StatusFinalised:
		run.FinalisedBy = &userID
		run.FinalisedAt = &now
	}

	updated, err := s.payRunRepo.UpdateStatus(ctx, run, changes)
	if err != nil {
		return payrun.PayRunResponse{}, err
	}

	lines, err := s.payRunRepo.GetLines(ctx, updated.ID, tenantID)
	if err != nil {
		return payrun.PayRunResponse{}, err
	}
	return mapToRunResponse(updated, lines), nil
}

func (s *PayRunServiceImpl) Delete(ctx context.Context, id string) error {
	tenantID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	run, err := s.payRunRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		return err
	}
	if run.Status != payrun.StatusDraft {
		return payrun.ErrPayRunNotDraft
	}

	return s.payRunRepo.Delete(ctx, id, tenantID)
}

func (s *PayRunServiceImpl) Export(ctx context.Context, id string) (string, []byte, error) {
	tenantID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return "", nil, err
	}

	run, err := s.payRunRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		return "", nil, err
	}
	lines, err := s.payRunRepo.GetLines(ctx, run.ID, tenantID)
	if err != nil {
		return "", nil, err
	}

	data, err := ExportCSV(lines)
	if err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("payrun_%s_%s.csv",
		run.PeriodStart.Format("2006-01-02"),
		run.PeriodEnd.Format("2006-01-02"),
	)
	return filename, data, nil
}

func (s *PayRunServiceImpl) GetChanges(ctx context.Context, id string) ([]payrun.ChangeResponse, error) {
	tenantID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.payRunRepo.GetByID(ctx, id, tenantID); err != nil {
		return nil, err
	}

	changes, err := s.payRunRepo.GetChanges(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	result := make([]payrun.ChangeResponse, 0, len(changes))
	for _, c := range changes {
		result = append(result, payrun.ChangeResponse{
			ID:           c.ID,
			PayRunID:     c.PayRunID,
			PayRunLineID: c.PayRunLineID,
			FieldChanged: c.FieldChanged,
			OldValue:     c.OldValue,
			NewValue:     c.NewValue,
			Reason:       c.Reason,
			ChangedBy:    c.ChangedBy,
			CreatedAt:    c.CreatedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}

// ========== HELPERS ==========

func newChange(payRunID string, lineID *string, field, oldValue, newValue string, reason *string, changedBy string) payrun.Change {
	return payrun.Change{
		ID:           uuid.NewString(),
		PayRunID:     payRunID,
		PayRunLineID: lineID,
		FieldChanged: field,
		OldValue:     oldValue,
		NewValue:     newValue,
		Reason:       reason,
		ChangedBy:    changedBy,
	}
}

// overtimeMultiplierFor derives the multiplier already baked into a line so
// a rate override keeps the same overtime relationship. Falls back to the
// configured default when the line never had rates.
func (s *PayRunServiceImpl) overtimeMultiplierFor(line payrun.Line) decimal.Decimal {
	if line.HourlyRate != nil && line.OvertimeRate != nil && !line.HourlyRate.IsZero() {
		return line.OvertimeRate.Div(*line.HourlyRate)
	}
	return s.fallbackPolicy.OvertimeMultiplier
}

func mapToRunResponse(run payrun.PayRun, lines []payrun.Line) payrun.PayRunResponse {
	resp := payrun.PayRunResponse{
		ID:            run.ID,
		TenantID:      run.TenantID,
		PeriodStart:   run.PeriodStart.Format("2006-01-02"),
		PeriodEnd:     run.PeriodEnd.Format("2006-01-02"),
		Status:        string(run.Status),
		TotalHours:    run.TotalHours,
		TotalGrossPay: run.TotalGrossPay,
		StaffCount:    run.StaffCount,
		CreatedBy:     run.CreatedBy,
		ApprovedBy:    run.ApprovedBy,
		FinalisedBy:   run.FinalisedBy,
	}
	if run.ApprovedAt != nil {
		str := run.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &str
	}
	if run.FinalisedAt != nil {
		str := run.FinalisedAt.Format(time.RFC3339)
		resp.FinalisedAt = &str
	}
	for _, line := range lines {
		if line.Status == payrun.LineStatusExcluded {
			resp.ExcludedCount++
		}
		resp.Lines = append(resp.Lines, mapToLineResponse(line))
	}
	return resp
}

func mapToLineResponse(line payrun.Line) payrun.LineResponse {
	return payrun.LineResponse{
		ID:               line.ID,
		StaffID:          line.StaffID,
		EmployeeNumber:   line.EmployeeNumber,
		StaffName:        line.StaffName,
		RegularHours:     line.RegularHours,
		OvertimeHours:    line.OvertimeHours,
		TotalHours:       line.TotalHours,
		HourlyRate:       line.HourlyRate,
		OvertimeRate:     line.OvertimeRate,
		RegularPay:       line.RegularPay,
		OvertimePay:      line.OvertimePay,
		Adjustments:      line.Adjustments,
		AdjustmentReason: line.AdjustmentReason,
		GrossPay:         line.GrossPay,
		Status:           string(line.Status),
		TimesheetIDs:     line.TimesheetIDs,
	}
}
