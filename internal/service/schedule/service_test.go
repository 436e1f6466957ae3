package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/rosterly/rosterly-backend-go/internal/domain/shift"
	"github.com/rosterly/rosterly-backend-go/internal/domain/staff"
	"github.com/rosterly/rosterly-backend-go/internal/domain/user"
	"github.com/rosterly/rosterly-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTenantID = "tenant-1"

func testContext(t *testing.T) context.Context {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret", "1h")
	tokenString, _, err := jwtService.GenerateAccessToken("user-1", testTenantID, user.RoleManager)
	require.NoError(t, err)
	token, err := jwtService.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeShiftRepo struct {
	shifts       map[string]shift.Shift
	availability []shift.AvailabilityWindow
	roles        map[string]bool
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id string, _ string) (shift.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (f *fakeShiftRepo) GetByTenantInWindow(_ context.Context, _ string, from, to time.Time) ([]shift.Shift, error) {
	var result []shift.Shift
	for _, s := range f.shifts {
		if s.StartTime.Before(to) && s.EndTime.After(from) {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeShiftRepo) GetAvailabilityByTenant(_ context.Context, _ string) ([]shift.AvailabilityWindow, error) {
	return f.availability, nil
}

func (f *fakeShiftRepo) UpdateStaffAssignment(_ context.Context, id string, _ string, staffID string) (shift.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	s.StaffID = staffID
	f.shifts[id] = s
	return s, nil
}

func (f *fakeShiftRepo) RoleExists(_ context.Context, roleID string, _ string) (bool, error) {
	return f.roles[roleID], nil
}

type fakeStaffRepo struct {
	roster map[string]staff.Staff
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string, _ string) (staff.Staff, error) {
	st, ok := f.roster[id]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return st, nil
}

func (f *fakeStaffRepo) GetActiveByTenantID(_ context.Context, _ string) ([]staff.Staff, error) {
	var roster []staff.Staff
	for _, st := range f.roster {
		roster = append(roster, st)
	}
	return roster, nil
}

func (f *fakeStaffRepo) GetRoleIDs(_ context.Context, staffID string, _ string) ([]string, error) {
	st, ok := f.roster[staffID]
	if !ok {
		return nil, staff.ErrStaffNotFound
	}
	return st.RoleIDs, nil
}

func shiftAt(id, staffID string, roleID *string, start time.Time, hours int) shift.Shift {
	return shift.Shift{
		ID:        id,
		TenantID:  testTenantID,
		StaffID:   staffID,
		RoleID:    roleID,
		StartTime: start,
		EndTime:   start.Add(time.Duration(hours) * time.Hour),
		Status:    shift.StatusScheduled,
	}
}

// uuidv7-shaped IDs so request validation passes
const (
	shiftID  = "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b0001"
	staffAID = "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b00aa"
	staffBID = "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b00bb"
)

func fixture() (*fakeShiftRepo, *fakeStaffRepo, shift.ScheduleService) {
	cookRole := "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b0c00"
	day := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)

	shiftRepo := &fakeShiftRepo{
		shifts: map[string]shift.Shift{
			shiftID: shiftAt(shiftID, staffAID, &cookRole, day, 8),
		},
		roles: map[string]bool{cookRole: true},
	}
	staffRepo := &fakeStaffRepo{roster: map[string]staff.Staff{
		staffAID: {ID: staffAID, RoleIDs: []string{cookRole}},
		staffBID: {ID: staffBID, RoleIDs: []string{cookRole}},
	}}
	return shiftRepo, staffRepo, NewScheduleService(shiftRepo, staffRepo)
}

func TestDetectConflicts_FindsOverlapInWindow(t *testing.T) {
	shiftRepo, _, svc := fixture()
	day := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	other := "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b0002"
	shiftRepo.shifts[other] = shiftAt(other, staffAID, nil, day.Add(16*time.Hour), 4)
	shiftRepo.shifts[shiftID] = shiftAt(shiftID, staffAID, nil, day.Add(9*time.Hour), 8)

	resp, err := svc.DetectConflicts(testContext(t), shift.ConflictRequest{From: "2025-03-03", To: "2025-03-09"})
	require.NoError(t, err)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, shift.TypeOverlap, resp.Conflicts[0].Type)
	assert.Equal(t, staffAID, resp.Conflicts[0].StaffID)
}

func TestDetectConflicts_ValidatesRange(t *testing.T) {
	_, _, svc := fixture()

	_, err := svc.DetectConflicts(testContext(t), shift.ConflictRequest{From: "2025-03-09", To: "2025-03-03"})
	assert.Error(t, err)
}

func TestCheckReassign_DoesNotMutate(t *testing.T) {
	shiftRepo, _, svc := fixture()

	resp, err := svc.CheckReassign(testContext(t), shift.ReassignCheckRequest{
		ShiftID:       shiftID,
		TargetStaffID: staffBID,
	})
	require.NoError(t, err)
	assert.True(t, resp.Decision.Allowed)
	assert.Equal(t, staffAID, shiftRepo.shifts[shiftID].StaffID, "check must not reassign")
}

func TestReassign_MovesShiftWhenAllowed(t *testing.T) {
	shiftRepo, _, svc := fixture()

	resp, err := svc.Reassign(testContext(t), shift.ReassignRequest{
		ShiftID:       shiftID,
		TargetStaffID: staffBID,
	})
	require.NoError(t, err)
	assert.True(t, resp.Decision.Allowed)
	require.NotNil(t, resp.Shift)
	assert.Equal(t, staffBID, resp.Shift.StaffID)
	assert.Equal(t, staffBID, shiftRepo.shifts[shiftID].StaffID)
}

func TestReassign_RejectsRoleMismatch(t *testing.T) {
	shiftRepo, staffRepo, svc := fixture()
	_ = shiftRepo
	st := staffRepo.roster[staffBID]
	st.RoleIDs = []string{"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b0d00"}
	staffRepo.roster[staffBID] = st

	resp, err := svc.Reassign(testContext(t), shift.ReassignRequest{
		ShiftID:       shiftID,
		TargetStaffID: staffBID,
	})
	assert.ErrorIs(t, err, shift.ErrReassignNotAllowed)
	assert.False(t, resp.Decision.Allowed)
	assert.Equal(t, shift.ReasonRoleMismatch, resp.Decision.Reason)
	assert.Equal(t, staffAID, shiftRepo.shifts[shiftID].StaffID, "rejected drop must not move the shift")
}

func TestReassign_CancelledShift(t *testing.T) {
	shiftRepo, _, svc := fixture()
	s := shiftRepo.shifts[shiftID]
	s.Status = shift.StatusCancelled
	shiftRepo.shifts[shiftID] = s

	_, err := svc.Reassign(testContext(t), shift.ReassignRequest{
		ShiftID:       shiftID,
		TargetStaffID: staffBID,
	})
	assert.ErrorIs(t, err, shift.ErrShiftCancelled)
}

func TestReassign_MissingRoleWarnsButAllows(t *testing.T) {
	shiftRepo, _, svc := fixture()
	s := shiftRepo.shifts[shiftID]
	deleted := "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b0e00"
	s.RoleID = &deleted
	shiftRepo.shifts[shiftID] = s

	resp, err := svc.Reassign(testContext(t), shift.ReassignRequest{
		ShiftID:       shiftID,
		TargetStaffID: staffBID,
	})
	require.NoError(t, err)
	assert.True(t, resp.Decision.Allowed)
	assert.Equal(t, shift.ReasonMissingRole, resp.Decision.Reason)
}
