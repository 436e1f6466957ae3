package tenant

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	domain "github.com/rosterly/rosterly-backend-go/internal/domain/tenant"
	"github.com/rosterly/rosterly-backend-go/internal/domain/user"
	"github.com/rosterly/rosterly-backend-go/internal/pkg/jwt"
	"github.com/rosterly/rosterly-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTenantID = "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b0001"

func testContext(t *testing.T) context.Context {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret", "1h")
	tokenString, _, err := jwtService.GenerateAccessToken("0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b0002", testTenantID, user.RoleOwner)
	require.NoError(t, err)
	token, err := jwtService.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeTenantRepo struct {
	tenants  map[string]domain.Tenant
	policies map[string]domain.PayrollPolicy
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{
		tenants:  map[string]domain.Tenant{testTenantID: {ID: testTenantID}},
		policies: map[string]domain.PayrollPolicy{},
	}
}

func (f *fakeTenantRepo) GetByID(ctx context.Context, id string) (domain.Tenant, error) {
	t, ok := f.tenants[id]
	if !ok {
		return domain.Tenant{}, domain.ErrTenantNotFound
	}
	return t, nil
}

func (f *fakeTenantRepo) GetPayrollPolicy(ctx context.Context, tenantID string) (domain.PayrollPolicy, error) {
	policy, ok := f.policies[tenantID]
	if !ok {
		return domain.PayrollPolicy{}, domain.ErrPayrollPolicyNotFound
	}
	return policy, nil
}

func (f *fakeTenantRepo) UpsertPayrollPolicy(ctx context.Context, policy domain.PayrollPolicy) (domain.PayrollPolicy, error) {
	f.policies[policy.TenantID] = policy
	return policy, nil
}

func standardFallback() domain.PayrollPolicy {
	return domain.DefaultPayrollPolicy(decimal.RequireFromString("1.5"), decimal.NewFromInt(40))
}

func TestGetPayrollPolicyFallsBackToConfiguredDefault(t *testing.T) {
	fallback := domain.DefaultPayrollPolicy(decimal.RequireFromString("2.25"), decimal.NewFromInt(35))
	svc := NewTenantService(newFakeTenantRepo(), fallback)

	got, err := svc.GetPayrollPolicy(testContext(t))
	require.NoError(t, err)

	assert.True(t, got.Default)
	assert.Equal(t, testTenantID, got.TenantID)
	assert.True(t, got.OvertimeMultiplier.Equal(decimal.RequireFromString("2.25")))
	assert.True(t, got.OvertimeThresholdHours.Equal(decimal.NewFromInt(35)))
	assert.True(t, got.OvertimeResetsWeekly)
	assert.Equal(t, string(domain.CadenceWeekly), got.Cadence)
}

func TestUpdatePayrollPolicyRoundTrip(t *testing.T) {
	repo := newFakeTenantRepo()
	svc := NewTenantService(repo, standardFallback())
	ctx := testContext(t)

	updated, err := svc.UpdatePayrollPolicy(ctx, domain.UpdatePayrollPolicyRequest{
		OvertimeMultiplier:     decimal.RequireFromString("2"),
		OvertimeThresholdHours: decimal.NewFromInt(38),
		OvertimeResetsWeekly:   false,
		Cadence:                "fortnightly",
	})
	require.NoError(t, err)
	assert.False(t, updated.Default)

	got, err := svc.GetPayrollPolicy(ctx)
	require.NoError(t, err)
	assert.False(t, got.Default)
	assert.True(t, got.OvertimeMultiplier.Equal(decimal.RequireFromString("2")))
	assert.True(t, got.OvertimeThresholdHours.Equal(decimal.NewFromInt(38)))
	assert.False(t, got.OvertimeResetsWeekly)
	assert.Equal(t, "fortnightly", got.Cadence)
}

func TestUpdatePayrollPolicyUnknownTenant(t *testing.T) {
	repo := newFakeTenantRepo()
	delete(repo.tenants, testTenantID)
	svc := NewTenantService(repo, standardFallback())

	_, err := svc.UpdatePayrollPolicy(testContext(t), domain.UpdatePayrollPolicyRequest{
		OvertimeMultiplier:     decimal.RequireFromString("1.5"),
		OvertimeThresholdHours: decimal.NewFromInt(40),
		OvertimeResetsWeekly:   true,
		Cadence:                "weekly",
	})
	require.ErrorIs(t, err, domain.ErrTenantNotFound)
	assert.Empty(t, repo.policies)
}

func TestUpdatePayrollPolicyValidation(t *testing.T) {
	svc := NewTenantService(newFakeTenantRepo(), standardFallback())

	_, err := svc.UpdatePayrollPolicy(testContext(t), domain.UpdatePayrollPolicyRequest{
		OvertimeMultiplier:     decimal.RequireFromString("0.5"),
		OvertimeThresholdHours: decimal.NewFromInt(-1),
		Cadence:                "daily",
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
}
