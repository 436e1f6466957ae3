package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
}

func TestLoadPayrollDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Payroll.DefaultOvertimeMultiplier.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, cfg.Payroll.DefaultOvertimeThresholdHours.Equal(decimal.NewFromInt(40)))
}

func TestLoadPayrollOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PAYROLL_DEFAULT_OVERTIME_MULTIPLIER", "2.25")
	t.Setenv("PAYROLL_DEFAULT_OVERTIME_THRESHOLD_HOURS", "35")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Payroll.DefaultOvertimeMultiplier.Equal(decimal.RequireFromString("2.25")))
	assert.True(t, cfg.Payroll.DefaultOvertimeThresholdHours.Equal(decimal.NewFromInt(35)))
}

func TestLoadPayrollRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric multiplier", "PAYROLL_DEFAULT_OVERTIME_MULTIPLIER", "lots"},
		{"multiplier below one", "PAYROLL_DEFAULT_OVERTIME_MULTIPLIER", "0.5"},
		{"negative threshold", "PAYROLL_DEFAULT_OVERTIME_THRESHOLD_HOURS", "-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
