package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

type Entry struct {
	ID        string
	TenantID  string
	StaffID   string
	Date      time.Time
	Hours     decimal.Decimal
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
)
