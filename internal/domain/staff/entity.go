package staff

import "time"

type Staff struct {
	ID             string
	TenantID       string
	EmployeeNumber string
	FullName       string
	Status         Status
	RoleIDs        []string
	HireDate       time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
