package shift

import (
	"github.com/rosterly/rosterly-backend-go/internal/pkg/validator"
)

type ConflictRequest struct {
	From string
	To   string
}

func (r *ConflictRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.From) {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.From); !ok {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "must be an ISO date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.To) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.To); !ok {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must be an ISO date (YYYY-MM-DD)"})
	}
	if len(errs) > 0 {
		return errs
	}

	if _, _, ok := validator.ParseDateRange(r.From, r.To); !ok {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must not precede from"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ConflictResponse struct {
	From      string     `json:"from"`
	To        string     `json:"to"`
	Conflicts []Conflict `json:"conflicts"`
}

type ReassignRequest struct {
	ShiftID       string
	TargetStaffID string `json:"target_staff_id"`
}

func (r *ReassignRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ShiftID) {
		errs = append(errs, validator.ValidationError{Field: "shift_id", Message: "must be a valid UUID"})
	}
	if !validator.IsValidUUID(r.TargetStaffID) {
		errs = append(errs, validator.ValidationError{Field: "target_staff_id", Message: "must be a valid UUID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReassignCheckRequest is the read-only variant: same inputs, no mutation.
type ReassignCheckRequest struct {
	ShiftID       string `json:"shift_id"`
	TargetStaffID string `json:"target_staff_id"`
}

func (r *ReassignCheckRequest) Validate() error {
	req := ReassignRequest{ShiftID: r.ShiftID, TargetStaffID: r.TargetStaffID}
	return req.Validate()
}

type ReassignResponse struct {
	Decision DropDecision   `json:"decision"`
	Shift    *ShiftResponse `json:"shift,omitempty"`
	// Conflicts the reassignment introduces for the target staff member.
	// Warnings only; the reassignment has already been applied.
	Conflicts []Conflict `json:"conflicts,omitempty"`
}

type ShiftResponse struct {
	ID        string  `json:"id"`
	StaffID   string  `json:"staff_id"`
	RoleID    *string `json:"role_id,omitempty"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Status    string  `json:"status"`
}
