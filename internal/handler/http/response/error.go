package response

import (
	"errors"
	"net/http"

	"github.com/rosterly/rosterly-backend-go/internal/domain/payrun"
	"github.com/rosterly/rosterly-backend-go/internal/domain/rate"
	"github.com/rosterly/rosterly-backend-go/internal/domain/shift"
	"github.com/rosterly/rosterly-backend-go/internal/domain/staff"
	"github.com/rosterly/rosterly-backend-go/internal/domain/tenant"
	"github.com/rosterly/rosterly-backend-go/internal/domain/user"
	"github.com/rosterly/rosterly-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Illegal lifecycle transitions carry the full state picture
	var stateConflict *payrun.StateConflictError
	if errors.As(err, &stateConflict) {
		StateConflict(w, stateConflict.Error(), map[string]string{
			"current_state":   string(stateConflict.Current),
			"required_state":  stateConflict.Required,
			"attempted_state": string(stateConflict.Attempted),
		})
		return
	}

	switch {
	// Auth / role errors
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrTenantClaimMissing):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrManagerAccessRequired),
		errors.Is(err, user.ErrOwnerAccessRequired),
		errors.Is(err, user.ErrInsufficientPermission):
		Forbidden(w, err.Error())

	// Pay run domain errors
	case errors.Is(err, payrun.ErrPayRunNotFound):
		NotFound(w, "Pay run not found")
	case errors.Is(err, payrun.ErrPayRunLineNotFound):
		NotFound(w, "Pay run line not found")
	case errors.Is(err, payrun.ErrPayRunOverlaps):
		Conflict(w, "A pay run already covers part of this period")
	case errors.Is(err, payrun.ErrPayRunNotDraft):
		Conflict(w, "Only draft pay runs can be deleted")
	case errors.Is(err, payrun.ErrPayRunNotEditable):
		Conflict(w, "Pay run is no longer editable")
	case errors.Is(err, payrun.ErrNoEligibleStaff):
		BadRequest(w, "No staff with eligible hours in this period", nil)

	// Rate domain errors
	case errors.Is(err, rate.ErrRateRecordNotFound):
		NotFound(w, "Rate record not found")
	case errors.Is(err, rate.ErrRateRecordImmutable):
		Conflict(w, "Historical rate records cannot be deleted")
	case errors.Is(err, rate.ErrNegativeRate):
		BadRequest(w, "Hourly rate must be non-negative", nil)

	// Schedule domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftCancelled):
		Conflict(w, "Cancelled shifts cannot be reassigned")
	case errors.Is(err, shift.ErrReassignNotAllowed):
		Conflict(w, "Shift reassignment rejected by role validation")

	// Staff / tenant errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, tenant.ErrTenantNotFound):
		NotFound(w, "Tenant not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
