package shift

// DropDecision is the outcome of a role-drop validation.
type DropDecision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// Reasons returned by CanDropShift. MissingRole accompanies an allowed
// decision so the UI can warn without blocking.
const (
	ReasonMissingRole  = "MISSING_ROLE"
	ReasonNoRoles      = "NO_ROLES"
	ReasonRoleMismatch = "ROLE_MISMATCH"
)

// CanDropShift decides whether a shift may be reassigned from one staff
// member to another, based on role compatibility. Rules are evaluated in
// order, first match wins:
//
//  1. Reassigning to the same staff member is always allowed.
//  2. A shift with no role requirement is unconstrained.
//  3. A role deleted since the shift was created allows the drop but flags
//     MISSING_ROLE.
//  4. A target with no roles at all is rejected (NO_ROLES).
//  5. Otherwise the target must hold the shift's role (ROLE_MISMATCH).
//
// Every surface that reassigns shifts must go through this function;
// duplicating these rules inline diverges behavior between views.
func CanDropShift(shiftRoleID *string, sourceStaffID, targetStaffID string, targetRoleIDs []string, roleExists bool) DropDecision {
	if sourceStaffID == targetStaffID {
		return DropDecision{Allowed: true}
	}
	if shiftRoleID == nil || *shiftRoleID == "" {
		return DropDecision{Allowed: true}
	}
	if !roleExists {
		return DropDecision{Allowed: true, Reason: ReasonMissingRole}
	}
	if len(targetRoleIDs) == 0 {
		return DropDecision{Allowed: false, Reason: ReasonNoRoles}
	}
	for _, id := range targetRoleIDs {
		if id == *shiftRoleID {
			return DropDecision{Allowed: true}
		}
	}
	return DropDecision{Allowed: false, Reason: ReasonRoleMismatch}
}
