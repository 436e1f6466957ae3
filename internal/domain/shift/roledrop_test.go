package shift

import "testing"

func strPtr(s string) *string { return &s }

func TestCanDropShift(t *testing.T) {
	cases := []struct {
		name        string
		shiftRoleID *string
		source      string
		target      string
		targetRoles []string
		roleExists  bool
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "same staff is a no-op even with no roles",
			shiftRoleID: strPtr("chef"),
			source:      "s1",
			target:      "s1",
			targetRoles: nil,
			roleExists:  true,
			wantAllowed: true,
		},
		{
			name:        "unconstrained shift",
			shiftRoleID: nil,
			source:      "s1",
			target:      "s2",
			targetRoles: nil,
			roleExists:  false,
			wantAllowed: true,
		},
		{
			name:        "empty role id treated as unconstrained",
			shiftRoleID: strPtr(""),
			source:      "s1",
			target:      "s2",
			targetRoles: nil,
			roleExists:  false,
			wantAllowed: true,
		},
		{
			name:        "deleted role allows with flag",
			shiftRoleID: strPtr("chef"),
			source:      "s1",
			target:      "s2",
			targetRoles: []string{"server"},
			roleExists:  false,
			wantAllowed: true,
			wantReason:  ReasonMissingRole,
		},
		{
			name:        "target without roles rejected",
			shiftRoleID: strPtr("chef"),
			source:      "s1",
			target:      "s2",
			targetRoles: []string{},
			roleExists:  true,
			wantAllowed: false,
			wantReason:  ReasonNoRoles,
		},
		{
			name:        "role mismatch rejected",
			shiftRoleID: strPtr("chef"),
			source:      "s1",
			target:      "s2",
			targetRoles: []string{"server"},
			roleExists:  true,
			wantAllowed: false,
			wantReason:  ReasonRoleMismatch,
		},
		{
			name:        "matching role allowed",
			shiftRoleID: strPtr("chef"),
			source:      "s1",
			target:      "s2",
			targetRoles: []string{"server", "chef"},
			roleExists:  true,
			wantAllowed: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CanDropShift(c.shiftRoleID, c.source, c.target, c.targetRoles, c.roleExists)
			if got.Allowed != c.wantAllowed {
				t.Errorf("Allowed = %v, want %v", got.Allowed, c.wantAllowed)
			}
			if got.Reason != c.wantReason {
				t.Errorf("Reason = %q, want %q", got.Reason, c.wantReason)
			}
		})
	}
}
