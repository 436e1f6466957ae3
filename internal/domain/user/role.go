package user

type Role string

const (
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
	RoleOwner   Role = "owner"
)

type Permission string

const (
	PermissionViewPayRuns   Permission = "payruns:view"
	PermissionManagePayRuns Permission = "payruns:manage"
	PermissionManageRates   Permission = "rates:manage"
	PermissionManageShifts  Permission = "shifts:manage"
	PermissionViewSchedule  Permission = "schedule:view"
)

var rolePermissions = map[Role][]Permission{
	RoleStaff: {
		PermissionViewSchedule,
	},
	RoleManager: {
		PermissionViewPayRuns,
		PermissionManagePayRuns,
		PermissionManageRates,
		PermissionManageShifts,
		PermissionViewSchedule,
	},
	RoleOwner: {
		PermissionViewPayRuns,
		PermissionManagePayRuns,
		PermissionManageRates,
		PermissionManageShifts,
		PermissionViewSchedule,
	},
}

func HasPermission(role Role, permission Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
