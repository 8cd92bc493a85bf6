package user

// Permission represents a named capability checked by route middleware
type Permission string

const (
	PermissionManageEmployees  Permission = "manage_employees"
	PermissionManageMasterData Permission = "manage_master_data"
	PermissionManageHolidays   Permission = "manage_holidays"
	PermissionManageThresholds Permission = "manage_thresholds"
	PermissionVerifyOvertime   Permission = "verify_overtime"
	PermissionApproveOvertime  Permission = "approve_overtime"
	PermissionReviewOvertime   Permission = "review_overtime"
	PermissionViewReports      Permission = "view_reports"
)

var rolePermissions = map[Role][]Permission{
	RoleEmployee: {},
	RoleSupervisor: {
		PermissionVerifyOvertime,
	},
	RoleHR: {
		PermissionManageEmployees,
		PermissionManageMasterData,
		PermissionManageHolidays,
		PermissionVerifyOvertime,
		PermissionApproveOvertime,
		PermissionViewReports,
	},
	RoleManagement: {
		PermissionManageEmployees,
		PermissionManageMasterData,
		PermissionManageHolidays,
		PermissionManageThresholds,
		PermissionVerifyOvertime,
		PermissionApproveOvertime,
		PermissionReviewOvertime,
		PermissionViewReports,
	},
}

// HasPermission reports whether the role carries the permission
func HasPermission(role Role, permission Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
