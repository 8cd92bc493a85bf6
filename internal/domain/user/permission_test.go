package user

import "testing"

func TestHasPermission(t *testing.T) {
	cases := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleEmployee, PermissionVerifyOvertime, false},
		{RoleEmployee, PermissionViewReports, false},
		{RoleSupervisor, PermissionVerifyOvertime, true},
		{RoleSupervisor, PermissionApproveOvertime, false},
		{RoleSupervisor, PermissionManageEmployees, false},
		{RoleHR, PermissionManageEmployees, true},
		{RoleHR, PermissionApproveOvertime, true},
		{RoleHR, PermissionViewReports, true},
		{RoleHR, PermissionManageThresholds, false},
		{RoleHR, PermissionReviewOvertime, false},
		{RoleManagement, PermissionManageThresholds, true},
		{RoleManagement, PermissionReviewOvertime, true},
		{RoleManagement, PermissionApproveOvertime, true},
	}
	for _, c := range cases {
		if got := HasPermission(c.role, c.permission); got != c.want {
			t.Errorf("HasPermission(%q, %q) = %v, want %v", c.role, c.permission, got, c.want)
		}
	}
}

func TestHasPermissionUnknownRole(t *testing.T) {
	if HasPermission(Role("intern"), PermissionViewReports) {
		t.Error("unknown role should have no permissions")
	}
}

func TestRoleIsValid(t *testing.T) {
	for _, role := range AllRoles() {
		if !role.IsValid() {
			t.Errorf("Role(%q).IsValid() = false, want true", role)
		}
	}
	for _, role := range []Role{"", "admin", "Employee"} {
		if role.IsValid() {
			t.Errorf("Role(%q).IsValid() = true, want false", role)
		}
	}
}
