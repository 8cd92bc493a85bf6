package user

import "time"

// Role represents the dashboard role attached to a user account
type Role string

const (
	RoleEmployee   Role = "employee"
	RoleSupervisor Role = "supervisor"
	RoleHR         Role = "hr"
	RoleManagement Role = "management"
)

// AllRoles returns all assignable roles
func AllRoles() []Role {
	return []Role{RoleEmployee, RoleSupervisor, RoleHR, RoleManagement}
}

// IsValid reports whether r is an assignable role
func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleSupervisor, RoleHR, RoleManagement:
		return true
	}
	return false
}

// User represents a dashboard account
type User struct {
	ID           string
	Email        string
	PasswordHash *string
	GoogleID     *string
	Role         Role
	EmployeeID   *string
	CompanyID    *string
	IsActive     bool
	ActivatedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
