package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrEmailExists        = errors.New("email already registered in this company")
	ErrSupervisorNotFound = errors.New("supervisor not found")
	ErrEmployeeInactive   = errors.New("employee is not active")
)
