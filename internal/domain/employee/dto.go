package employee

import (
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode   string  `json:"employee_code"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone"`
	DepartmentID   *string `json:"department_id"`
	PositionID     *string `json:"position_id"`
	SupervisorID   *string `json:"supervisor_id"`
	MonthlySalary  float64 `json:"monthly_salary"`
	EmploymentType string  `json:"employment_type"`
	HireDate       string  `json:"hire_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee code must look like ENG-0042",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if r.MonthlySalary <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly salary must be greater than zero",
		})
	}

	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.EmploymentType, []string{"permanent", "contract", "probation"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment type must be permanent, contract or probation",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	FullName       *string  `json:"full_name"`
	Phone          *string  `json:"phone"`
	DepartmentID   *string  `json:"department_id"`
	PositionID     *string  `json:"position_id"`
	SupervisorID   *string  `json:"supervisor_id"`
	MonthlySalary  *float64 `json:"monthly_salary"`
	EmploymentType *string  `json:"employment_type"`
	Status         *string  `json:"status"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full name cannot be empty",
		})
	}

	if r.MonthlySalary != nil && *r.MonthlySalary <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly salary must be greater than zero",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{StatusActive, StatusInactive, StatusResigned}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active, inactive or resigned",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListEmployeesFilter struct {
	CompanyID    string
	DepartmentID *string
	Status       *string
	Search       *string
	Page         int
	Limit        int
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	EmployeeCode   string  `json:"employee_code"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone,omitempty"`
	CompanyName    *string `json:"company_name,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	PositionName   *string `json:"position_name,omitempty"`
	SupervisorName *string `json:"supervisor_name,omitempty"`
	MonthlySalary  float64 `json:"monthly_salary"`
	HourlyRate     float64 `json:"hourly_rate"`
	EmploymentType string  `json:"employment_type"`
	Status         string  `json:"status"`
	HireDate       string  `json:"hire_date"`
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		EmployeeCode:   e.EmployeeCode,
		FullName:       e.FullName,
		Email:          e.Email,
		Phone:          e.Phone,
		CompanyName:    e.CompanyName,
		DepartmentName: e.DepartmentName,
		PositionName:   e.PositionName,
		SupervisorName: e.SupervisorName,
		MonthlySalary:  e.MonthlySalary,
		HourlyRate:     e.HourlyRate(),
		EmploymentType: e.EmploymentType,
		Status:         e.Status,
		HireDate:       e.HireDate.Format("2006-01-02"),
	}
}
