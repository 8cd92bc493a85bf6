package employee

import "time"

// Employee represents one person who can file overtime requests
type Employee struct {
	ID             string
	CompanyID      string
	DepartmentID   *string
	PositionID     *string
	SupervisorID   *string
	EmployeeCode   string
	FullName       string
	Email          string
	Phone          *string
	MonthlySalary  float64
	EmploymentType string
	Status         string
	HireDate       time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time

	// Joined display fields
	CompanyName    *string
	DepartmentName *string
	PositionName   *string
	SupervisorName *string
}

// Employment statuses
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusResigned = "resigned"
)

// HourlyRate derives the base hourly rate from the monthly salary using the
// statutory 26-day, 8-hour divisor.
func (e Employee) HourlyRate() float64 {
	return e.MonthlySalary / 26.0 / 8.0
}
