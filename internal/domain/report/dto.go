package report

import (
	"fmt"
	"time"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/validator"
)

type MonthlyOvertimeReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlyOvertimeReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReportRow is one employee's approved overtime for the period, as returned
// by the report query. TotalOTHours and Amount may be absent for employees
// with no approved requests and are treated as zero when aggregating.
type ReportRow struct {
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	EmployeeCode string   `json:"employee_code"`
	Department   *string  `json:"department,omitempty"`
	Position     *string  `json:"position,omitempty"`
	CompanyID    *string  `json:"company_id"`
	CompanyName  *string  `json:"company_name"`
	CompanyCode  *string  `json:"company_code"`
	TotalOTHours *float64 `json:"total_ot_hours"`
	Amount       *float64 `json:"amount"`
	RequestCount int      `json:"request_count"`
}

// GroupStats are the per-company running totals
type GroupStats struct {
	TotalEmployees int     `json:"total_employees"`
	TotalHours     float64 `json:"total_hours"`
	TotalCost      float64 `json:"total_cost"`
}

// CompanyReportGroup is one company's slice of the report
type CompanyReportGroup struct {
	CompanyID   string      `json:"company_id"`
	CompanyName string      `json:"company_name"`
	CompanyCode string      `json:"company_code"`
	Employees   []ReportRow `json:"employees"`
	Stats       GroupStats  `json:"stats"`
}

// OverallStats summarize the whole report across groups
type OverallStats struct {
	TotalCompanies int     `json:"total_companies"`
	TotalEmployees int     `json:"total_employees"`
	TotalHours     float64 `json:"total_hours"`
	TotalCost      float64 `json:"total_cost"`
}

// MonthlyOvertimeReport is the full report payload
type MonthlyOvertimeReport struct {
	PeriodMonth int                  `json:"period_month"`
	PeriodYear  int                  `json:"period_year"`
	GeneratedAt string               `json:"generated_at"`
	Groups      []CompanyReportGroup `json:"groups"`
	Stats       OverallStats         `json:"stats"`
}
