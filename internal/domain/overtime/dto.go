package overtime

import (
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/format"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/timeutil"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/validator"
)

type CreateRequestRequest struct {
	RequestDate string `json:"request_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Reason      string `json:"reason"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.RequestDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "request_date",
			Message: "request date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start time must be in HH:MM 24-hour format",
		})
	}

	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end time must be in HH:MM 24-hour format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectRequestRequest struct {
	Reason string `json:"reason"`
}

func (r *RejectRequestRequest) Validate() error {
	if validator.IsEmpty(r.Reason) {
		return validator.ValidationErrors{{
			Field:   "reason",
			Message: "a rejection reason is required",
		}}
	}
	return nil
}

type ListRequestsFilter struct {
	CompanyID    *string
	EmployeeID   *string
	SupervisorID *string
	Status       *string
	Month        *int
	Year         *int
	Page         int
	Limit        int
}

type RequestResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	EmployeeCode    *string `json:"employee_code,omitempty"`
	CompanyName     *string `json:"company_name,omitempty"`
	RequestDate     string  `json:"request_date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	TimeRange       string  `json:"time_range"`
	TotalHours      float64 `json:"total_hours"`
	TotalHoursText  string  `json:"total_hours_text"`
	DayType         string  `json:"day_type"`
	DayTypeLabel    string  `json:"day_type_label"`
	DayTypeColor    string  `json:"day_type_color"`
	RateMultiplier  float64 `json:"rate_multiplier"`
	Amount          float64 `json:"amount"`
	AmountText      string  `json:"amount_text"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	NeedsReview     bool    `json:"needs_review"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	HRApprovedAt    *string `json:"hr_approved_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func ToRequestResponse(r Request) RequestResponse {
	resp := RequestResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    r.EmployeeName,
		EmployeeCode:    r.EmployeeCode,
		CompanyName:     r.CompanyName,
		RequestDate:     r.RequestDate.Format("2006-01-02"),
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		TimeRange:       timeutil.FormatTimeRange(r.StartTime, r.EndTime),
		TotalHours:      r.TotalHours,
		TotalHoursText:  format.Hours(&r.TotalHours),
		DayType:         string(r.DayType),
		DayTypeLabel:    r.DayType.Label(),
		DayTypeColor:    r.DayType.Color(),
		RateMultiplier:  r.RateMultiplier,
		Amount:          r.Amount,
		AmountText:      format.Currency(&r.Amount),
		Reason:          r.Reason,
		Status:          r.Status,
		NeedsReview:     r.NeedsReview,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	if r.HRApprovedAt != nil {
		s := r.HRApprovedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.HRApprovedAt = &s
	}

	return resp
}
