package threshold

import (
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/validator"
)

type UpsertThresholdRequest struct {
	MaxMonthlyHours float64 `json:"max_monthly_hours"`
	MaxRequestHours float64 `json:"max_request_hours"`
	IsActive        bool    `json:"is_active"`
}

func (r *UpsertThresholdRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MaxMonthlyHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_monthly_hours",
			Message: "max monthly hours must be greater than zero",
		})
	}

	if r.MaxRequestHours <= 0 || r.MaxRequestHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_request_hours",
			Message: "max request hours must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ThresholdResponse struct {
	ID              string  `json:"id"`
	CompanyID       string  `json:"company_id"`
	MaxMonthlyHours float64 `json:"max_monthly_hours"`
	MaxRequestHours float64 `json:"max_request_hours"`
	IsActive        bool    `json:"is_active"`
}

func ToThresholdResponse(t Threshold) ThresholdResponse {
	return ThresholdResponse{
		ID:              t.ID,
		CompanyID:       t.CompanyID,
		MaxMonthlyHours: t.MaxMonthlyHours,
		MaxRequestHours: t.MaxRequestHours,
		IsActive:        t.IsActive,
	}
}
