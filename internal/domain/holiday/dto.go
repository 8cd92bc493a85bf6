package holiday

import (
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date  string `json:"date"`
	Name  string `json:"name"`
	State string `json:"state"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateHolidayRequest struct {
	Name     *string `json:"name"`
	State    *string `json:"state"`
	IsActive *bool   `json:"is_active"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListHolidaysFilter struct {
	CompanyID *string
	Year      *int
	State     *string
}

type HolidayResponse struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Name     string `json:"name"`
	State    string `json:"state"`
	Source   string `json:"source"`
	IsActive bool   `json:"is_active"`
}

func ToHolidayResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:       h.ID,
		Date:     h.Date.Format("2006-01-02"),
		Name:     h.Name,
		State:    h.State,
		Source:   h.Source,
		IsActive: h.IsActive,
	}
}
