package company

import (
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/validator"
)

type CreateCompanyRequest struct {
	Name  string `json:"name"`
	Code  string `json:"code"`
	State string `json:"state"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCompanyRequest struct {
	Name  *string `json:"name"`
	Code  *string `json:"code"`
	State *string `json:"state"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be empty",
		})
	}

	if r.Code != nil && validator.IsEmpty(*r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code cannot be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CompanyResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Code  string `json:"code"`
	State string `json:"state"`
}

func ToCompanyResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:    c.ID,
		Name:  c.Name,
		Code:  c.Code,
		State: c.State,
	}
}
