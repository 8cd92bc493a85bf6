package position

import (
	"time"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/validator"
)

// Position is per-company master data
type Position struct {
	ID         string
	CompanyID  string
	Name       string
	Grade      *string
	OTEligible bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CreatePositionRequest struct {
	Name       string  `json:"name"`
	Grade      *string `json:"grade"`
	OTEligible bool    `json:"ot_eligible"`
}

func (r *CreatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

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

type UpdatePositionRequest struct {
	Name       *string `json:"name"`
	Grade      *string `json:"grade"`
	OTEligible *bool   `json:"ot_eligible"`
}

func (r *UpdatePositionRequest) Validate() error {
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

type PositionResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Grade      *string `json:"grade,omitempty"`
	OTEligible bool    `json:"ot_eligible"`
}

func ToPositionResponse(p Position) PositionResponse {
	return PositionResponse{ID: p.ID, Name: p.Name, Grade: p.Grade, OTEligible: p.OTEligible}
}
