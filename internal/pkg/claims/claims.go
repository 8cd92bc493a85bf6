package claims

import (
	"context"
	"errors"
	"fmt"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

var (
	ErrNoEmployeeContext = errors.New("account is not linked to an employee")
	ErrNoCompanyContext  = errors.New("account is not linked to a company")
)

// Claims are the authenticated actor's token claims
type Claims struct {
	UserID     string
	Email      string
	Role       user.Role
	EmployeeID *string
	CompanyID  *string
}

// FromContext extracts the actor from the verified JWT in ctx
func FromContext(ctx context.Context) (Claims, error) {
	_, raw, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := raw["user_id"].(string)
	if !ok || userID == "" {
		return Claims{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	c := Claims{UserID: userID}
	if email, ok := raw["email"].(string); ok {
		c.Email = email
	}
	if role, ok := raw["role"].(string); ok {
		c.Role = user.Role(role)
	}
	if employeeID, ok := raw["employee_id"].(string); ok && employeeID != "" {
		c.EmployeeID = &employeeID
	}
	if companyID, ok := raw["company_id"].(string); ok && companyID != "" {
		c.CompanyID = &companyID
	}
	return c, nil
}

// MustEmployeeID returns the actor's employee id or an error when the
// account has no employee record attached
func (c Claims) MustEmployeeID() (string, error) {
	if c.EmployeeID == nil || *c.EmployeeID == "" {
		return "", ErrNoEmployeeContext
	}
	return *c.EmployeeID, nil
}

// MustCompanyID returns the actor's company id or an error when the
// account has no company attached
func (c Claims) MustCompanyID() (string, error) {
	if c.CompanyID == nil || *c.CompanyID == "" {
		return "", ErrNoCompanyContext
	}
	return *c.CompanyID, nil
}
