package response

import (
	"errors"
	"net/http"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/auth"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/company"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/employee"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/holiday"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/master/department"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/master/position"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/notification"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/overtime"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/threshold"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/user"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/claims"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountNotActivated):
		Forbidden(w, "Account is not activated")
	case errors.Is(err, auth.ErrGoogleAccountNotLinked):
		Forbidden(w, "No account is linked to this Google identity")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrInvalidActivationToken):
		BadRequest(w, "Invalid or expired activation token", nil)
	case errors.Is(err, user.ErrActivationTokenConsumed):
		Conflict(w, "Activation token already used")
	case errors.Is(err, user.ErrInsufficientPermission):
		Forbidden(w, "Insufficient permission")
	case errors.Is(err, claims.ErrNoEmployeeContext):
		Forbidden(w, "Account is not linked to an employee")
	case errors.Is(err, claims.ErrNoCompanyContext):
		Forbidden(w, "Account is not linked to a company")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyCodeExists):
		Conflict(w, "Company code already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this company")
	case errors.Is(err, employee.ErrSupervisorNotFound):
		BadRequest(w, "Supervisor not found", nil)
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is not active")

	// Master data errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentInUse):
		Conflict(w, "Department still has employees assigned")
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, position.ErrPositionInUse):
		Conflict(w, "Position still has employees assigned")

	// Overtime domain errors
	case errors.Is(err, overtime.ErrRequestNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrInvalidStatusTransition):
		Conflict(w, "Request is not in a state that allows this action")
	case errors.Is(err, overtime.ErrNotRequestOwner):
		Forbidden(w, "Request belongs to another employee")
	case errors.Is(err, overtime.ErrNotSupervisedEmployee):
		Forbidden(w, "Employee is not supervised by this user")
	case errors.Is(err, overtime.ErrDuplicateRequest):
		Conflict(w, "An overtime request already exists for this date and time")
	case errors.Is(err, overtime.ErrRequestHoursExceeded):
		BadRequest(w, "Request exceeds the maximum hours per request", nil)
	case errors.Is(err, overtime.ErrEmployeeNotOTEligible):
		Forbidden(w, "Employee position is not eligible for overtime")
	case errors.Is(err, overtime.ErrSelfApprovalNotPermitted):
		Forbidden(w, "Approving your own request is not permitted")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday already exists for this date and state")
	case errors.Is(err, holiday.ErrSyncFailed):
		InternalServerError(w, "Holiday calendar sync failed")

	// Threshold domain errors
	case errors.Is(err, threshold.ErrThresholdNotFound):
		NotFound(w, "No active threshold configured")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrNotRecipient):
		Forbidden(w, "Notification belongs to another user")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
