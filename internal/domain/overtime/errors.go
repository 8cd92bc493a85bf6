package overtime

import "errors"

var (
	ErrRequestNotFound          = errors.New("overtime request not found")
	ErrInvalidStatusTransition  = errors.New("request is not in a state that allows this action")
	ErrNotRequestOwner          = errors.New("request belongs to another employee")
	ErrNotSupervisedEmployee    = errors.New("employee is not supervised by this user")
	ErrDuplicateRequest         = errors.New("an overtime request already exists for this date and time")
	ErrRequestHoursExceeded     = errors.New("request exceeds the maximum hours per request")
	ErrEmployeeNotOTEligible    = errors.New("employee position is not eligible for overtime")
	ErrSelfApprovalNotPermitted = errors.New("approving your own request is not permitted")
)
