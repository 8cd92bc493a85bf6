package overtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/employee"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/master/position"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/notification"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/overtime"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/threshold"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/user"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/claims"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/email"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/format"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/timeutil"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/validator"
)

type OvertimeServiceImpl struct {
	overtimeRepository  overtime.Repository
	employeeRepository  employee.Repository
	positionRepository  position.Repository
	thresholdRepository threshold.Repository
	userRepository      user.Repository
	notificationService notification.Service
	emailService        email.EmailService
}

func NewOvertimeService(
	overtimeRepository overtime.Repository,
	employeeRepository employee.Repository,
	positionRepository position.Repository,
	thresholdRepository threshold.Repository,
	userRepository user.Repository,
	notificationService notification.Service,
	emailService email.EmailService,
) overtime.Service {
	return &OvertimeServiceImpl{
		overtimeRepository:  overtimeRepository,
		employeeRepository:  employeeRepository,
		positionRepository:  positionRepository,
		thresholdRepository: thresholdRepository,
		userRepository:      userRepository,
		notificationService: notificationService,
		emailService:        emailService,
	}
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// Create implements overtime.Service.
func (s *OvertimeServiceImpl) Create(ctx context.Context, req overtime.CreateRequestRequest) (overtime.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.RequestResponse{}, err
	}

	actor, err := claims.FromContext(ctx)
	if err != nil {
		return overtime.RequestResponse{}, err
	}
	employeeID, err := actor.MustEmployeeID()
	if err != nil {
		return overtime.RequestResponse{}, err
	}
	companyID, err := actor.MustCompanyID()
	if err != nil {
		return overtime.RequestResponse{}, err
	}

	emp, err := s.employeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return overtime.RequestResponse{}, err
	}
	if emp.Status != employee.StatusActive {
		return overtime.RequestResponse{}, employee.ErrEmployeeInactive
	}
	if emp.PositionID != nil {
		pos, err := s.positionRepository.GetByID(ctx, *emp.PositionID)
		if err != nil {
			return overtime.RequestResponse{}, err
		}
		if !pos.OTEligible {
			return overtime.RequestResponse{}, overtime.ErrEmployeeNotOTEligible
		}
	}

	requestDate, err := time.Parse("2006-01-02", req.RequestDate)
	if err != nil {
		return overtime.RequestResponse{}, fmt.Errorf("failed to parse request date: %w", err)
	}

	totalHours, err := timeutil.ComputeHours(req.StartTime, req.EndTime)
	if err != nil {
		return overtime.RequestResponse{}, validator.ValidationErrors{{
			Field:   "start_time",
			Message: "start and end time must be valid HH:MM clock times",
		}}
	}

	overlaps, err := s.overtimeRepository.Overlaps(ctx, employeeID, requestDate, req.StartTime, req.EndTime)
	if err != nil {
		return overtime.RequestResponse{}, err
	}
	if overlaps {
		return overtime.RequestResponse{}, overtime.ErrDuplicateRequest
	}

	dayType, err := s.overtimeRepository.ClassifyDayType(ctx, companyID, requestDate)
	if err != nil {
		return overtime.RequestResponse{}, err
	}

	multiplier := dayType.RateMultiplier()
	amount := roundMoney(totalHours * emp.HourlyRate() * multiplier)

	needsReview := false
	thr, err := s.thresholdRepository.GetActiveByCompany(ctx, companyID)
	switch {
	case errors.Is(err, threshold.ErrThresholdNotFound):
		// No active threshold, no caps apply
	case err != nil:
		return overtime.RequestResponse{}, err
	default:
		if thr.MaxRequestHours > 0 && totalHours > thr.MaxRequestHours {
			return overtime.RequestResponse{}, overtime.ErrRequestHoursExceeded
		}
		if thr.MaxMonthlyHours > 0 {
			approvedHours, err := s.overtimeRepository.ApprovedMonthlyHours(ctx, employeeID, requestDate)
			if err != nil {
				return overtime.RequestResponse{}, err
			}
			needsReview = approvedHours+totalHours > thr.MaxMonthlyHours
		}
	}

	created, err := s.overtimeRepository.Create(ctx, overtime.Request{
		EmployeeID:     employeeID,
		CompanyID:      companyID,
		RequestDate:    requestDate,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		TotalHours:     totalHours,
		DayType:        dayType,
		RateMultiplier: multiplier,
		Amount:         amount,
		Reason:         req.Reason,
		Status:         overtime.StatusPendingVerification,
		NeedsReview:    needsReview,
	})
	if err != nil {
		return overtime.RequestResponse{}, err
	}

	s.notifySubmission(ctx, created, emp)
	if needsReview {
		s.notifyThresholdExceeded(ctx, created, emp)
	}

	return overtime.ToRequestResponse(created), nil
}

// GetByID implements overtime.Service.
func (s *OvertimeServiceImpl) GetByID(ctx context.Context, id string) (overtime.RequestResponse, error) {
	actor, err := claims.FromContext(ctx)
	if err != nil {
		return overtime.RequestResponse{}, err
	}

	req, err := s.overtimeRepository.GetByID(ctx, id)
	if err != nil {
		return overtime.RequestResponse{}, err
	}

	if actor.Role == user.RoleEmployee {
		employeeID, err := actor.MustEmployeeID()
		if err != nil {
			return overtime.RequestResponse{}, err
		}
		if req.EmployeeID != employeeID {
			return overtime.RequestResponse{}, overtime.ErrNotRequestOwner
		}
	} else if actor.CompanyID != nil && req.CompanyID != *actor.CompanyID {
		return overtime.RequestResponse{}, overtime.ErrRequestNotFound
	}

	return overtime.ToRequestResponse(req), nil
}

// List implements overtime.Service. The filter is narrowed by role:
// employees see their own requests, supervisors their direct reports,
// HR and management the whole company.
func (s *OvertimeServiceImpl) List(ctx context.Context, filter overtime.ListRequestsFilter) ([]overtime.RequestResponse, int64, error) {
	actor, err := claims.FromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	switch actor.Role {
	case user.RoleEmployee:
		employeeID, err := actor.MustEmployeeID()
		if err != nil {
			return nil, 0, err
		}
		filter.EmployeeID = &employeeID
	case user.RoleSupervisor:
		if filter.EmployeeID == nil {
			employeeID, err := actor.MustEmployeeID()
			if err != nil {
				return nil, 0, err
			}
			filter.SupervisorID = &employeeID
		}
	default:
		filter.CompanyID = actor.CompanyID
	}

	requests, total, err := s.overtimeRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]overtime.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, overtime.ToRequestResponse(req))
	}
	return responses, total, nil
}

// Verify implements overtime.Service.
func (s *OvertimeServiceImpl) Verify(ctx context.Context, id string) (overtime.RequestResponse, error) {
	actor, req, err := s.actionTarget(ctx, id)
	if err != nil {
		return overtime.RequestResponse{}, err
	}

	if actor.EmployeeID != nil && req.EmployeeID == *actor.EmployeeID {
		return overtime.RequestResponse{}, overtime.ErrSelfApprovalNotPermitted
	}
	if actor.Role == user.RoleSupervisor {
		emp, err := s.employeeRepository.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return overtime.RequestResponse{}, err
		}
		if emp.SupervisorID == nil || actor.EmployeeID == nil || *emp.SupervisorID != *actor.EmployeeID {
			return overtime.RequestResponse{}, overtime.ErrNotSupervisedEmployee
		}
	}

	verified, err := s.overtimeRepository.MarkVerified(ctx, id, actor.UserID)
	if err != nil {
		return overtime.RequestResponse{}, err
	}

	s.notifyStatusChange(ctx, verified, notification.TypeOvertimeVerified,
		"Overtime request verified",
		fmt.Sprintf("Your overtime request for %s has been verified", verified.RequestDate.Format("2006-01-02")))

	return overtime.ToRequestResponse(verified), nil
}

// Approve implements overtime.Service.
func (s *OvertimeServiceImpl) Approve(ctx context.Context, id string) (overtime.RequestResponse, error) {
	actor, req, err := s.actionTarget(ctx, id)
	if err != nil {
		return overtime.RequestResponse{}, err
	}
	if actor.EmployeeID != nil && req.EmployeeID == *actor.EmployeeID {
		return overtime.RequestResponse{}, overtime.ErrSelfApprovalNotPermitted
	}

	approved, err := s.overtimeRepository.MarkApproved(ctx, id, actor.UserID)
	if err != nil {
		return overtime.RequestResponse{}, err
	}

	s.notifyStatusChange(ctx, approved, notification.TypeOvertimeApproved,
		"Overtime request approved",
		fmt.Sprintf("Your overtime request for %s has been approved", approved.RequestDate.Format("2006-01-02")))
	s.emailStatusChange(ctx, approved, "approved", "")

	return overtime.ToRequestResponse(approved), nil
}

// Reject implements overtime.Service.
func (s *OvertimeServiceImpl) Reject(ctx context.Context, id string, req overtime.RejectRequestRequest) (overtime.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.RequestResponse{}, err
	}

	actor, _, err := s.actionTarget(ctx, id)
	if err != nil {
		return overtime.RequestResponse{}, err
	}

	rejected, err := s.overtimeRepository.MarkRejected(ctx, id, actor.UserID, req.Reason)
	if err != nil {
		return overtime.RequestResponse{}, err
	}

	s.notifyStatusChange(ctx, rejected, notification.TypeOvertimeRejected,
		"Overtime request rejected",
		fmt.Sprintf("Your overtime request for %s has been rejected: %s", rejected.RequestDate.Format("2006-01-02"), req.Reason))
	s.emailStatusChange(ctx, rejected, "rejected", req.Reason)

	return overtime.ToRequestResponse(rejected), nil
}

// Review implements overtime.Service. Review is the management sign-off on
// approved requests that breached the monthly threshold.
func (s *OvertimeServiceImpl) Review(ctx context.Context, id string) (overtime.RequestResponse, error) {
	actor, _, err := s.actionTarget(ctx, id)
	if err != nil {
		return overtime.RequestResponse{}, err
	}

	reviewed, err := s.overtimeRepository.MarkReviewed(ctx, id, actor.UserID)
	if err != nil {
		return overtime.RequestResponse{}, err
	}

	s.notifyStatusChange(ctx, reviewed, notification.TypeOvertimeReviewed,
		"Overtime request reviewed",
		fmt.Sprintf("Management has signed off your overtime request for %s", reviewed.RequestDate.Format("2006-01-02")))

	return overtime.ToRequestResponse(reviewed), nil
}

// Cancel implements overtime.Service. Only the owner can cancel, and only
// while the request is still pending verification.
func (s *OvertimeServiceImpl) Cancel(ctx context.Context, id string) (overtime.RequestResponse, error) {
	actor, err := claims.FromContext(ctx)
	if err != nil {
		return overtime.RequestResponse{}, err
	}
	employeeID, err := actor.MustEmployeeID()
	if err != nil {
		return overtime.RequestResponse{}, err
	}

	cancelled, err := s.overtimeRepository.MarkCancelled(ctx, id, employeeID)
	if err != nil {
		return overtime.RequestResponse{}, err
	}
	return overtime.ToRequestResponse(cancelled), nil
}

// actionTarget loads the request for a workflow action and checks the actor
// belongs to the same company.
func (s *OvertimeServiceImpl) actionTarget(ctx context.Context, id string) (claims.Claims, overtime.Request, error) {
	actor, err := claims.FromContext(ctx)
	if err != nil {
		return claims.Claims{}, overtime.Request{}, err
	}

	req, err := s.overtimeRepository.GetByID(ctx, id)
	if err != nil {
		return claims.Claims{}, overtime.Request{}, err
	}
	if actor.CompanyID == nil || req.CompanyID != *actor.CompanyID {
		return claims.Claims{}, overtime.Request{}, overtime.ErrRequestNotFound
	}
	return actor, req, nil
}

func (s *OvertimeServiceImpl) notifySubmission(ctx context.Context, req overtime.Request, emp employee.Employee) {
	if emp.SupervisorID == nil {
		return
	}
	supervisorUser, err := s.userRepository.GetByEmployeeID(ctx, *emp.SupervisorID)
	if err != nil {
		slog.Warn("supervisor has no user account, skipping submission notification",
			slog.String("supervisor_id", *emp.SupervisorID),
			slog.Any("error", err),
		)
		return
	}

	err = s.notificationService.Notify(ctx, notification.Notification{
		CompanyID:   req.CompanyID,
		RecipientID: supervisorUser.ID,
		Type:        notification.TypeOvertimeSubmitted,
		Title:       "New overtime request",
		Message:     fmt.Sprintf("%s filed an overtime request for %s", emp.FullName, req.RequestDate.Format("2006-01-02")),
		Data:        map[string]interface{}{"request_id": req.ID},
	})
	if err != nil {
		slog.Warn("failed to send submission notification", slog.Any("error", err))
	}
}

func (s *OvertimeServiceImpl) notifyThresholdExceeded(ctx context.Context, req overtime.Request, emp employee.Employee) {
	managers, err := s.userRepository.ListByCompany(ctx, req.CompanyID, []user.Role{user.RoleManagement})
	if err != nil {
		slog.Warn("failed to list management users", slog.Any("error", err))
		return
	}

	recipientIDs := make([]string, 0, len(managers))
	for _, m := range managers {
		recipientIDs = append(recipientIDs, m.ID)
	}

	err = s.notificationService.NotifyMany(ctx, recipientIDs, notification.Notification{
		CompanyID: req.CompanyID,
		Type:      notification.TypeThresholdExceeded,
		Title:     "Monthly overtime threshold exceeded",
		Message:   fmt.Sprintf("%s exceeds the monthly overtime cap and needs review", emp.FullName),
		Data:      map[string]interface{}{"request_id": req.ID, "employee_id": emp.ID},
	})
	if err != nil {
		slog.Warn("failed to send threshold notification", slog.Any("error", err))
	}
}

func (s *OvertimeServiceImpl) notifyStatusChange(ctx context.Context, req overtime.Request, notifType notification.NotificationType, title, message string) {
	owner, err := s.userRepository.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		slog.Warn("request owner has no user account, skipping status notification",
			slog.String("employee_id", req.EmployeeID),
			slog.Any("error", err),
		)
		return
	}

	err = s.notificationService.Notify(ctx, notification.Notification{
		CompanyID:   req.CompanyID,
		RecipientID: owner.ID,
		Type:        notifType,
		Title:       title,
		Message:     message,
		Data:        map[string]interface{}{"request_id": req.ID, "status": req.Status},
	})
	if err != nil {
		slog.Warn("failed to send status notification", slog.Any("error", err))
	}
}

func (s *OvertimeServiceImpl) emailStatusChange(ctx context.Context, req overtime.Request, status, reason string) {
	emp, err := s.employeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		slog.Warn("failed to load employee for status email", slog.Any("error", err))
		return
	}

	err = s.emailService.SendOvertimeStatus(
		emp.Email,
		emp.FullName,
		req.RequestDate.Format("2006-01-02"),
		timeutil.FormatTimeRange(req.StartTime, req.EndTime),
		format.Hours(&req.TotalHours),
		format.Currency(&req.Amount),
		status,
		reason,
	)
	if err != nil {
		slog.Warn("failed to send status email",
			slog.String("to", emp.Email),
			slog.Any("error", err),
		)
	}
}
