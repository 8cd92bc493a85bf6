package overtime

import (
	"context"
	"testing"
	"time"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/employee"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/master/position"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/notification"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/overtime"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/threshold"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOvertimeRepo struct {
	created *overtime.Request

	createFn               func(ctx context.Context, r overtime.Request) (overtime.Request, error)
	getByIDFn              func(ctx context.Context, id string) (overtime.Request, error)
	listFn                 func(ctx context.Context, filter overtime.ListRequestsFilter) ([]overtime.Request, int64, error)
	markVerifiedFn         func(ctx context.Context, id, verifierID string) (overtime.Request, error)
	markApprovedFn         func(ctx context.Context, id, approverID string) (overtime.Request, error)
	markRejectedFn         func(ctx context.Context, id, approverID, reason string) (overtime.Request, error)
	classifyDayTypeFn      func(ctx context.Context, companyID string, date time.Time) (overtime.DayType, error)
	approvedMonthlyHoursFn func(ctx context.Context, employeeID string, date time.Time) (float64, error)
	overlapsFn             func(ctx context.Context, employeeID string, date time.Time, startTime, endTime string) (bool, error)
}

func (f *fakeOvertimeRepo) Create(ctx context.Context, r overtime.Request) (overtime.Request, error) {
	return f.createFn(ctx, r)
}
func (f *fakeOvertimeRepo) GetByID(ctx context.Context, id string) (overtime.Request, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeOvertimeRepo) List(ctx context.Context, filter overtime.ListRequestsFilter) ([]overtime.Request, int64, error) {
	return f.listFn(ctx, filter)
}
func (f *fakeOvertimeRepo) MarkVerified(ctx context.Context, id, verifierID string) (overtime.Request, error) {
	return f.markVerifiedFn(ctx, id, verifierID)
}
func (f *fakeOvertimeRepo) MarkApproved(ctx context.Context, id, approverID string) (overtime.Request, error) {
	return f.markApprovedFn(ctx, id, approverID)
}
func (f *fakeOvertimeRepo) MarkRejected(ctx context.Context, id, approverID, reason string) (overtime.Request, error) {
	return f.markRejectedFn(ctx, id, approverID, reason)
}
func (f *fakeOvertimeRepo) MarkReviewed(context.Context, string, string) (overtime.Request, error) {
	return overtime.Request{}, nil
}
func (f *fakeOvertimeRepo) MarkCancelled(context.Context, string, string) (overtime.Request, error) {
	return overtime.Request{}, nil
}
func (f *fakeOvertimeRepo) ClassifyDayType(ctx context.Context, companyID string, date time.Time) (overtime.DayType, error) {
	return f.classifyDayTypeFn(ctx, companyID, date)
}
func (f *fakeOvertimeRepo) ApprovedMonthlyHours(ctx context.Context, employeeID string, date time.Time) (float64, error) {
	return f.approvedMonthlyHoursFn(ctx, employeeID, date)
}
func (f *fakeOvertimeRepo) Overlaps(ctx context.Context, employeeID string, date time.Time, startTime, endTime string) (bool, error) {
	return f.overlapsFn(ctx, employeeID, date, startTime, endTime)
}

type fakeEmployeeRepo struct {
	getByIDFn func(ctx context.Context, id string) (employee.Employee, error)
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeEmployeeRepo) Create(context.Context, employee.Employee) (employee.Employee, error) {
	return employee.Employee{}, nil
}
func (f *fakeEmployeeRepo) GetByEmail(context.Context, string, string) (employee.Employee, error) {
	return employee.Employee{}, nil
}
func (f *fakeEmployeeRepo) List(context.Context, employee.ListEmployeesFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}
func (f *fakeEmployeeRepo) Update(context.Context, employee.Employee) (employee.Employee, error) {
	return employee.Employee{}, nil
}
func (f *fakeEmployeeRepo) SoftDelete(context.Context, string) error { return nil }
func (f *fakeEmployeeRepo) CodeExists(context.Context, string, string) (bool, error) {
	return false, nil
}

type fakePositionRepo struct {
	getByIDFn func(ctx context.Context, id string) (position.Position, error)
}

func (f *fakePositionRepo) GetByID(ctx context.Context, id string) (position.Position, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakePositionRepo) Create(context.Context, position.Position) (position.Position, error) {
	return position.Position{}, nil
}
func (f *fakePositionRepo) ListByCompany(context.Context, string) ([]position.Position, error) {
	return nil, nil
}
func (f *fakePositionRepo) Update(context.Context, position.Position) (position.Position, error) {
	return position.Position{}, nil
}
func (f *fakePositionRepo) Delete(context.Context, string) error { return nil }

type fakeThresholdRepo struct {
	getActiveFn func(ctx context.Context, companyID string) (threshold.Threshold, error)
}

func (f *fakeThresholdRepo) GetActiveByCompany(ctx context.Context, companyID string) (threshold.Threshold, error) {
	return f.getActiveFn(ctx, companyID)
}
func (f *fakeThresholdRepo) Upsert(context.Context, threshold.Threshold) (threshold.Threshold, error) {
	return threshold.Threshold{}, nil
}
func (f *fakeThresholdRepo) ListByCompany(context.Context, string) ([]threshold.Threshold, error) {
	return nil, nil
}

type fakeUserRepo struct {
	getByEmployeeIDFn func(ctx context.Context, employeeID string) (user.User, error)
	listByCompanyFn   func(ctx context.Context, companyID string, roles []user.Role) ([]user.User, error)
}

func (f *fakeUserRepo) GetByEmployeeID(ctx context.Context, employeeID string) (user.User, error) {
	return f.getByEmployeeIDFn(ctx, employeeID)
}
func (f *fakeUserRepo) ListByCompany(ctx context.Context, companyID string, roles []user.Role) ([]user.User, error) {
	return f.listByCompanyFn(ctx, companyID, roles)
}
func (f *fakeUserRepo) Create(context.Context, user.User) (user.User, error) {
	return user.User{}, nil
}
func (f *fakeUserRepo) GetByID(context.Context, string) (user.User, error) {
	return user.User{}, nil
}
func (f *fakeUserRepo) GetByEmail(context.Context, string) (user.User, error) {
	return user.User{}, nil
}
func (f *fakeUserRepo) GetByGoogleID(context.Context, string) (user.User, error) {
	return user.User{}, nil
}
func (f *fakeUserRepo) Activate(context.Context, string, string) error { return nil }

type fakeNotificationService struct {
	sent        []notification.Notification
	broadcastTo [][]string
}

func (f *fakeNotificationService) Notify(ctx context.Context, n notification.Notification) error {
	f.sent = append(f.sent, n)
	return nil
}
func (f *fakeNotificationService) NotifyMany(ctx context.Context, recipientIDs []string, n notification.Notification) error {
	f.broadcastTo = append(f.broadcastTo, recipientIDs)
	f.sent = append(f.sent, n)
	return nil
}
func (f *fakeNotificationService) List(context.Context, notification.ListNotificationsFilter) ([]notification.NotificationResponse, int64, error) {
	return nil, 0, nil
}
func (f *fakeNotificationService) UnreadCount(context.Context, string) (int64, error) {
	return 0, nil
}
func (f *fakeNotificationService) MarkRead(context.Context, string, string) error { return nil }
func (f *fakeNotificationService) MarkAllRead(context.Context, string) error { return nil }

type sentStatusEmail struct {
	to     string
	status string
	reason string
}

type fakeEmailService struct {
	statusEmails []sentStatusEmail
}

func (f *fakeEmailService) SendActivation(to, employeeName, companyName, activationLink, expiresAt string) error {
	return nil
}
func (f *fakeEmailService) SendOvertimeStatus(to, employeeName, requestDate, timeRange, hours, amount, status, reason string) error {
	f.statusEmails = append(f.statusEmails, sentStatusEmail{to: to, status: status, reason: reason})
	return nil
}

type serviceFakes struct {
	requests   *fakeOvertimeRepo
	employees  *fakeEmployeeRepo
	positions  *fakePositionRepo
	thresholds *fakeThresholdRepo
	users      *fakeUserRepo
	notifier   *fakeNotificationService
	emails     *fakeEmailService
}

// newTestService wires the service against fakes seeded with a working
// baseline: emp-1 is an active, OT-eligible employee of comp-1 earning
// RM 4160 a month (RM 20/hour) supervised by sup-1, with a pending request
// req-1 on the books and no active threshold.
func newTestService() (overtime.Service, *serviceFakes) {
	f := &serviceFakes{
		requests:   &fakeOvertimeRepo{},
		employees:  &fakeEmployeeRepo{},
		positions:  &fakePositionRepo{},
		thresholds: &fakeThresholdRepo{},
		users:      &fakeUserRepo{},
		notifier:   &fakeNotificationService{},
		emails:     &fakeEmailService{},
	}

	supervisorID := "sup-1"
	positionID := "pos-1"
	f.employees.getByIDFn = func(ctx context.Context, id string) (employee.Employee, error) {
		return employee.Employee{
			ID:            id,
			CompanyID:     "comp-1",
			PositionID:    &positionID,
			SupervisorID:  &supervisorID,
			EmployeeCode:  "ENG-0042",
			FullName:      "Lim Wei Jie",
			Email:         "wei.jie@example.com",
			MonthlySalary: 4160,
			Status:        employee.StatusActive,
		}, nil
	}
	f.positions.getByIDFn = func(ctx context.Context, id string) (position.Position, error) {
		return position.Position{ID: id, CompanyID: "comp-1", Name: "Engineer", OTEligible: true}, nil
	}
	f.thresholds.getActiveFn = func(ctx context.Context, companyID string) (threshold.Threshold, error) {
		return threshold.Threshold{}, threshold.ErrThresholdNotFound
	}

	f.requests.createFn = func(ctx context.Context, r overtime.Request) (overtime.Request, error) {
		r.ID = "req-1"
		r.CreatedAt = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
		f.requests.created = &r
		return r, nil
	}
	f.requests.getByIDFn = func(ctx context.Context, id string) (overtime.Request, error) {
		return overtime.Request{
			ID:             id,
			EmployeeID:     "emp-1",
			CompanyID:      "comp-1",
			RequestDate:    time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			StartTime:      "18:00",
			EndTime:        "22:00",
			TotalHours:     4,
			DayType:        overtime.DayTypeSaturday,
			RateMultiplier: 2,
			Amount:         160,
			Status:         overtime.StatusPendingVerification,
		}, nil
	}
	f.requests.listFn = func(ctx context.Context, filter overtime.ListRequestsFilter) ([]overtime.Request, int64, error) {
		return nil, 0, nil
	}
	f.requests.markVerifiedFn = func(ctx context.Context, id, verifierID string) (overtime.Request, error) {
		r, _ := f.requests.getByIDFn(ctx, id)
		r.Status = overtime.StatusVerified
		r.VerifiedBy = &verifierID
		return r, nil
	}
	f.requests.markApprovedFn = func(ctx context.Context, id, approverID string) (overtime.Request, error) {
		r, _ := f.requests.getByIDFn(ctx, id)
		r.Status = overtime.StatusApproved
		r.HRApprovedBy = &approverID
		return r, nil
	}
	f.requests.markRejectedFn = func(ctx context.Context, id, approverID, reason string) (overtime.Request, error) {
		r, _ := f.requests.getByIDFn(ctx, id)
		r.Status = overtime.StatusRejected
		r.HRApprovedBy = &approverID
		r.RejectionReason = &reason
		return r, nil
	}
	f.requests.classifyDayTypeFn = func(ctx context.Context, companyID string, date time.Time) (overtime.DayType, error) {
		return overtime.DayTypeWeekday, nil
	}
	f.requests.approvedMonthlyHoursFn = func(ctx context.Context, employeeID string, date time.Time) (float64, error) {
		return 0, nil
	}
	f.requests.overlapsFn = func(ctx context.Context, employeeID string, date time.Time, startTime, endTime string) (bool, error) {
		return false, nil
	}

	f.users.getByEmployeeIDFn = func(ctx context.Context, employeeID string) (user.User, error) {
		return user.User{ID: "user-" + employeeID, Email: employeeID + "@example.com"}, nil
	}
	f.users.listByCompanyFn = func(ctx context.Context, companyID string, roles []user.Role) ([]user.User, error) {
		return []user.User{{ID: "user-mgmt-1", Role: user.RoleManagement}}, nil
	}

	svc := NewOvertimeService(f.requests, f.employees, f.positions, f.thresholds, f.users, f.notifier, f.emails)
	return svc, f
}

// actorContext builds a request context carrying a verified token the way the
// auth middleware would.
func actorContext(t *testing.T, userID string, role user.Role, employeeID, companyID string) context.Context {
	t.Helper()

	tokenClaims := map[string]interface{}{
		"user_id": userID,
		"email":   userID + "@example.com",
		"role":    string(role),
		"type":    "access",
	}
	if employeeID != "" {
		tokenClaims["employee_id"] = employeeID
	}
	if companyID != "" {
		tokenClaims["company_id"] = companyID
	}

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	tok, _, err := ja.Encode(tokenClaims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func validCreateRequest() overtime.CreateRequestRequest {
	return overtime.CreateRequestRequest{
		RequestDate: "2026-03-14",
		StartTime:   "18:00",
		EndTime:     "22:00",
		Reason:      "Release deployment",
	}
}

func TestOvertimeService_Create_PricesFromDayType(t *testing.T) {
	svc, fakes := newTestService()
	fakes.requests.classifyDayTypeFn = func(ctx context.Context, companyID string, date time.Time) (overtime.DayType, error) {
		return overtime.DayTypeSaturday, nil
	}

	ctx := actorContext(t, "user-emp-1", user.RoleEmployee, "emp-1", "comp-1")
	resp, err := svc.Create(ctx, validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, 4.0, resp.TotalHours)
	assert.Equal(t, "saturday", resp.DayType)
	assert.Equal(t, 2.0, resp.RateMultiplier)
	// 4h x RM 20/h x 2.0
	assert.Equal(t, 160.0, resp.Amount)
	assert.Equal(t, overtime.StatusPendingVerification, resp.Status)
	assert.False(t, resp.NeedsReview)

	require.NotNil(t, fakes.requests.created)
	assert.Equal(t, "emp-1", fakes.requests.created.EmployeeID)
	assert.Equal(t, "comp-1", fakes.requests.created.CompanyID)

	// Supervisor gets the submission notification
	require.Len(t, fakes.notifier.sent, 1)
	assert.Equal(t, notification.TypeOvertimeSubmitted, fakes.notifier.sent[0].Type)
	assert.Equal(t, "user-sup-1", fakes.notifier.sent[0].RecipientID)
}

func TestOvertimeService_Create_InactiveEmployee(t *testing.T) {
	svc, fakes := newTestService()
	fakes.employees.getByIDFn = func(ctx context.Context, id string) (employee.Employee, error) {
		return employee.Employee{ID: id, CompanyID: "comp-1", Status: employee.StatusInactive}, nil
	}

	ctx := actorContext(t, "user-emp-1", user.RoleEmployee, "emp-1", "comp-1")
	_, err := svc.Create(ctx, validCreateRequest())

	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
	assert.Nil(t, fakes.requests.created)
}

func TestOvertimeService_Create_IneligiblePosition(t *testing.T) {
	svc, fakes := newTestService()
	fakes.positions.getByIDFn = func(ctx context.Context, id string) (position.Position, error) {
		return position.Position{ID: id, CompanyID: "comp-1", Name: "Director", OTEligible: false}, nil
	}

	ctx := actorContext(t, "user-emp-1", user.RoleEmployee, "emp-1", "comp-1")
	_, err := svc.Create(ctx, validCreateRequest())

	assert.ErrorIs(t, err, overtime.ErrEmployeeNotOTEligible)
	assert.Nil(t, fakes.requests.created)
}

func TestOvertimeService_Create_DuplicateWindow(t *testing.T) {
	svc, fakes := newTestService()
	fakes.requests.overlapsFn = func(ctx context.Context, employeeID string, date time.Time, startTime, endTime string) (bool, error) {
		return true, nil
	}

	ctx := actorContext(t, "user-emp-1", user.RoleEmployee, "emp-1", "comp-1")
	_, err := svc.Create(ctx, validCreateRequest())

	assert.ErrorIs(t, err, overtime.ErrDuplicateRequest)
	assert.Nil(t, fakes.requests.created)
}

func TestOvertimeService_Create_RequestHoursCap(t *testing.T) {
	svc, fakes := newTestService()
	fakes.thresholds.getActiveFn = func(ctx context.Context, companyID string) (threshold.Threshold, error) {
		return threshold.Threshold{CompanyID: companyID, MaxMonthlyHours: 40, MaxRequestHours: 3, IsActive: true}, nil
	}

	// 18:00-22:00 is 4 hours, over the 3-hour per-request cap
	ctx := actorContext(t, "user-emp-1", user.RoleEmployee, "emp-1", "comp-1")
	_, err := svc.Create(ctx, validCreateRequest())

	assert.ErrorIs(t, err, overtime.ErrRequestHoursExceeded)
	assert.Nil(t, fakes.requests.created)
}

func TestOvertimeService_Create_MonthlyCapFlagsReview(t *testing.T) {
	svc, fakes := newTestService()
	fakes.thresholds.getActiveFn = func(ctx context.Context, companyID string) (threshold.Threshold, error) {
		return threshold.Threshold{CompanyID: companyID, MaxMonthlyHours: 40, MaxRequestHours: 8, IsActive: true}, nil
	}
	fakes.requests.approvedMonthlyHoursFn = func(ctx context.Context, employeeID string, date time.Time) (float64, error) {
		return 38, nil
	}

	// 38 approved + 4 requested breaches the 40-hour monthly cap
	ctx := actorContext(t, "user-emp-1", user.RoleEmployee, "emp-1", "comp-1")
	resp, err := svc.Create(ctx, validCreateRequest())

	require.NoError(t, err)
	assert.True(t, resp.NeedsReview)
	require.NotNil(t, fakes.requests.created)
	assert.True(t, fakes.requests.created.NeedsReview)

	// Management is alerted on top of the supervisor notification
	require.Len(t, fakes.notifier.broadcastTo, 1)
	assert.Equal(t, []string{"user-mgmt-1"}, fakes.notifier.broadcastTo[0])
}

func TestOvertimeService_Create_NoThresholdNoCaps(t *testing.T) {
	svc, fakes := newTestService()
	fakes.requests.approvedMonthlyHoursFn = func(ctx context.Context, employeeID string, date time.Time) (float64, error) {
		t.Fatal("monthly hours should not be summed without an active threshold")
		return 0, nil
	}

	ctx := actorContext(t, "user-emp-1", user.RoleEmployee, "emp-1", "comp-1")
	resp, err := svc.Create(ctx, validCreateRequest())

	require.NoError(t, err)
	assert.False(t, resp.NeedsReview)
	assert.Empty(t, fakes.notifier.broadcastTo)
}

func TestOvertimeService_Verify_BySupervisor(t *testing.T) {
	svc, fakes := newTestService()

	ctx := actorContext(t, "user-sup-1", user.RoleSupervisor, "sup-1", "comp-1")
	resp, err := svc.Verify(ctx, "req-1")

	require.NoError(t, err)
	assert.Equal(t, overtime.StatusVerified, resp.Status)

	// Owner is told their request moved forward
	require.Len(t, fakes.notifier.sent, 1)
	assert.Equal(t, notification.TypeOvertimeVerified, fakes.notifier.sent[0].Type)
	assert.Equal(t, "user-emp-1", fakes.notifier.sent[0].RecipientID)
}

func TestOvertimeService_Verify_OwnRequestRejected(t *testing.T) {
	svc, fakes := newTestService()
	fakes.requests.markVerifiedFn = func(ctx context.Context, id, verifierID string) (overtime.Request, error) {
		t.Fatal("request must not be verified by its owner")
		return overtime.Request{}, nil
	}

	// Actor is the employee who filed req-1
	ctx := actorContext(t, "user-emp-1", user.RoleSupervisor, "emp-1", "comp-1")
	_, err := svc.Verify(ctx, "req-1")

	assert.ErrorIs(t, err, overtime.ErrSelfApprovalNotPermitted)
}

func TestOvertimeService_Verify_NotSupervisedEmployee(t *testing.T) {
	svc, _ := newTestService()

	// emp-1 reports to sup-1, not to this actor
	ctx := actorContext(t, "user-sup-2", user.RoleSupervisor, "sup-2", "comp-1")
	_, err := svc.Verify(ctx, "req-1")

	assert.ErrorIs(t, err, overtime.ErrNotSupervisedEmployee)
}

func TestOvertimeService_Approve_SendsEmail(t *testing.T) {
	svc, fakes := newTestService()

	ctx := actorContext(t, "user-hr-1", user.RoleHR, "hr-1", "comp-1")
	resp, err := svc.Approve(ctx, "req-1")

	require.NoError(t, err)
	assert.Equal(t, overtime.StatusApproved, resp.Status)

	require.Len(t, fakes.emails.statusEmails, 1)
	assert.Equal(t, "wei.jie@example.com", fakes.emails.statusEmails[0].to)
	assert.Equal(t, "approved", fakes.emails.statusEmails[0].status)
}

func TestOvertimeService_Approve_OwnRequestRejected(t *testing.T) {
	svc, fakes := newTestService()
	fakes.requests.markApprovedFn = func(ctx context.Context, id, approverID string) (overtime.Request, error) {
		t.Fatal("request must not be approved by its owner")
		return overtime.Request{}, nil
	}

	ctx := actorContext(t, "user-emp-1", user.RoleHR, "emp-1", "comp-1")
	_, err := svc.Approve(ctx, "req-1")

	assert.ErrorIs(t, err, overtime.ErrSelfApprovalNotPermitted)
}

func TestOvertimeService_Approve_OtherCompanyHidden(t *testing.T) {
	svc, _ := newTestService()

	ctx := actorContext(t, "user-hr-9", user.RoleHR, "hr-9", "comp-2")
	_, err := svc.Approve(ctx, "req-1")

	assert.ErrorIs(t, err, overtime.ErrRequestNotFound)
}

func TestOvertimeService_Reject_RecordsReason(t *testing.T) {
	svc, fakes := newTestService()

	ctx := actorContext(t, "user-hr-1", user.RoleHR, "hr-1", "comp-1")
	resp, err := svc.Reject(ctx, "req-1", overtime.RejectRequestRequest{Reason: "No prior approval"})

	require.NoError(t, err)
	assert.Equal(t, overtime.StatusRejected, resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "No prior approval", *resp.RejectionReason)

	require.Len(t, fakes.emails.statusEmails, 1)
	assert.Equal(t, "rejected", fakes.emails.statusEmails[0].status)
	assert.Equal(t, "No prior approval", fakes.emails.statusEmails[0].reason)
}

func TestOvertimeService_List_ScopesByRole(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("employee sees only their own requests", func(t *testing.T) {
		svc, fakes := newTestService()
		var got overtime.ListRequestsFilter
		fakes.requests.listFn = func(ctx context.Context, filter overtime.ListRequestsFilter) ([]overtime.Request, int64, error) {
			got = filter
			return nil, 0, nil
		}

		ctx := actorContext(t, "user-emp-1", user.RoleEmployee, "emp-1", "comp-1")
		_, _, err := svc.List(ctx, overtime.ListRequestsFilter{EmployeeID: strPtr("emp-other")})

		require.NoError(t, err)
		require.NotNil(t, got.EmployeeID)
		assert.Equal(t, "emp-1", *got.EmployeeID)
	})

	t.Run("supervisor defaults to direct reports", func(t *testing.T) {
		svc, fakes := newTestService()
		var got overtime.ListRequestsFilter
		fakes.requests.listFn = func(ctx context.Context, filter overtime.ListRequestsFilter) ([]overtime.Request, int64, error) {
			got = filter
			return nil, 0, nil
		}

		ctx := actorContext(t, "user-sup-1", user.RoleSupervisor, "sup-1", "comp-1")
		_, _, err := svc.List(ctx, overtime.ListRequestsFilter{})

		require.NoError(t, err)
		assert.Nil(t, got.EmployeeID)
		require.NotNil(t, got.SupervisorID)
		assert.Equal(t, "sup-1", *got.SupervisorID)
	})

	t.Run("hr sees the whole company", func(t *testing.T) {
		svc, fakes := newTestService()
		var got overtime.ListRequestsFilter
		fakes.requests.listFn = func(ctx context.Context, filter overtime.ListRequestsFilter) ([]overtime.Request, int64, error) {
			got = filter
			return nil, 0, nil
		}

		ctx := actorContext(t, "user-hr-1", user.RoleHR, "hr-1", "comp-1")
		_, _, err := svc.List(ctx, overtime.ListRequestsFilter{})

		require.NoError(t, err)
		assert.Nil(t, got.EmployeeID)
		assert.Nil(t, got.SupervisorID)
		require.NotNil(t, got.CompanyID)
		assert.Equal(t, "comp-1", *got.CompanyID)
	})
}
